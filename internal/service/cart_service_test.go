package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "gocart/internal/errors"
	"gocart/internal/model"
)

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) FindOrCreateByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) FindItem(ctx context.Context, cartID, productID uint) (*model.CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindItemByID(ctx context.Context, itemID uint) (*model.CartItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartRepository) CreateItem(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateItem(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItems(ctx context.Context, cartID uint) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCartService_AddItem_CreatesCartAndItem(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)

	product := &model.Product{ID: 10, Name: "Wireless Mouse", Price: 49.99}
	cart := &model.Cart{ID: 5, UserID: 1}

	products.On("FindByID", mock.Anything, uint(10)).Return(product, nil)
	carts.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(cart, nil)
	carts.On("FindItem", mock.Anything, uint(5), uint(10)).Return(nil, gorm.ErrRecordNotFound)
	carts.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
		return item.CartID == 5 && item.ProductID == 10 && item.Quantity == 2
	})).Return(nil)
	carts.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Cart{
		ID:     5,
		UserID: 1,
		Items:  []model.CartItem{{ID: 99, CartID: 5, ProductID: 10, Quantity: 2, Product: *product}},
	}, nil)

	svc := NewCartService(carts, products, testLogger())
	result, err := svc.AddItem(context.Background(), 1, 10, 2)

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Items[0].Quantity)
	carts.AssertExpectations(t)
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)

	product := &model.Product{ID: 10, Name: "Wireless Mouse", Price: 49.99}
	cart := &model.Cart{ID: 5, UserID: 1}
	existing := &model.CartItem{ID: 99, CartID: 5, ProductID: 10, Quantity: 2}

	products.On("FindByID", mock.Anything, uint(10)).Return(product, nil)
	carts.On("FindOrCreateByUserID", mock.Anything, uint(1)).Return(cart, nil)
	carts.On("FindItem", mock.Anything, uint(5), uint(10)).Return(existing, nil)
	carts.On("UpdateItem", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
		return item.ID == 99 && item.Quantity == 5
	})).Return(nil)
	carts.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Cart{
		ID:     5,
		UserID: 1,
		Items:  []model.CartItem{{ID: 99, CartID: 5, ProductID: 10, Quantity: 5, Product: *product}},
	}, nil)

	svc := NewCartService(carts, products, testLogger())
	result, err := svc.AddItem(context.Background(), 1, 10, 3)

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 5, result.Items[0].Quantity)
	carts.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)

	products.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCartService(carts, products, testLogger())
	_, err := svc.AddItem(context.Background(), 1, 10, 1)

	require.Error(t, err)
	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, apiErr.Code)
	carts.AssertNotCalled(t, "FindOrCreateByUserID", mock.Anything, mock.Anything)
}

func TestCartService_UpdateItem_ForeignItemLooksMissing(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)

	carts.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 5, UserID: 1}, nil)
	// Item 42 belongs to another user's cart.
	carts.On("FindItemByID", mock.Anything, uint(42)).Return(&model.CartItem{ID: 42, CartID: 8}, nil)

	svc := NewCartService(carts, products, testLogger())
	_, err := svc.UpdateItem(context.Background(), 1, 42, 3)

	require.Error(t, err)
	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, apiErr.Code)
	carts.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
}

func TestCartService_Clear(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)

	carts.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Cart{ID: 5, UserID: 1}, nil)
	carts.On("DeleteItems", mock.Anything, uint(5)).Return(nil)

	svc := NewCartService(carts, products, testLogger())
	require.NoError(t, svc.Clear(context.Background(), 1))
	carts.AssertExpectations(t)
}
