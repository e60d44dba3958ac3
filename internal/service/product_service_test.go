package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gocart/internal/cache"
	apperrors "gocart/internal/errors"
	"gocart/internal/model"
)

// A nil cache client behaves like an always-empty cache, which keeps
// these tests free of a redis dependency.
var noCache *cache.Client

func TestProductService_Get(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(*MockProductRepository)
		expectedCode string
	}{
		{
			name: "found",
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Product{ID: 10, Name: "USB-C Hub"}, nil)
			},
		},
		{
			name: "missing",
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: apperrors.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := new(MockProductRepository)
			tt.setupMock(products)

			svc := NewProductService(products, noCache, testLogger())
			product, err := svc.Get(context.Background(), 10)

			if tt.expectedCode != "" {
				require.Error(t, err)
				apiErr, ok := apperrors.AsAPIError(err)
				require.True(t, ok)
				assert.Equal(t, tt.expectedCode, apiErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "USB-C Hub", product.Name)
		})
	}
}

func TestProductService_Update_PartialFields(t *testing.T) {
	products := new(MockProductRepository)
	products.On("FindByID", mock.Anything, uint(10)).Return(&model.Product{
		ID:          10,
		Name:        "USB-C Hub",
		Description: "7-in-1 hub",
		Price:       39.99,
	}, nil)
	products.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Price == 34.99 && p.Name == "USB-C Hub"
	})).Return(nil)

	price := 34.99
	svc := NewProductService(products, noCache, testLogger())
	updated, err := svc.Update(context.Background(), 10, ProductUpdate{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 34.99, updated.Price)
	assert.Equal(t, "USB-C Hub", updated.Name)
	products.AssertExpectations(t)
}

func TestProductService_Delete_Missing(t *testing.T) {
	products := new(MockProductRepository)
	products.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProductService(products, noCache, testLogger())
	err := svc.Delete(context.Background(), 10)

	require.Error(t, err)
	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, apiErr.Code)
	products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
