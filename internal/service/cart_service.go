package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	apperrors "gocart/internal/errors"
	"gocart/internal/model"
	"gocart/internal/repository"
)

// CartService handles the caller's shopping cart. Every operation is
// scoped to the authenticated user; items in other carts are invisible.
type CartService interface {
	Get(ctx context.Context, userID uint) (*model.Cart, error)
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uint) error
	Clear(ctx context.Context, userID uint) error
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	log      *logrus.Logger
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, log *logrus.Logger) CartService {
	return &cartService{
		carts:    carts,
		products: products,
		log:      log,
	}
}

func (s *cartService) Get(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart not found")
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return cart, nil
}

// AddItem puts quantity units of a product into the user's cart,
// creating the cart on first use. Adding a product that is already in
// the cart increments the existing line instead of duplicating it.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.Cart, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	cart, err := s.carts.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find or create cart: %w", err)
	}

	item, err := s.carts.FindItem(ctx, cart.ID, productID)
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.carts.UpdateItem(ctx, item); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = &model.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.carts.CreateItem(ctx, item); err != nil {
			return nil, fmt.Errorf("create cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	s.log.Infof("Cart %d: product %d x%d added for user %d", cart.ID, productID, quantity, userID)
	return s.Get(ctx, userID)
}

func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*model.Cart, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.carts.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}

	return s.Get(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.carts.DeleteItem(ctx, item.ID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	s.log.Infof("Cart item %d removed for user %d", itemID, userID)
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Cart not found")
		}
		return fmt.Errorf("find cart: %w", err)
	}

	if err := s.carts.DeleteItems(ctx, cart.ID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	s.log.Infof("Cart %d cleared for user %d", cart.ID, userID)
	return nil
}

// ownedItem fetches an item and checks it belongs to the caller's cart.
// Someone else's item looks exactly like a missing one.
func (s *cartService) ownedItem(ctx context.Context, userID, itemID uint) (*model.CartItem, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart not found")
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}

	item, err := s.carts.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart item not found")
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	if item.CartID != cart.ID {
		return nil, apperrors.NotFound("Cart item not found")
	}

	return item, nil
}
