package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gocart/internal/cache"
	apperrors "gocart/internal/errors"
	"gocart/internal/model"
	"gocart/internal/repository"
)

const (
	productCacheTTL     = 5 * time.Minute
	productListCacheKey = "products:all"
)

// ProductUpdate carries the optional fields of an updateProduct call.
// Nil means "leave unchanged".
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}

// ProductService handles catalog reads and admin-only writes.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, id uint, update ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	products repository.ProductRepository
	cache    *cache.Client
	log      *logrus.Logger
}

// NewProductService creates a new product service.
func NewProductService(products repository.ProductRepository, cache *cache.Client, log *logrus.Logger) ProductService {
	return &productService{
		products: products,
		cache:    cache,
		log:      log,
	}
}

func (s *productService) cacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	// Try cache first
	if data, _ := s.cache.Get(ctx, productListCacheKey); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, productListCacheKey, payload, productCacheTTL)
	}

	return products, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}

	return product, nil
}

func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	_ = s.cache.Delete(ctx, productListCacheKey)

	s.log.Infof("Product created: %d %s", product.ID, product.Name)
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, update ProductUpdate) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, productListCacheKey)

	s.log.Infof("Product updated: %d", id)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Product not found")
		}
		return fmt.Errorf("find product: %w", err)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, productListCacheKey)

	s.log.Infof("Product deleted: %d", id)
	return nil
}
