package graph

import (
	"context"
	"strconv"

	"github.com/graph-gophers/graphql-go"

	"gocart/internal/auth"
	"gocart/internal/model"
	"gocart/internal/service"
)

type createProductInput struct {
	Name        string  `json:"name" validate:"required,max=40"`
	Description string  `json:"description" validate:"required,max=300"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" validate:"required,url"`
}

type updateProductInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=40"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=300"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url"`
}

type productResolver struct {
	product model.Product
}

func (r *productResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(r.product.ID), 10))
}

func (r *productResolver) Name() string {
	return r.product.Name
}

func (r *productResolver) Description() string {
	return r.product.Description
}

func (r *productResolver) Price() float64 {
	return r.product.Price
}

func (r *productResolver) ImageURL() *string {
	if r.product.ImageURL == "" {
		return nil
	}
	url := r.product.ImageURL
	return &url
}

type productResponseResolver struct {
	product model.Product
}

func (r *productResponseResolver) Data() *productResolver {
	return &productResolver{product: r.product}
}

type deleteProductResponseResolver struct {
	message string
}

func (r *deleteProductResponseResolver) Message() string {
	return r.message
}

// GetAllProducts lists the catalog. Public.
func (r *Resolver) GetAllProducts(ctx context.Context) ([]*productResponseResolver, error) {
	products, err := r.products.List(ctx)
	if err != nil {
		return nil, r.fail("getAllProducts", err)
	}

	resolvers := make([]*productResponseResolver, 0, len(products))
	for _, product := range products {
		resolvers = append(resolvers, &productResponseResolver{product: product})
	}
	return resolvers, nil
}

// GetProductByID returns a single catalog item. Public.
func (r *Resolver) GetProductByID(ctx context.Context, args struct {
	ProductID graphql.ID
}) (*productResponseResolver, error) {
	id, err := parseID(args.ProductID)
	if err != nil {
		return nil, r.fail("getProductById", err)
	}

	product, err := r.products.Get(ctx, id)
	if err != nil {
		return nil, r.fail("getProductById", err)
	}

	return &productResponseResolver{product: *product}, nil
}

// CreateProduct adds a catalog item. Admin only.
func (r *Resolver) CreateProduct(ctx context.Context, args struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}) (*productResponseResolver, error) {
	if _, err := auth.Authorize(ctx, model.RoleAdmin); err != nil {
		return nil, r.fail("createProduct", err)
	}

	in := createProductInput{
		Name:        args.Name,
		Description: args.Description,
		Price:       args.Price,
		ImageURL:    args.ImageURL,
	}
	if fields := r.validate.Struct(in); fields != nil {
		return nil, r.invalid("createProduct", fields)
	}

	product, err := r.products.Create(ctx, &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return nil, r.fail("createProduct", err)
	}

	return &productResponseResolver{product: *product}, nil
}

// UpdateProduct changes the given fields of a catalog item. Admin only.
func (r *Resolver) UpdateProduct(ctx context.Context, args struct {
	ID          graphql.ID
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}) (*productResponseResolver, error) {
	if _, err := auth.Authorize(ctx, model.RoleAdmin); err != nil {
		return nil, r.fail("updateProduct", err)
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail("updateProduct", err)
	}

	in := updateProductInput{
		Name:        args.Name,
		Description: args.Description,
		Price:       args.Price,
		ImageURL:    args.ImageURL,
	}
	if fields := r.validate.Struct(in); fields != nil {
		return nil, r.invalid("updateProduct", fields)
	}

	product, err := r.products.Update(ctx, id, service.ProductUpdate{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return nil, r.fail("updateProduct", err)
	}

	return &productResponseResolver{product: *product}, nil
}

// DeleteProduct removes a catalog item. Admin only.
func (r *Resolver) DeleteProduct(ctx context.Context, args struct {
	ID graphql.ID
}) (*deleteProductResponseResolver, error) {
	if _, err := auth.Authorize(ctx, model.RoleAdmin); err != nil {
		return nil, r.fail("deleteProduct", err)
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail("deleteProduct", err)
	}

	if err := r.products.Delete(ctx, id); err != nil {
		return nil, r.fail("deleteProduct", err)
	}

	return &deleteProductResponseResolver{message: "Product deleted successfully"}, nil
}
