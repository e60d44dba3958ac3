package graph

import (
	"context"
	"strconv"
	"time"

	"github.com/graph-gophers/graphql-go"

	"gocart/internal/auth"
	apperrors "gocart/internal/errors"
	"gocart/internal/model"
)

type cartItemResolver struct {
	item model.CartItem
}

func (r *cartItemResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(r.item.ID), 10))
}

func (r *cartItemResolver) Product() *productResolver {
	return &productResolver{product: r.item.Product}
}

func (r *cartItemResolver) Quantity() int32 {
	return int32(r.item.Quantity)
}

func (r *cartItemResolver) CreatedAt() string {
	return r.item.CreatedAt.Format(time.RFC3339)
}

func (r *cartItemResolver) UpdatedAt() string {
	return r.item.UpdatedAt.Format(time.RFC3339)
}

type cartResolver struct {
	cart model.Cart
}

func (r *cartResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(r.cart.ID), 10))
}

func (r *cartResolver) UserID() int32 {
	return int32(r.cart.UserID)
}

func (r *cartResolver) Items() []*cartItemResolver {
	items := make([]*cartItemResolver, 0, len(r.cart.Items))
	for _, item := range r.cart.Items {
		items = append(items, &cartItemResolver{item: item})
	}
	return items
}

func (r *cartResolver) CreatedAt() string {
	return r.cart.CreatedAt.Format(time.RFC3339)
}

func (r *cartResolver) UpdatedAt() string {
	return r.cart.UpdatedAt.Format(time.RFC3339)
}

type cartResponseResolver struct {
	cart model.Cart
}

func (r *cartResponseResolver) Data() *cartResolver {
	return &cartResolver{cart: r.cart}
}

type addToCartResponseResolver struct {
	message string
	cart    model.Cart
}

func (r *addToCartResponseResolver) Message() string {
	return r.message
}

func (r *addToCartResponseResolver) Cart() *cartResolver {
	return &cartResolver{cart: r.cart}
}

type removeCartItemResponseResolver struct {
	message string
}

func (r *removeCartItemResponseResolver) Message() string {
	return r.message
}

type clearCartResponseResolver struct {
	message string
}

func (r *clearCartResponseResolver) Message() string {
	return r.message
}

// GetCart returns the authenticated caller's cart.
func (r *Resolver) GetCart(ctx context.Context) (*cartResponseResolver, error) {
	identity, err := auth.Authenticated(ctx)
	if err != nil {
		return nil, r.fail("getCart", err)
	}

	cart, err := r.carts.Get(ctx, identity.ID)
	if err != nil {
		return nil, r.fail("getCart", err)
	}

	return &cartResponseResolver{cart: *cart}, nil
}

// AddToCart puts a product into the caller's cart, creating the cart on
// first use and incrementing quantity for repeated products.
func (r *Resolver) AddToCart(ctx context.Context, args struct {
	ProductID graphql.ID
	Quantity  int32
}) (*addToCartResponseResolver, error) {
	identity, err := auth.Authenticated(ctx)
	if err != nil {
		return nil, r.fail("addToCart", err)
	}

	productID, err := parseID(args.ProductID)
	if err != nil {
		return nil, r.fail("addToCart", err)
	}

	if args.Quantity < 1 {
		return nil, r.invalid("addToCart", []apperrors.FieldError{
			{Field: "quantity", Message: "Quantity must be at least 1"},
		})
	}

	cart, err := r.carts.AddItem(ctx, identity.ID, productID, int(args.Quantity))
	if err != nil {
		return nil, r.fail("addToCart", err)
	}

	return &addToCartResponseResolver{message: "Product added to cart", cart: *cart}, nil
}

// UpdateCartItem sets the quantity of an item in the caller's cart.
func (r *Resolver) UpdateCartItem(ctx context.Context, args struct {
	ItemID   graphql.ID
	Quantity int32
}) (*cartResponseResolver, error) {
	identity, err := auth.Authenticated(ctx)
	if err != nil {
		return nil, r.fail("updateCartItem", err)
	}

	itemID, err := parseID(args.ItemID)
	if err != nil {
		return nil, r.fail("updateCartItem", err)
	}

	if args.Quantity < 1 {
		return nil, r.invalid("updateCartItem", []apperrors.FieldError{
			{Field: "quantity", Message: "Quantity must be at least 1"},
		})
	}

	cart, err := r.carts.UpdateItem(ctx, identity.ID, itemID, int(args.Quantity))
	if err != nil {
		return nil, r.fail("updateCartItem", err)
	}

	return &cartResponseResolver{cart: *cart}, nil
}

// RemoveCartItem deletes an item from the caller's cart.
func (r *Resolver) RemoveCartItem(ctx context.Context, args struct {
	ItemID graphql.ID
}) (*removeCartItemResponseResolver, error) {
	identity, err := auth.Authenticated(ctx)
	if err != nil {
		return nil, r.fail("removeCartItem", err)
	}

	itemID, err := parseID(args.ItemID)
	if err != nil {
		return nil, r.fail("removeCartItem", err)
	}

	if err := r.carts.RemoveItem(ctx, identity.ID, itemID); err != nil {
		return nil, r.fail("removeCartItem", err)
	}

	return &removeCartItemResponseResolver{message: "Cart item removed"}, nil
}

// ClearCart removes every item from the caller's cart.
func (r *Resolver) ClearCart(ctx context.Context) (*clearCartResponseResolver, error) {
	identity, err := auth.Authenticated(ctx)
	if err != nil {
		return nil, r.fail("clearCart", err)
	}

	if err := r.carts.Clear(ctx, identity.ID); err != nil {
		return nil, r.fail("clearCart", err)
	}

	return &clearCartResponseResolver{message: "Cart cleared"}, nil
}
