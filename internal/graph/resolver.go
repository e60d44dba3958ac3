package graph

import (
	"strconv"

	"github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"

	"gocart/internal/config"
	apperrors "gocart/internal/errors"
	"gocart/internal/service"
	"gocart/internal/validation"
)

// Resolver is the root resolver behind every query and mutation.
type Resolver struct {
	cfg      *config.Config
	auth     service.AuthService
	users    service.UserService
	products service.ProductService
	carts    service.CartService
	validate *validation.Validator
	log      *logrus.Logger
}

// NewResolver wires the root resolver.
func NewResolver(
	cfg *config.Config,
	authService service.AuthService,
	userService service.UserService,
	productService service.ProductService,
	cartService service.CartService,
	log *logrus.Logger,
) *Resolver {
	return &Resolver{
		cfg:      cfg,
		auth:     authService,
		users:    userService,
		products: productService,
		carts:    cartService,
		validate: validation.New(),
		log:      log,
	}
}

// fail is the single boundary between internal errors and the client.
// Expected failures pass through typed; everything else is logged and
// collapsed into a generic internal error.
func (r *Resolver) fail(op string, err error) error {
	if apiErr, ok := apperrors.AsAPIError(err); ok {
		return apiErr
	}
	r.log.Errorf("Error during %s: %v", op, err)
	return apperrors.Internal()
}

// invalid wraps validator field errors into the BAD_USER_INPUT shape.
func (r *Resolver) invalid(op string, fields []apperrors.FieldError) error {
	r.log.Errorf("Validation failed during %s", op)
	return apperrors.BadUserInput("Validation failed", fields...)
}

func parseID(id graphql.ID) (uint, error) {
	parsed, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0, apperrors.BadUserInput("Invalid id")
	}
	return uint(parsed), nil
}
