package graph

import (
	"context"

	"gocart/internal/auth"
	"gocart/internal/model"
)

type updateProfileInput struct {
	Username string `json:"username" validate:"required,min=2,max=15"`
}

type userResolver struct {
	user model.User
}

func (r *userResolver) ID() int32 {
	return int32(r.user.ID)
}

func (r *userResolver) Email() string {
	return r.user.Email
}

func (r *userResolver) Username() string {
	return r.user.Username
}

func (r *userResolver) Role() *string {
	if r.user.Role == "" {
		return nil
	}
	role := string(r.user.Role)
	return &role
}

type userResponseResolver struct {
	user model.User
}

func (r *userResponseResolver) Data() *userResolver {
	return &userResolver{user: r.user}
}

// GetAllUsers lists every registered user.
func (r *Resolver) GetAllUsers(ctx context.Context) ([]*userResponseResolver, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, r.fail("getAllUsers", err)
	}

	resolvers := make([]*userResponseResolver, 0, len(users))
	for _, user := range users {
		resolvers = append(resolvers, &userResponseResolver{user: user})
	}
	return resolvers, nil
}

// GetUserProfile returns the authenticated caller's profile.
func (r *Resolver) GetUserProfile(ctx context.Context) (*userResponseResolver, error) {
	identity, err := auth.Authenticated(ctx)
	if err != nil {
		return nil, r.fail("getUserProfile", err)
	}

	user, err := r.users.Profile(ctx, identity.ID)
	if err != nil {
		return nil, r.fail("getUserProfile", err)
	}

	return &userResponseResolver{user: *user}, nil
}

// UpdateUserProfile changes the authenticated caller's username.
func (r *Resolver) UpdateUserProfile(ctx context.Context, args struct {
	Username string
}) (*userResponseResolver, error) {
	identity, err := auth.Authenticated(ctx)
	if err != nil {
		return nil, r.fail("updateUserProfile", err)
	}

	in := updateProfileInput{Username: args.Username}
	if fields := r.validate.Struct(in); fields != nil {
		return nil, r.invalid("updateUserProfile", fields)
	}

	user, err := r.users.UpdateProfile(ctx, identity.ID, in.Username)
	if err != nil {
		return nil, r.fail("updateUserProfile", err)
	}

	return &userResponseResolver{user: *user}, nil
}
