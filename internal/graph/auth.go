package graph

import (
	"context"
	"net/http"

	"gocart/internal/auth"
	"gocart/internal/model"
)

type signupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2,max=15"`
	Password string `json:"password" validate:"required,min=6,max=15"`
}

type signinInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=15"`
}

type signupResponseResolver struct {
	user *model.User
}

func (r *signupResponseResolver) Data() *userResolver {
	return &userResolver{user: *r.user}
}

type signinResponseResolver struct {
	token string
	user  *model.User
}

func (r *signinResponseResolver) Token() string {
	return r.token
}

func (r *signinResponseResolver) Data() *userResolver {
	return &userResolver{user: *r.user}
}

// Signup registers a new user account.
func (r *Resolver) Signup(ctx context.Context, args struct {
	Email    string
	Password string
	Username string
}) (*signupResponseResolver, error) {
	in := signupInput{Email: args.Email, Username: args.Username, Password: args.Password}
	if fields := r.validate.Struct(in); fields != nil {
		return nil, r.invalid("signup", fields)
	}

	user, err := r.auth.Signup(ctx, in.Email, in.Username, in.Password)
	if err != nil {
		return nil, r.fail("signup", err)
	}

	return &signupResponseResolver{user: user}, nil
}

// Signin authenticates a user, returns a session token, and mirrors it
// into an HTTP-only cookie for browser clients.
func (r *Resolver) Signin(ctx context.Context, args struct {
	Email    string
	Password string
}) (*signinResponseResolver, error) {
	in := signinInput{Email: args.Email, Password: args.Password}
	if fields := r.validate.Struct(in); fields != nil {
		return nil, r.invalid("signin", fields)
	}

	token, user, err := r.auth.Signin(ctx, in.Email, in.Password)
	if err != nil {
		return nil, r.fail("signin", err)
	}

	if w := auth.ResponseWriterFromContext(ctx); w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(auth.TokenExpiry.Seconds()),
			HttpOnly: true,
			Secure:   r.cfg.IsProduction(),
			SameSite: http.SameSiteStrictMode,
		})
	}

	return &signinResponseResolver{token: token, user: user}, nil
}
