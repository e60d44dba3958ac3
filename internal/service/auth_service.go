package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"gocart/internal/auth"
	apperrors "gocart/internal/errors"
	"gocart/internal/model"
	"gocart/internal/repository"
)

// AuthService handles signup and signin.
type AuthService interface {
	Signup(ctx context.Context, email, username, password string) (*model.User, error)
	Signin(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	log        *logrus.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, log *logrus.Logger) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		log:        log,
	}
}

func emailInUse() *apperrors.APIError {
	return apperrors.BadUserInput("Email is already in use.", apperrors.FieldError{
		Field:   "email",
		Message: "Email is already in use.",
	})
}

// Signup creates a new user with a hashed password and the default role.
func (s *authService) Signup(ctx context.Context, email, username, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, emailInUse()
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
		Role:         model.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Concurrent signup with the same email loses to the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, emailInUse()
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Signin verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the client.
func (s *authService) Signin(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Unauthorized("Invalid email or password", apperrors.FieldError{
				Field:   "email",
				Message: "Invalid email or password",
			})
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, apperrors.Unauthorized("Invalid email or password", apperrors.FieldError{
			Field:   "password",
			Message: "Invalid email or password",
		})
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, user, nil
}
