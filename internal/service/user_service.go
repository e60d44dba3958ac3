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

// UserService handles profile reads and updates.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Profile(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, username string) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	log   *logrus.Logger
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, log *logrus.Logger) UserService {
	return &userService{users: users, log: log}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, username string) (*model.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Username = username
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Infof("Profile updated for user %d", userID)
	return user, nil
}
