package services

import (
	"context"

	"wardbook/internal/models"
	"wardbook/internal/repositories"
)

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsernames returns all usernames in alphabetical order.
func (s *UserService) ListUsernames(ctx context.Context) ([]string, error) {
	return s.userRepo.ListUsernames(ctx)
}

// FindByID returns nil when the account no longer exists.
func (s *UserService) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}
