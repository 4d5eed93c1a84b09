package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"wardbook/internal/apperrors"
	"wardbook/internal/models"
	"wardbook/internal/repositories"
	"wardbook/internal/utils"
)

type AuthService struct {
	userRepo *repositories.UserRepository
	logger   *slog.Logger
}

func NewAuthService(userRepo *repositories.UserRepository, logger *slog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate returns the user when the credentials match, nil otherwise.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			s.logger.Warn("stored password hash unreadable", "user_id", user.ID, "error", err)
		}
		return nil, nil
	}
	return user, nil
}

// Register creates the account. It reports false when the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, apperrors.InvalidInput("username and password are required")
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}

	user := &models.User{Username: username, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if apperrors.IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return true, nil
}
