package service

import (
	"context"
	"errors"
	"strings"

	"collegeblog/internal/apperror"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

type UserService interface {
	UpdateUsername(ctx context.Context, user *models.User, req models.UpdateUsernameRequest) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) UpdateUsername(ctx context.Context, user *models.User, req models.UpdateUsernameRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperror.NewInvalidInput("Username must not be empty", nil)
	}

	// check whether the name belongs to someone else
	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	switch {
	case err == nil && existing.ID != user.ID:
		return nil, apperror.NewConflict("Username already taken", nil)
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, repoError(err, "User")
	}

	updated, err := s.userRepo.UpdateUsername(ctx, user.ID, username)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.NewConflict("Username already taken", err)
		}
		return nil, repoError(err, "User")
	}

	return updated, nil
}
