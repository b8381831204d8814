package service

import (
	"errors"
	"strings"

	"collegeblog/internal/apperror"
	"collegeblog/internal/config"
	"collegeblog/internal/logger"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

// repoError translates repository sentinels into application errors for entity.
func repoError(err error, entity string) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrNotFound):
		return apperror.NewNotFound(entity+" not found", err)
	case errors.Is(err, repository.ErrInvalidReference):
		return apperror.NewInvalidInput("Category not found", err)
	case errors.Is(err, repository.ErrDuplicate):
		return apperror.NewConflict(entity+" already exists", err)
	default:
		logger.Log.Errorw("repository error", "entity", entity, "error", err)
		return apperror.NewInternal("Internal server error", err)
	}
}

// authorizeMutation applies the configured ownership policy for an entity.
func authorizeMutation(policy config.OwnershipPolicy, user *models.User, ownerID *int64, entity string) error {
	if user == nil {
		return apperror.NewUnauthenticated("Not authenticated", nil)
	}
	if policy == config.AnyAuthenticated {
		return nil
	}
	if ownerID == nil || *ownerID != user.ID {
		return apperror.NewForbidden("Not authorized to modify this "+entity, nil)
	}
	return nil
}

// requireText rejects values that are empty once surrounding whitespace is removed.
func requireText(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return apperror.NewInvalidInput(fields[i]+" must not be blank", nil)
		}
	}
	return nil
}
