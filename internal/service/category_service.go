package service

import (
	"context"
	"errors"
	"strings"

	"collegeblog/internal/apperror"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

// CategoryService manages one kind of category (post, resource or club).
type CategoryService interface {
	CreateCategory(ctx context.Context, user *models.User, input models.CategoryInput) (*models.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*models.Category, error)
	ListCategories(ctx context.Context, skip, limit int) ([]models.Category, error)
	UpdateCategory(ctx context.Context, user *models.User, categoryID int64, input models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, user *models.User, categoryID int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// ensureNameFree rejects a name already used by a category other than selfID.
func (s *categoryService) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	switch {
	case err == nil && existing.ID != selfID:
		return apperror.NewConflict("Category already exists", nil)
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return repoError(err, "Category")
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, user *models.User, input models.CategoryInput) (*models.Category, error) {
	if user == nil {
		return nil, apperror.NewUnauthenticated("Not authenticated", nil)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidInput("Category name must not be empty", nil)
	}

	if err := s.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, repoError(err, "Category")
	}

	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID int64) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, repoError(err, "Category")
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, skip, limit int) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, repoError(err, "Category")
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, user *models.User, categoryID int64, input models.CategoryInput) (*models.Category, error) {
	if user == nil {
		return nil, apperror.NewUnauthenticated("Not authenticated", nil)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidInput("Category name must not be empty", nil)
	}

	if err := s.ensureNameFree(ctx, name, categoryID); err != nil {
		return nil, err
	}

	category := &models.Category{ID: categoryID, Name: name}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, repoError(err, "Category")
	}

	return category, nil
}

// DeleteCategory leaves referencing entities uncategorized.
func (s *categoryService) DeleteCategory(ctx context.Context, user *models.User, categoryID int64) error {
	if user == nil {
		return apperror.NewUnauthenticated("Not authenticated", nil)
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		return repoError(err, "Category")
	}
	return nil
}
