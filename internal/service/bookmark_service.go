package service

import (
	"context"
	"errors"

	"collegeblog/internal/apperror"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

type BookmarkService interface {
	CreateBookmark(ctx context.Context, user *models.User, input models.BookmarkInput) (*models.Bookmark, error)
	ListBookmarks(ctx context.Context, user *models.User, skip, limit int) ([]models.Bookmark, error)
	DeleteBookmark(ctx context.Context, user *models.User, bookmarkID int64) error
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo}
}

func (s *bookmarkService) CreateBookmark(ctx context.Context, user *models.User, input models.BookmarkInput) (*models.Bookmark, error) {
	if user == nil {
		return nil, apperror.NewUnauthenticated("Not authenticated", nil)
	}

	bookmark := &models.Bookmark{UserID: user.ID, PostID: input.PostID}

	err := s.bookmarkRepo.Create(ctx, bookmark)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, apperror.NewConflict("Post already bookmarked", err)
	case errors.Is(err, repository.ErrInvalidReference):
		return nil, apperror.NewNotFound("Post not found", err)
	case err != nil:
		return nil, repoError(err, "Bookmark")
	}

	created, err := s.bookmarkRepo.GetByID(ctx, bookmark.ID)
	if err != nil {
		return nil, repoError(err, "Bookmark")
	}
	return created, nil
}

func (s *bookmarkService) ListBookmarks(ctx context.Context, user *models.User, skip, limit int) ([]models.Bookmark, error) {
	if user == nil {
		return nil, apperror.NewUnauthenticated("Not authenticated", nil)
	}

	bookmarks, err := s.bookmarkRepo.ListByUser(ctx, user.ID, skip, limit)
	if err != nil {
		return nil, repoError(err, "Bookmark")
	}
	return bookmarks, nil
}

func (s *bookmarkService) DeleteBookmark(ctx context.Context, user *models.User, bookmarkID int64) error {
	if user == nil {
		return apperror.NewUnauthenticated("Not authenticated", nil)
	}

	bookmark, err := s.bookmarkRepo.GetByID(ctx, bookmarkID)
	if err != nil {
		return repoError(err, "Bookmark")
	}

	if bookmark.UserID != user.ID {
		return apperror.NewForbidden("Not authorized to delete this bookmark", nil)
	}

	if err := s.bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
		return repoError(err, "Bookmark")
	}
	return nil
}
