package repository

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"collegeblog/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error)
	MarkVerified(ctx context.Context, userID int64, token string) (*models.User, error)
	ClearVerificationToken(ctx context.Context, userID int64) error
	UpdateUsername(ctx context.Context, userID int64, username string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	List(ctx context.Context, filter ListFilter) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, resourceID int64) (*models.Resource, error)
	List(ctx context.Context, filter ListFilter) ([]models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, resourceID int64) error
}

type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, clubID int64) (*models.Club, error)
	List(ctx context.Context, filter ListFilter) ([]models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	Delete(ctx context.Context, clubID int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, categoryID int64) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context, skip, limit int) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, categoryID int64) error
}

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	GetByID(ctx context.Context, bookmarkID int64) (*models.Bookmark, error)
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]models.Bookmark, error)
	Delete(ctx context.Context, bookmarkID int64) error
}

type HealthRepository interface {
	Ping(ctx context.Context) error
	CountTables(ctx context.Context) (int, error)
}

type Repository struct {
	User             UserRepository
	Post             PostRepository
	Resource         ResourceRepository
	Club             ClubRepository
	PostCategory     CategoryRepository
	ResourceCategory CategoryRepository
	ClubCategory     CategoryRepository
	Bookmark         BookmarkRepository
	Health           HealthRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:             NewUserRepository(db),
		Post:             NewPostRepository(db),
		Resource:         NewResourceRepository(db),
		Club:             NewClubRepository(db),
		PostCategory:     NewCategoryRepository(db, PostCategories),
		ResourceCategory: NewCategoryRepository(db, ResourceCategories),
		ClubCategory:     NewCategoryRepository(db, ClubCategories),
		Bookmark:         NewBookmarkRepository(db),
		Health:           NewHealthRepository(db),
	}
}
