package models

import (
	"time"
)

type User struct {
	ID                       int64      `json:"id" db:"id"`
	Email                    string     `json:"email" db:"email"`
	Username                 *string    `json:"username" db:"username"`
	PasswordHash             string     `json:"-" db:"hashed_password"`
	IsActive                 bool       `json:"is_active" db:"is_active"`
	IsVerified               bool       `json:"is_verified" db:"is_verified"`
	VerificationToken        *string    `json:"-" db:"verification_token"`
	VerificationTokenExpires *time.Time `json:"-" db:"verification_token_expires"`
	CreatedAt                time.Time  `json:"created_at" db:"created_at"`
}

// UserPublic is the account view embedded in other resources.
type UserPublic struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	Username   *string `json:"username"`
	IsActive   bool    `json:"is_active"`
	IsVerified bool    `json:"is_verified"`
}

func (u *User) Public() UserPublic {
	return UserPublic{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
	}
}

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Post struct {
	ID         int64       `json:"id" db:"id"`
	Title      string      `json:"title" db:"title"`
	Content    string      `json:"content" db:"content"`
	ImageURL   *string     `json:"image_url" db:"image_url"`
	OwnerID    int64       `json:"owner_id" db:"owner_id"`
	CategoryID *int64      `json:"category_id" db:"category_id"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	Category   *Category   `json:"category" db:"-"`
	Owner      *UserPublic `json:"owner,omitempty" db:"-"`
}

type Resource struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Context    string    `json:"context" db:"context"`
	Teachings  string    `json:"teachings" db:"teachings"`
	Link       string    `json:"link" db:"link"`
	ImageURL   *string   `json:"image_url" db:"image_url"`
	CategoryID *int64    `json:"category_id" db:"category_id"`
	OwnerID    *int64    `json:"owner_id" db:"owner_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	Category   *Category `json:"category" db:"-"`
}

type Club struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	CategoryID  *int64    `json:"category_id" db:"category_id"`
	OwnerID     *int64    `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Category    *Category `json:"category" db:"-"`
}

type Bookmark struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Post      *Post     `json:"post,omitempty" db:"-"`
}

type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	Username *string `json:"username" validate:"omitempty,min=1,max=50"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type PostInput struct {
	Title      string  `json:"title" validate:"required,max=255"`
	Content    string  `json:"content" validate:"required"`
	ImageURL   *string `json:"image_url" validate:"omitempty,url"`
	CategoryID *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

type ResourceInput struct {
	Title      string  `json:"title" validate:"required,max=255"`
	Context    string  `json:"context" validate:"required"`
	Teachings  string  `json:"teachings" validate:"required"`
	Link       string  `json:"link" validate:"required"`
	ImageURL   *string `json:"image_url" validate:"omitempty,url"`
	CategoryID *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

type ClubInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	CategoryID  *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

type CategoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

type BookmarkInput struct {
	PostID int64 `json:"post_id" validate:"required,gt=0"`
}

type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Success  bool   `json:"success"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Tables    int       `json:"tables,omitempty"`
}
