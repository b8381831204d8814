package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"collegeblog/internal/models"
)

const postSelect = `
	SELECT p.id, p.title, p.content, p.image_url, p.owner_id, p.category_id, p.created_at,
		c.name AS category_name,
		u.email AS owner_email,
		u.username AS owner_username,
		u.is_active AS owner_is_active,
		u.is_verified AS owner_is_verified
	FROM posts p
	JOIN users u ON u.id = p.owner_id
	LEFT JOIN post_categories c ON c.id = p.category_id
`

var postList = listQuery{
	base:          postSelect,
	alias:         "p",
	searchColumns: []string{"p.title", "p.content"},
}

// postRow is a post joined with its category and owner.
type postRow struct {
	models.Post
	CategoryName    sql.NullString `db:"category_name"`
	OwnerEmail      string         `db:"owner_email"`
	OwnerUsername   *string        `db:"owner_username"`
	OwnerIsActive   bool           `db:"owner_is_active"`
	OwnerIsVerified bool           `db:"owner_is_verified"`
}

func (r postRow) toModel() models.Post {
	post := r.Post
	if post.CategoryID != nil && r.CategoryName.Valid {
		post.Category = &models.Category{ID: *post.CategoryID, Name: r.CategoryName.String}
	}
	post.Owner = &models.UserPublic{
		ID:         post.OwnerID,
		Email:      r.OwnerEmail,
		Username:   r.OwnerUsername,
		IsActive:   r.OwnerIsActive,
		IsVerified: r.OwnerIsVerified,
	}
	return post
}

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (title, content, image_url, owner_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		post.Title, post.Content, post.ImageURL, post.OwnerID, post.CategoryID,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return classify("create post", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	var row postRow

	err := r.db.GetContext(ctx, &row, postSelect+` WHERE p.id = $1`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	post := row.toModel()
	return &post, nil
}

func (r *PostRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]models.Post, error) {
	query, args := buildListQuery(postList, filter)

	var rows []postRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toModel())
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = $1,
			content = $2,
			image_url = $3,
			category_id = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Content, post.ImageURL, post.CategoryID, post.ID,
	)
	if err != nil {
		return classify("update post", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", post.ID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	return nil
}
