package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"collegeblog/internal/models"
)

const bookmarkSelect = `
	SELECT b.id, b.user_id, b.post_id, b.created_at,
		p.title AS post_title,
		p.content AS post_content,
		p.image_url AS post_image_url,
		p.owner_id AS post_owner_id,
		p.category_id AS post_category_id,
		p.created_at AS post_created_at
	FROM bookmarks b
	JOIN posts p ON p.id = b.post_id
`

// bookmarkRow is a bookmark joined with a summary of its post.
type bookmarkRow struct {
	models.Bookmark
	PostTitle      string    `db:"post_title"`
	PostContent    string    `db:"post_content"`
	PostImageURL   *string   `db:"post_image_url"`
	PostOwnerID    int64     `db:"post_owner_id"`
	PostCategoryID *int64    `db:"post_category_id"`
	PostCreatedAt  time.Time `db:"post_created_at"`
}

func (r bookmarkRow) toModel() models.Bookmark {
	bookmark := r.Bookmark
	bookmark.Post = &models.Post{
		ID:         r.PostID,
		Title:      r.PostTitle,
		Content:    r.PostContent,
		ImageURL:   r.PostImageURL,
		OwnerID:    r.PostOwnerID,
		CategoryID: r.PostCategoryID,
		CreatedAt:  r.PostCreatedAt,
	}
	return bookmark
}

type bookmarkRepository struct {
	db *sqlx.DB
}

func NewBookmarkRepository(db *sqlx.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create relies on the (user_id, post_id) unique constraint for duplicates and
// on the posts foreign key for missing posts.
func (r *bookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	query := `
		INSERT INTO bookmarks (user_id, post_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, bookmark.UserID, bookmark.PostID).
		Scan(&bookmark.ID, &bookmark.CreatedAt)
	if err != nil {
		return classify("create bookmark", err)
	}

	return nil
}

func (r *bookmarkRepository) GetByID(ctx context.Context, bookmarkID int64) (*models.Bookmark, error) {
	var row bookmarkRow

	err := r.db.GetContext(ctx, &row, bookmarkSelect+` WHERE b.id = $1`, bookmarkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("bookmark %d: %w", bookmarkID, ErrNotFound)
		}
		return nil, fmt.Errorf("get bookmark: %w", err)
	}

	bookmark := row.toModel()
	return &bookmark, nil
}

func (r *bookmarkRepository) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]models.Bookmark, error) {
	skip, limit = clampPage(skip, limit)
	query := bookmarkSelect + `
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		OFFSET $2 LIMIT $3
	`

	var rows []bookmarkRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, skip, limit); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	bookmarks := make([]models.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmarks = append(bookmarks, row.toModel())
	}

	return bookmarks, nil
}

func (r *bookmarkRepository) Delete(ctx context.Context, bookmarkID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1`, bookmarkID)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("bookmark %d: %w", bookmarkID, ErrNotFound)
	}

	return nil
}
