package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegeblog/internal/models"
)

var postRowColumns = []string{
	"id", "title", "content", "image_url", "owner_id", "category_id", "created_at",
	"category_name", "owner_email", "owner_username", "owner_is_active", "owner_is_verified",
}

func TestPostRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("successful create", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		post := &models.Post{Title: "Hello", Content: "World", OwnerID: 1, CategoryID: int64Ptr(2)}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
			WithArgs("Hello", "World", nil, int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))

		err := repo.Create(ctx, post)

		require.NoError(t, err)
		assert.Equal(t, int64(10), post.ID)
		assert.Equal(t, now, post.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown category", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "posts_category_id_fkey"})

		err := repo.Create(ctx, &models.Post{Title: "t", Content: "c", OwnerID: 1, CategoryID: int64Ptr(404)})

		assert.ErrorIs(t, err, ErrInvalidReference)
		assert.Equal(t, "posts_category_id_fkey", ConstraintName(err))
	})
}

func TestPostRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("joined row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(10, "Hello", "World", "http://img/1.png", 1, 2, now, "Events", "owner@college.edu", "owner", true, true))

		post, err := repo.GetByID(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, "Hello", post.Title)
		require.NotNil(t, post.Category)
		assert.Equal(t, models.Category{ID: 2, Name: "Events"}, *post.Category)
		require.NotNil(t, post.Owner)
		assert.Equal(t, "owner@college.edu", post.Owner.Email)
		assert.Equal(t, int64(1), post.Owner.ID)
	})

	t.Run("uncategorized", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(11, "t", "c", nil, 1, nil, now, nil, "o@c.edu", nil, true, false))

		post, err := repo.GetByID(ctx, 11)

		require.NoError(t, err)
		assert.Nil(t, post.Category)
		assert.Nil(t, post.ImageURL)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
			WillReturnRows(sqlmock.NewRows(postRowColumns))

		_, err := repo.GetByID(ctx, 12)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("filters are bound in order", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		filter := ListFilter{Skip: 10, Limit: 5, CategoryID: int64Ptr(2), Search: "exam"}

		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.category_id = $1 AND (p.title ILIKE $2 OR p.content ILIKE $2) ORDER BY p.created_at DESC, p.id DESC OFFSET $3 LIMIT $4")).
			WithArgs(int64(2), "%exam%", 10, 5).
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(20, "Exam tips", "c", nil, 1, 2, now, "Study", "o@c.edu", nil, true, true).
				AddRow(19, "t", "exam week", nil, 1, 2, now, "Study", "o@c.edu", nil, true, true))

		posts, err := repo.List(ctx, filter)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, int64(20), posts[0].ID)
		assert.Equal(t, "Study", posts[1].Category.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM posts p")).
			WillReturnRows(sqlmock.NewRows(postRowColumns))

		posts, err := repo.List(ctx, NewListFilter())

		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})
}

func TestPostRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update missing post", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE posts SET")).
			WithArgs("t", "c", nil, nil, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &models.Post{ID: 3, Title: "t", Content: "c"})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update ok", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE posts SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, &models.Post{ID: 3, Title: "t", Content: "c"}))
	})

	t.Run("delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, 3))
		assert.ErrorIs(t, repo.Delete(ctx, 3), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
