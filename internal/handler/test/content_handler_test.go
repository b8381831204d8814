package test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"collegeblog/internal/apperror"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

func TestResourceHandlers(t *testing.T) {
	input := models.ResourceInput{Title: "Notes", Context: "c", Teachings: "t", Link: "https://example.com"}

	t.Run("list with search", func(t *testing.T) {
		env := newTestEnv(t)
		filter := repository.NewListFilter()
		filter.Search = "calc"
		env.resources.On("ListResources", mock.Anything, filter).Return([]models.Resource{{ID: 1}}, nil)

		rr := env.do(http.MethodGet, "/resources?search=calc", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]models.Resource](t, rr), 1)
	})

	t.Run("create requires token", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(http.MethodPost, "/resources/", input, "")

		assertJSONError(t, rr, http.StatusUnauthorized, "unauthenticated")
	})

	t.Run("create", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		env.resources.On("CreateResource", mock.Anything, user, input).Return(&models.Resource{ID: 4, Title: "Notes"}, nil)

		rr := env.do(http.MethodPost, "/resources/", input, validToken)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		env.resources.On("DeleteResource", mock.Anything, user, int64(4)).Return(nil)

		rr := env.do(http.MethodDelete, "/resources/4", nil, validToken)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestClubHandlers(t *testing.T) {
	t.Run("get missing", func(t *testing.T) {
		env := newTestEnv(t)
		env.clubs.On("GetClub", mock.Anything, int64(8)).Return(nil, apperror.NewNotFound("Club not found", nil))

		rr := env.do(http.MethodGet, "/clubs/8", nil, "")

		assertJSONError(t, rr, http.StatusNotFound, "not_found")
	})

	t.Run("update", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		input := models.ClubInput{Name: "Chess", Description: "Weekly games"}
		env.clubs.On("UpdateClub", mock.Anything, user, int64(8), input).Return(&models.Club{ID: 8, Name: "Chess"}, nil)

		rr := env.do(http.MethodPut, "/clubs/8", input, validToken)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Chess", decode[models.Club](t, rr).Name)
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		env.clubs.On("DeleteClub", mock.Anything, user, int64(8)).Return(nil)

		rr := env.do(http.MethodDelete, "/clubs/8", nil, validToken)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestCategoryHandlers(t *testing.T) {
	t.Run("list is open", func(t *testing.T) {
		env := newTestEnv(t)
		env.postCategories.On("ListCategories", mock.Anything, 0, 100).Return([]models.Category{{ID: 1, Name: "News"}}, nil)

		rr := env.do(http.MethodGet, "/post-categories/", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []models.Category{{ID: 1, Name: "News"}}, decode[[]models.Category](t, rr))
	})

	t.Run("create requires token", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(http.MethodPost, "/resource-categories/", models.CategoryInput{Name: "Math"}, "")

		assertJSONError(t, rr, http.StatusUnauthorized, "unauthenticated")
	})

	t.Run("duplicate name", func(t *testing.T) {
		env := newTestEnv(t)
		env.loggedIn(1)
		env.clubCategories.On("CreateCategory", mock.Anything, mock.Anything, models.CategoryInput{Name: "Sports"}).
			Return(nil, apperror.NewConflict("Category already exists", nil))

		rr := env.do(http.MethodPost, "/club-categories/", models.CategoryInput{Name: "Sports"}, validToken)

		assertJSONError(t, rr, http.StatusConflict, "conflict")
	})

	t.Run("kinds are separate", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		env.resourceCategory.On("CreateCategory", mock.Anything, user, models.CategoryInput{Name: "Math"}).
			Return(&models.Category{ID: 2, Name: "Math"}, nil)

		rr := env.do(http.MethodPost, "/resource-categories", models.CategoryInput{Name: "Math"}, validToken)

		assert.Equal(t, http.StatusOK, rr.Code)
		env.postCategories.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything, mock.Anything)
		env.clubCategories.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		env.postCategories.On("DeleteCategory", mock.Anything, user, int64(2)).Return(nil)

		rr := env.do(http.MethodDelete, "/post-categories/2", nil, validToken)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestBookmarkHandlers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		env.bookmarks.On("CreateBookmark", mock.Anything, user, models.BookmarkInput{PostID: 5}).
			Return(&models.Bookmark{ID: 1, UserID: 1, PostID: 5}, nil)

		rr := env.do(http.MethodPost, "/bookmarks/", models.BookmarkInput{PostID: 5}, validToken)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		env := newTestEnv(t)
		env.loggedIn(1)
		env.bookmarks.On("CreateBookmark", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.NewConflict("Post already bookmarked", nil))

		rr := env.do(http.MethodPost, "/bookmarks/", models.BookmarkInput{PostID: 5}, validToken)

		assertJSONError(t, rr, http.StatusConflict, "conflict")
	})

	t.Run("list requires token", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(http.MethodGet, "/bookmarks/", nil, "")

		assertJSONError(t, rr, http.StatusUnauthorized, "unauthenticated")
	})

	t.Run("list", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		env.bookmarks.On("ListBookmarks", mock.Anything, user, 0, 100).Return(nil, nil)

		rr := env.do(http.MethodGet, "/bookmarks", nil, validToken)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.loggedIn(1)
		env.bookmarks.On("DeleteBookmark", mock.Anything, user, int64(3)).Return(nil)

		rr := env.do(http.MethodDelete, "/bookmarks/3", nil, validToken)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("delete someone else's", func(t *testing.T) {
		env := newTestEnv(t)
		env.loggedIn(1)
		env.bookmarks.On("DeleteBookmark", mock.Anything, mock.Anything, int64(3)).
			Return(apperror.NewForbidden("Not authorized to delete this bookmark", nil))

		rr := env.do(http.MethodDelete, "/bookmarks/3", nil, validToken)

		assertJSONError(t, rr, http.StatusForbidden, "forbidden")
	})
}
