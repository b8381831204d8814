package handlers

import (
	"net/http"

	"collegeblog/internal/models"
)

func (h *Handlers) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.BookmarkInput
	if err := h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	bookmark, err := h.BookmarkService.CreateBookmark(r.Context(), user, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, bookmark, http.StatusCreated)
}

func (h *Handlers) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	skip, limit, err := parsePage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	bookmarks, err := h.BookmarkService.ListBookmarks(r.Context(), user, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}

	writeSuccess(w, bookmarks, http.StatusOK)
}

func (h *Handlers) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	bookmarkID, err := pathID(r, "bookmark_id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.BookmarkService.DeleteBookmark(r.Context(), user, bookmarkID); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}
