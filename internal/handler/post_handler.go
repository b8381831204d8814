package handlers

import (
	"net/http"

	"collegeblog/internal/models"
)

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.PostInput
	if err := h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), user, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}

	posts, err := h.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		writeError(w, err)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	postID, err := pathID(r, "post_id")
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.PostInput
	if err := h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), user, postID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	postID, err := pathID(r, "post_id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), user, postID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, models.MessageResponse{Message: "Post Deleted Successfully"}, http.StatusOK)
}
