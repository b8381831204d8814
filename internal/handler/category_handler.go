package handlers

import (
	"net/http"

	"collegeblog/internal/models"
	"collegeblog/internal/service"
)

// CategoryHandler serves one category kind. The three kinds share routes
// shaped like /<kind>-categories/.
type CategoryHandler struct {
	h   *Handlers
	svc service.CategoryService
}

func (h *Handlers) PostCategories() *CategoryHandler {
	return &CategoryHandler{h: h, svc: h.PostCategoryService}
}

func (h *Handlers) ResourceCategories() *CategoryHandler {
	return &CategoryHandler{h: h, svc: h.ResourceCategoryService}
}

func (h *Handlers) ClubCategories() *CategoryHandler {
	return &CategoryHandler{h: h, svc: h.ClubCategoryService}
}

func (c *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := c.h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.CategoryInput
	if err := c.h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	category, err := c.svc.CreateCategory(r.Context(), user, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, category, http.StatusOK)
}

func (c *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	categories, err := c.svc.ListCategories(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	writeSuccess(w, categories, http.StatusOK)
}

func (c *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "category_id")
	if err != nil {
		writeError(w, err)
		return
	}

	category, err := c.svc.GetCategory(r.Context(), categoryID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, category, http.StatusOK)
}

func (c *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, err := c.h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	categoryID, err := pathID(r, "category_id")
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.CategoryInput
	if err := c.h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	category, err := c.svc.UpdateCategory(r.Context(), user, categoryID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, category, http.StatusOK)
}

func (c *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := c.h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	categoryID, err := pathID(r, "category_id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := c.svc.DeleteCategory(r.Context(), user, categoryID); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}
