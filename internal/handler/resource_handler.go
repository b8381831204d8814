package handlers

import (
	"net/http"

	"collegeblog/internal/models"
)

func (h *Handlers) CreateResource(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.ResourceInput
	if err := h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	resource, err := h.ResourceService.CreateResource(r.Context(), user, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, resource, http.StatusOK)
}

func (h *Handlers) GetResources(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}

	resources, err := h.ResourceService.ListResources(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}

	writeSuccess(w, resources, http.StatusOK)
}

func (h *Handlers) GetResource(w http.ResponseWriter, r *http.Request) {
	resourceID, err := pathID(r, "resource_id")
	if err != nil {
		writeError(w, err)
		return
	}

	resource, err := h.ResourceService.GetResource(r.Context(), resourceID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, resource, http.StatusOK)
}

func (h *Handlers) UpdateResource(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	resourceID, err := pathID(r, "resource_id")
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.ResourceInput
	if err := h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	resource, err := h.ResourceService.UpdateResource(r.Context(), user, resourceID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, resource, http.StatusOK)
}

func (h *Handlers) DeleteResource(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	resourceID, err := pathID(r, "resource_id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.ResourceService.DeleteResource(r.Context(), user, resourceID); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}
