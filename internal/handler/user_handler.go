package handlers

import (
	"net/http"

	"collegeblog/internal/models"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.UpdateUsernameRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.UserService.UpdateUsername(r.Context(), user, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, updated, http.StatusOK)
}
