package handlers

import (
	"net/http"

	"collegeblog/internal/models"
)

func (h *Handlers) CreateClub(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.ClubInput
	if err := h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	club, err := h.ClubService.CreateClub(r.Context(), user, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, club, http.StatusOK)
}

func (h *Handlers) GetClubs(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}

	clubs, err := h.ClubService.ListClubs(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if clubs == nil {
		clubs = []models.Club{}
	}

	writeSuccess(w, clubs, http.StatusOK)
}

func (h *Handlers) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, err)
		return
	}

	club, err := h.ClubService.GetClub(r.Context(), clubID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, club, http.StatusOK)
}

func (h *Handlers) UpdateClub(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, err)
		return
	}

	var input models.ClubInput
	if err := h.decodeJSON(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	club, err := h.ClubService.UpdateClub(r.Context(), user, clubID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, club, http.StatusOK)
}

func (h *Handlers) DeleteClub(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, err)
		return
	}

	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.ClubService.DeleteClub(r.Context(), user, clubID); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}
