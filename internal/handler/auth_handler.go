package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"collegeblog/internal/apperror"
	"collegeblog/internal/models"
)

type LoginRequest struct {
	// the OAuth2 password form calls the email field "username"
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

// Login accepts an urlencoded or multipart form, or a JSON body.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
			writeError(w, apperror.NewInvalidInput("Invalid JSON body", err))
			return
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxJSONBody); err != nil {
			writeError(w, apperror.NewInvalidInput("Invalid form body", err))
			return
		}
		req.Username, req.Password = r.PostFormValue("username"), r.PostFormValue("password")
	default:
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		if err := r.ParseForm(); err != nil {
			writeError(w, apperror.NewInvalidInput("Invalid form body", err))
			return
		}
		req.Username, req.Password = r.PostFormValue("username"), r.PostFormValue("password")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = strings.TrimSpace(req.Username)
	}
	if email == "" || req.Password == "" {
		writeError(w, apperror.NewInvalidInput("username and password are required", nil))
		return
	}

	resp, err := h.AuthService.Login(r.Context(), email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, resp, http.StatusOK)
}

func (h *Handlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.VerifyEmail(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}
