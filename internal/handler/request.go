package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"collegeblog/internal/apperror"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

const maxJSONBody = 1 << 20

// authenticate runs the bearer token through the Authenticator.
func (h *Handlers) authenticate(r *http.Request) (*models.User, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, apperror.NewUnauthenticated("Not authenticated", nil)
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, apperror.NewUnauthenticated("Not authenticated", nil)
	}

	return h.Auth.Resolve(r.Context(), token)
}

// decodeJSON decodes and validates a request body into dst.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.NewInvalidInput("Request body is empty", err)
		}
		return apperror.NewInvalidInput("Invalid JSON body", err)
	}

	if err := h.Validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewInvalidInput("Invalid "+name, err)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewInvalidInput(name+" must be an integer", err)
	}
	return v, nil
}

// parsePage reads skip/limit; out of range values are clamped later.
func parsePage(r *http.Request) (int, int, error) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryInt(r, "limit", repository.DefaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

// parseTime accepts RFC 3339 timestamps and plain dates. The bool reports a plain date.
func parseTime(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// parseListFilter reads the list query parameters shared by posts, resources and clubs.
func parseListFilter(r *http.Request) (repository.ListFilter, error) {
	filter := repository.NewListFilter()
	q := r.URL.Query()

	skip, limit, err := parsePage(r)
	if err != nil {
		return filter, err
	}
	filter.Skip, filter.Limit = skip, limit

	if raw := strings.TrimSpace(q.Get("category_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, apperror.NewInvalidInput("category_id must be an integer", err)
		}
		filter.CategoryID = &id
	}

	if raw := strings.TrimSpace(q.Get("start_date")); raw != "" {
		start, _, err := parseTime(raw)
		if err != nil {
			return filter, apperror.NewInvalidInput("start_date must be YYYY-MM-DD or RFC 3339", err)
		}
		filter.StartDate = &start
	}

	if raw := strings.TrimSpace(q.Get("end_date")); raw != "" {
		end, dateOnly, err := parseTime(raw)
		if err != nil {
			return filter, apperror.NewInvalidInput("end_date must be YYYY-MM-DD or RFC 3339", err)
		}
		if dateOnly {
			// include the whole day
			end = end.Add(24*time.Hour - time.Microsecond)
		}
		filter.EndDate = &end
	}

	filter.Search = q.Get("search")
	return filter, nil
}
