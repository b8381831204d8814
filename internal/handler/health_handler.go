package handlers

import (
	"net/http"

	"collegeblog/internal/service"
)

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	status := h.HealthService.Check(r.Context())

	code := http.StatusOK
	if status.Status != service.StatusHealthy {
		code = http.StatusServiceUnavailable
	}

	writeSuccess(w, status, code)
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"message": "College blog API"}, http.StatusOK)
}
