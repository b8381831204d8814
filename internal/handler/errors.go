package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"collegeblog/internal/apperror"
	"collegeblog/internal/logger"
)

// writeError renders err as {"code", "detail"} with the status of its kind.
func writeError(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)

	if appErr.Kind == apperror.Unauthenticated {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "kind", appErr.Kind.String(), "error", err)
	}

	writeSuccess(w, appErr.ToResponse(), appErr.StatusCode())
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Warnw("failed to encode response", "error", err)
	}
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// validationError lists every failing field in one InvalidInput error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewInvalidInput("Invalid request body", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid URL", fe.Field()))
		case "max", "min":
			msgs = append(msgs, fmt.Sprintf("%s must have %s length %s", fe.Field(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return apperror.NewInvalidInput(strings.Join(msgs, "; "), err)
}
