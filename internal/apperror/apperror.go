// Package apperror is the error taxonomy shared by services and handlers.
// Services return *AppError values; handlers turn them into HTTP responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	Internal Kind = iota
	Unauthenticated
	Forbidden
	NotFound
	Conflict
	InvalidInput
	InvalidToken
	ExpiredToken
	UpstreamFailure
)

var kindNames = map[Kind]string{
	Internal:        "internal",
	Unauthenticated: "unauthenticated",
	Forbidden:       "forbidden",
	NotFound:        "not_found",
	Conflict:        "conflict",
	InvalidInput:    "invalid_input",
	InvalidToken:    "invalid_token",
	ExpiredToken:    "expired_token",
	UpstreamFailure: "upstream_failure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Internal]
}

// StatusCode maps the kind to an HTTP status.
func (k Kind) StatusCode() int {
	switch k {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case InvalidInput, InvalidToken, ExpiredToken:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.Kind.StatusCode()
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// ToResponse exposes only the user-facing message, never the wrapped cause.
// UpstreamFailure is the exception: the collaborator's message is attached.
func (e *AppError) ToResponse() ErrorResponse {
	detail := e.Message
	if e.Kind == UpstreamFailure && e.Err != nil {
		detail = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return ErrorResponse{Code: e.Kind.String(), Detail: detail}
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewUnauthenticated(message string, err error) *AppError {
	return New(Unauthenticated, message, err)
}

func NewForbidden(message string, err error) *AppError {
	return New(Forbidden, message, err)
}

func NewNotFound(message string, err error) *AppError {
	return New(NotFound, message, err)
}

func NewConflict(message string, err error) *AppError {
	return New(Conflict, message, err)
}

func NewInvalidInput(message string, err error) *AppError {
	return New(InvalidInput, message, err)
}

func NewInvalidToken(message string, err error) *AppError {
	return New(InvalidToken, message, err)
}

func NewExpiredToken(message string, err error) *AppError {
	return New(ExpiredToken, message, err)
}

func NewUpstreamFailure(message string, err error) *AppError {
	return New(UpstreamFailure, message, err)
}

func NewInternal(message string, err error) *AppError {
	return New(Internal, message, err)
}

// From finds the first *AppError in err's chain. Anything else becomes Internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("Internal server error", err)
}

// Is reports whether err carries an *AppError of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
