package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// Error codes shared by every endpoint.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// APIError standardizes application errors. It is constructed at the point
// of failure and consumed once by the terminal error middleware, which is
// the only place a user-facing error body is produced.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// New constructs an APIError.
func New(code, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, StatusCode: status}
}

func NewUnauthorized(message string) error {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewValidation(message string) error {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func NewNotFound(resource string) error {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewConflict(message string) error {
	return New(CodeConflict, message, http.StatusConflict)
}

func NewInternal(err error) error {
	return &APIError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToAPIError converts generic errors to an APIError, defaulting unknown
// failures to 500 INTERNAL_ERROR.
func ToAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return New(CodeNotFound, "resource not found", http.StatusNotFound)
	}
	return &APIError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}
