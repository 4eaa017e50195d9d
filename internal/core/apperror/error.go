// Package apperror provides structured error handling following RFC 7807 Problem Details.
// All errors surfaced to API clients must use AppError for consistent responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"

	// Validation errors (400)
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidFilter = "INVALID_FILTER"
	CodeInvalidQuery  = "INVALID_QUERY"
	CodeInvalidSchema = "INVALID_SCHEMA"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field, operator, offending value...)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidFilter creates a filter deserialization error (400).
// It identifies the field, the operator token and the raw value that failed.
func NewInvalidFilter(field, operator, value string) *AppError {
	return &AppError{
		Code:       CodeInvalidFilter,
		Message:    fmt.Sprintf("invalid filter on field %q", field),
		HTTPStatus: http.StatusBadRequest,
		Details: map[string]any{
			"field":    field,
			"operator": operator,
			"value":    value,
		},
	}
}

// NewInvalidQuery creates an error for malformed envelope parameters (400).
func NewInvalidQuery(param, value string) *AppError {
	return &AppError{
		Code:       CodeInvalidQuery,
		Message:    fmt.Sprintf("invalid query parameter %q", param),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"param": param, "value": value},
	}
}

// NewInvalidSchema creates an error for an invalid resource definition.
func NewInvalidSchema(resource, message string) *AppError {
	return &AppError{
		Code:       CodeInvalidSchema,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"resource": resource},
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsInvalidFilter checks if error is CodeInvalidFilter
func IsInvalidFilter(err error) bool {
	return hasCode(err, CodeInvalidFilter)
}

// IsInvalidQuery checks if error is CodeInvalidQuery
func IsInvalidQuery(err error) bool {
	return hasCode(err, CodeInvalidQuery)
}

func hasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}
