// Package errors defines the application error taxonomy: typed errors with a
// stable externally-visible code, plus the data-integrity error raised by the
// validation boundary when stored data no longer matches its schema.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"hmaas-backend/pkg/schema"
)

// Stable error codes surfaced in the error envelope.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeUnprocessable      = "UNPROCESSABLE_ENTITY"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
	CodeBadGateway         = "BAD_GATEWAY"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeValidation         = "VALIDATION_ERROR"
)

// CodeForStatus maps an HTTP status to its default stable error code.
// Unmapped statuses fall back to INTERNAL_SERVER_ERROR.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnprocessableEntity:
		return CodeUnprocessable
	case http.StatusTooManyRequests:
		return CodeTooManyRequests
	case http.StatusInternalServerError:
		return CodeInternal
	case http.StatusBadGateway:
		return CodeBadGateway
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		return CodeInternal
	}
}

// AppError is an application error with an HTTP status and a stable code.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Cause   error  `json:"-"`
}

// New creates an AppError with the code derived from the status.
func New(message string, status int) *AppError {
	return &AppError{
		Status:  status,
		Code:    CodeForStatus(status),
		Message: message,
	}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// WithDetails attaches structured details to the error.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// NewValidationError creates a 400 VALIDATION_ERROR carrying the field-level
// issue list produced by request validation.
func NewValidationError(message string, issues []schema.Issue) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: message,
		Details: issues,
	}
}

// NewNotFoundError creates a 404 for the named resource.
func NewNotFoundError(resource string) *AppError {
	return New(fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// NewBadRequestError creates a plain 400.
func NewBadRequestError(message string) *AppError {
	return New(message, http.StatusBadRequest)
}

// NewInternalError creates a 500.
func NewInternalError(message string) *AppError {
	return New(message, http.StatusInternalServerError)
}

// DataIntegrityError is raised when data read back from the store fails
// schema validation. It is a server-side fault, never a client input problem,
// and carries the offending payload for forensics.
type DataIntegrityError struct {
	Entity  string
	Issues  []schema.Issue
	Payload map[string]any
}

// Error implements the error interface.
func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error reading %s: %d field issue(s)", e.Entity, len(e.Issues))
}

// NewDataIntegrityError creates a DataIntegrityError for the given entity.
func NewDataIntegrityError(entity string, issues []schema.Issue, payload map[string]any) *DataIntegrityError {
	return &DataIntegrityError{Entity: entity, Issues: issues, Payload: payload}
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetDataIntegrityError extracts a DataIntegrityError from an error chain, or nil.
func GetDataIntegrityError(err error) *DataIntegrityError {
	var die *DataIntegrityError
	if errors.As(err, &die) {
		return die
	}
	return nil
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Status == http.StatusNotFound
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == CodeValidation
}

// IsDataIntegrity checks if an error is a data integrity error.
func IsDataIntegrity(err error) bool {
	return GetDataIntegrityError(err) != nil
}
