// Package apperrors defines the domain error taxonomy shared by services,
// repositories and handlers.
//
// Three failure kinds carry a client-facing message and a fixed HTTP status:
// validation failures (400), uniqueness conflicts (400) and missing records
// (404). Anything else is treated as unexpected and surfaces as a 500.
package apperrors

import (
	"errors"
	"net/http"
)

// ValidationError reports malformed, missing or out-of-range input,
// detected before any mutation
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with the given client-facing message
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ConflictError reports a uniqueness violation, detected either by a
// pre-write check or by the store itself
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a ConflictError with the given client-facing message
func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NotFoundError reports an operation targeting a nonexistent identity
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound creates a NotFoundError with the given client-facing message
func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// StatusCode maps an error to its HTTP status code.
// Unknown errors map to 500.
func StatusCode(err error) int {
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		notFoundErr   *NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &conflictErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error.
// Unexpected errors get a generic message so internals are not leaked.
func Message(err error) string {
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		notFoundErr   *NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &conflictErr):
		return conflictErr.Message
	case errors.As(err, &notFoundErr):
		return notFoundErr.Message
	default:
		return "Internal server error."
	}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
