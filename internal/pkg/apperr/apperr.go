// Package apperr provides domain-specific error types for the contacts API.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal error")
)

// ValidationError reports a single invalid or missing field.
// Validation is fail-fast: construction of an entity stops at the first
// field that does not satisfy its rule, so callers always surface exactly
// one message.
type ValidationError struct {
	// Field is the name of the offending field.
	Field string

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf creates a ValidationError for field with a formatted message.
func Validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsValidation checks whether err is a ValidationError and returns it.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
