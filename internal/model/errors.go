package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when a looked-up identifier is absent.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks text-generation provider failures that have no fallback path.
	ErrUpstream = errors.New("upstream service error")
)

// ValidationError represents an out-of-range or missing required field at record construction.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error (including wrapped errors)
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
