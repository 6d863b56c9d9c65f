package sitepass

import (
	"errors"
	"fmt"
)

// ValidationError represents a derivation parameter validation error
type ValidationError struct {
	Field   string // The parameter that failed validation
	Value   any    // The invalid value
	Message string // Human-readable error message
	Err     error  // Underlying sentinel error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Common sentinel errors
var (
	ErrInvalidIterations = errors.New("iteration count must be at least 1")
	ErrInvalidLength     = errors.New("derived length must be at least 1")
	ErrInvalidMode       = errors.New("unsupported alphabet mode")
	ErrInvalidHash       = errors.New("unsupported hash function")
	ErrNilPRF            = errors.New("prf cannot be nil")
)

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
