package sitepass

import (
	"errors"
	"fmt"
	"testing"
)

// TestValidationError_Error tests validation error message formatting
func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "with field",
			err:  &ValidationError{Field: "iterations", Value: 0, Message: "must be at least 1"},
			want: "validation error: iterations: must be at least 1",
		},
		{
			name: "without field",
			err:  &ValidationError{Message: "bad parameters"},
			want: "validation error: bad parameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestValidationError_Unwrap tests sentinel unwrapping through wrapping
// layers
func TestValidationError_Unwrap(t *testing.T) {
	ve := &ValidationError{Field: "length", Message: "too small", Err: ErrInvalidLength}
	wrapped := fmt.Errorf("invalid params: %w", ve)

	if !errors.Is(wrapped, ErrInvalidLength) {
		t.Error("wrapped error does not match ErrInvalidLength")
	}
	if !IsValidationError(wrapped) {
		t.Error("IsValidationError failed through wrapping")
	}

	var got *ValidationError
	if !errors.As(wrapped, &got) || got.Field != "length" {
		t.Error("errors.As did not recover the ValidationError")
	}
}

// TestIsValidationError_Negative checks non-validation errors
func TestIsValidationError_Negative(t *testing.T) {
	if IsValidationError(errors.New("some other error")) {
		t.Error("IsValidationError matched an unrelated error")
	}
	if IsValidationError(nil) {
		t.Error("IsValidationError matched nil")
	}
}

// TestNewValidationError tests the constructor helper
func TestNewValidationError(t *testing.T) {
	err := NewValidationError("mode", 99, "unsupported")
	if !IsValidationError(err) {
		t.Fatal("NewValidationError did not produce a ValidationError")
	}
	if want := "validation error: mode: unsupported"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
