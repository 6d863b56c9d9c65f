package sitepass

import (
	"fmt"
)

// Input validation for derivation parameters. Invalid parameters are
// rejected before the engine runs, never clamped.

func validateIterations(n int) error {
	if n < 1 {
		return &ValidationError{
			Field:   "iterations",
			Value:   n,
			Message: fmt.Sprintf("iteration count must be at least 1, got %d", n),
			Err:     ErrInvalidIterations,
		}
	}
	return nil
}

func validateLength(n int) error {
	if n < 1 {
		return &ValidationError{
			Field:   "length",
			Value:   n,
			Message: fmt.Sprintf("derived length must be at least 1, got %d", n),
			Err:     ErrInvalidLength,
		}
	}
	return nil
}

func validateMode(m AlphabetMode) error {
	if m != ModeFull && m != ModeSimple && m != ModeRaw {
		return &ValidationError{
			Field:   "mode",
			Value:   m,
			Message: fmt.Sprintf("unsupported alphabet mode %d", m),
			Err:     ErrInvalidMode,
		}
	}
	return nil
}

func validateHash(h HashFunc) error {
	if h.newHash() == nil {
		return &ValidationError{
			Field:   "hash",
			Value:   h,
			Message: fmt.Sprintf("unsupported hash function %d", h),
			Err:     ErrInvalidHash,
		}
	}
	return nil
}

// Validate checks if the derivation parameters are valid
func (p Params) Validate() error {
	if err := validateIterations(p.Iterations); err != nil {
		return err
	}
	if err := validateLength(p.Length); err != nil {
		return err
	}
	if err := validateMode(p.Mode); err != nil {
		return err
	}
	return validateHash(p.Hash)
}
