// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate outcomes by the embedding application.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates missing or malformed startup configuration.
	// This error is fatal: no cryptographic operation may be served while the
	// process is in this state.
	ErrConfiguration = errors.New("configuration error")

	// ErrIntegrityViolation indicates stored protected data is malformed,
	// fails authentication, or shows any other sign of tampering or corruption.
	// It must never be collapsed into ErrNotFound or an empty result.
	ErrIntegrityViolation = errors.New("data integrity violation")

	// ErrTierMisuse indicates a programming error: an operation was invoked on
	// a protection tier that does not support it (e.g., reversing a one-way tier).
	ErrTierMisuse = errors.New("protection tier misuse")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
