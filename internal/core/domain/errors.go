package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports a missing or invalid request field.
// It is the only failure a search surfaces to the caller besides
// truly unexpected internal errors.
type ValidationError struct {
	// Field is the name of the offending request field.
	Field string

	// Message overrides the default "<field> is required" text.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// Is allows errors.Is(err, ErrInvalidInput) to match validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AsValidation unwraps a ValidationError if err contains one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
