package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by every input validation failure.
// Validation runs before any policy; a rejected input never starts a simulation.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes a single rejected input field.
// Index is the position of the offending process, or -1 for set-level errors.
type ValidationError struct {
	Field  string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s: %s", ErrInvalidInput, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: process %d: %s: %s", ErrInvalidInput, e.Index, e.Field, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ValidateQuantum rejects non-positive Round-Robin quanta.
func ValidateQuantum(quantum int64) error {
	if quantum <= 0 {
		return &ValidationError{Field: "quantum", Index: -1, Reason: fmt.Sprintf("must be > 0, got %d", quantum)}
	}
	return nil
}
