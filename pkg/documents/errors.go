package documents

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every error caused by a missing or
	// malformed required field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownKind is returned for document kinds the renderer does not know
	ErrUnknownKind = errors.New("unknown document kind")
)

// InvalidInputError names the required field a caller omitted
type InvalidInputError struct {
	Kind  Kind
	Field string
}

// Error implements error
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s requires field %q", e.Kind, e.Field)
}

// Is reports whether target is ErrInvalidInput
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
