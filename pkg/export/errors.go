package export

import (
	"errors"
	"fmt"
)

// ErrExportUnavailable is matched by every export failure. The rendered text
// is unaffected and may be exported again.
var ErrExportUnavailable = errors.New("export unavailable")

// UnavailableError describes why a document could not be exported
type UnavailableError struct {
	Destination string
	Reason      string
	Err         error
}

// Error implements error
func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("export unavailable: %s", e.Reason)
	if e.Destination != "" {
		msg = fmt.Sprintf("%s (destination %q)", msg, e.Destination)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is reports whether target is ErrExportUnavailable
func (e *UnavailableError) Is(target error) bool {
	return target == ErrExportUnavailable
}

// Unwrap returns the underlying cause
func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func unavailable(destination, reason string, err error) error {
	return &UnavailableError{Destination: destination, Reason: reason, Err: err}
}
