package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when a calendar source cannot be read at all.
var ErrProviderUnavailable = errors.New("calendar provider unavailable")

// ValidationError reports a malformed calendar entry found at load time.
type ValidationError struct {
	Provider string
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "invalid value"
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Provider != "" {
		return fmt.Sprintf("%s calendar: %s", e.Provider, msg)
	}
	return msg
}

// Invalid builds a ValidationError for field.
func Invalid(provider, field, reason string) *ValidationError {
	return &ValidationError{Provider: provider, Field: field, Reason: reason}
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
