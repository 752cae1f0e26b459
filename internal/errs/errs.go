package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API error taxonomy. Services return these (possibly
// wrapped); the API layer maps them onto HTTP status codes.
var (
	// ErrNotFound signals that an id-scoped operation matched no row.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden signals a failed role, ownership, or identity check.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports malformed or missing client input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a field.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFound wraps ErrNotFound with a resource description.
func NotFound(resource string) error {
	return fmt.Errorf("%s: %w", resource, ErrNotFound)
}

// Forbidden wraps ErrForbidden with a reason.
func Forbidden(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrForbidden)
}
