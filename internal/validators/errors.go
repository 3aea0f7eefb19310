package validators

import (
	"errors"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError reports the first rule a request failed. Its message is
// safe to show to the client.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a *ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap makes every ValidationError match [ErrValidation] with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
