package domain

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a plan item index does not exist
var ErrIndexOutOfRange = errors.New("plan item index out of range")

// ValidationError is returned for user-visible, recoverable input problems
// such as saving an empty plan or logging a set with nothing recorded.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err (or anything it wraps) is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
