package errors

import "fmt"

/*
ValidationError reports a violated construction invariant: a bad role, an
unknown task state, an unrecognized part type, or a file with neither bytes
nor uri.  Validation errors are raised synchronously, never retried, and
surface to the caller immediately.
*/
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
