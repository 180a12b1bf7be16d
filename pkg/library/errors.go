package library

import (
	"errors"
	"fmt"
)

// ValidationError is the single error kind used for every business-rule
// violation: uniqueness, length bounds, date ordering, double return,
// unavailable book, wrong invocation context. The message is part of the
// contract and is shown to the end user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
