package availability

import (
	"errors"
	"fmt"
)

// InvalidArgumentError marks a precondition failure: a malformed date or
// clock string, an unknown timezone, or a non-positive duration. It is
// distinct from an empty result, which is a legitimate "no availability".
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewInvalidArgument(field, message string) error {
	return &InvalidArgumentError{Field: field, Message: message}
}

// IsInvalidArgument reports whether err (or anything it wraps) is an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}
