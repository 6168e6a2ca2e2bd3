package services

import "errors"

// ValidationError is a user-facing rejection: the operation was aborted
// before any state changed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
