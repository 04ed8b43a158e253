// Package apperror holds the error taxonomy shared by repositories, handlers
// and the access guard.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrAccessDenied    = errors.New("access denied")
)

// ValidationError rejects a submission before anything reaches storage.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s",
		e.Field, e.Value, e.Message)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
