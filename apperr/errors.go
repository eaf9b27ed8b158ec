package apperr

import (
	"errors"
	"fmt"
)

// Kind sentinels let callers classify failures with errors.Is regardless
// of the backend that produced them.
var (
	ErrValidation  = errors.New("validation failed")
	ErrDuplicate   = errors.New("already exists")
	ErrAuth        = errors.New("invalid credentials")
	ErrPersistence = errors.New("persistence failure")
	ErrNotFound    = errors.New("not found")
)

// Validation wraps a user-facing message as a validation error.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Duplicate wraps a user-facing message as a duplicate error.
func Duplicate(msg string) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, msg)
}

// Auth wraps a user-facing message as an authentication error.
func Auth(msg string) error {
	return fmt.Errorf("%w: %s", ErrAuth, msg)
}

// Persistence wraps an underlying store error so its cause stays inspectable.
func Persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
