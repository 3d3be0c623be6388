package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError names the offending input field. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	if err.Field == "" {
		return err.Reason
	}
	return fmt.Sprintf("%s: %s", err.Field, err.Reason)
}

func (err *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidField(field string, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func storageFailure(operation string, err error) error {
	return fmt.Errorf("%s: %w: %v", operation, ErrStorageUnavailable, err)
}
