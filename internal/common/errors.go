package common

import (
	"errors"
	"fmt"
)

// Error kinds for workflow results. Callers discriminate with errors.Is
// instead of inspecting sentinel return values.
var (
	// ErrNotFound: a lookup by id or name matched no row.
	ErrNotFound = errors.New("not found")
	// ErrValidation: the request is malformed or references something that
	// does not exist (for example an unresolvable ingredient name).
	ErrValidation = errors.New("validation failed")
	// ErrConflict: a uniqueness constraint rejected the write.
	ErrConflict = errors.New("conflict")
	// ErrPersistence: a statement failed at the database.
	ErrPersistence = errors.New("persistence failure")
)

// NotFound wraps ErrNotFound with the missing resource's name.
func NotFound(resource string) error {
	return fmt.Errorf("%s: %w", resource, ErrNotFound)
}

// Validationf wraps ErrValidation with a formatted reason.
func Validationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// Conflictf wraps ErrConflict with a formatted reason.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// Persistence wraps a database error so handlers can report it as a backend
// failure without losing the cause.
func Persistence(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrPersistence)
}
