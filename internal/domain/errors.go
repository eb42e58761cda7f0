package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the store. Handlers map these to HTTP status codes
// (ValidationError -> 400, NotFoundError -> 404, PersistenceError -> 500),
// so repositories and services must return them rather than bare errors.

// ValidationError marks malformed or semantically invalid input: inverted
// wake/sleep window, target below 1, a date that already has a Day.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a reference to a nonexistent Day or Reminder. It is a
// normal, expected outcome for date lookups (the client prompts setup),
// distinct from a storage failure.
type NotFoundError struct {
	Kind string // "day" or "reminder"
	Ref  string // id or date used for the lookup
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found: %s", e.Kind, e.Ref) }

func NotFound(kind, ref string) error {
	return &NotFoundError{Kind: kind, Ref: ref}
}

// PersistenceError wraps an underlying storage failure. The store does not
// retry; retry policy belongs to the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
