package uuident

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common operations.
var (
	// ErrNotFound is returned when no record matches a UUID lookup.
	ErrNotFound = errors.New("uuident: record not found")
)

// NotFoundError represents a failed UUID lookup against a table.
type NotFoundError struct {
	table string
	value string // the UUID that was searched for
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("uuident: %s not found (uuid=%s)", e.table, e.value)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Table returns the table that was queried.
func (e *NotFoundError) Table() string {
	return e.table
}

// Value returns the UUID that was searched for.
func (e *NotFoundError) Value() string {
	return e.value
}

// NewNotFoundError returns a new NotFoundError for the given table and UUID.
func NewNotFoundError(table, value string) *NotFoundError {
	return &NotFoundError{table: table, value: value}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// ParseError represents a caller-supplied field value that could not be
// parsed as a UUID. The creation that triggered it is aborted.
type ParseError struct {
	Field string // attribute key holding the bad value
	Value any    // the value as supplied
	Err   error  // underlying parse error, if any
}

// Error returns the error string.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("uuident: invalid uuid for field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("uuident: invalid uuid for field %q: unexpected type %T", e.Field, e.Value)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var e *ParseError
	return errors.As(err, &e)
}

// DecodeError represents a stored value that could not be decoded back
// into a UUID on attribute read.
type DecodeError struct {
	Field string // attribute key being read
	Err   error  // underlying decode error
}

// Error returns the error string.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("uuident: decoding field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError returns true if the error is a DecodeError.
func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}
	var e *DecodeError
	return errors.As(err, &e)
}
