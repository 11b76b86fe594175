package core

import "errors"

// ValidationError rejects malformed input before it reaches storage:
// non-positive amounts, blank names, unresolved references supplied on a
// write. The message is surfaced verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with the given message.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// ConflictError rejects a write that would violate a uniqueness rule,
// such as a duplicate category name or a second budget for the same
// category and month. The entity is left unchanged.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a ConflictError with the given message.
func NewConflict(message string) error {
	return &ConflictError{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
