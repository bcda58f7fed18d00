package exception

import (
	"errors"
	"fmt"
)

// ApplicationError handles application level errors. Code is the JSON-RPC
// error code reported to the caller.
type ApplicationError struct {
	Message string
	Code    int
	Cause   error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches a sentinel (an ApplicationError without cause) by message and
// code, so errors built with WithCause still satisfy errors.Is.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if targetErr.Cause == nil {
		return e.Message == targetErr.Message && e.Code == targetErr.Code
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// WithCause returns a copy of the error carrying cause as detail.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause

	return e
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.Code
}
