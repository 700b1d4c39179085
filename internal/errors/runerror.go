package errors

import (
	"errors"
	"fmt"
	"strings"
)

// RunError is the failure type returned by every pipeline stage. It carries a
// standardized code, an optional list of detail messages (for example every
// missing column of a schema violation), and the underlying cause when one
// exists. Stages return a RunError instead of terminating the process; only
// the command entrypoint is allowed to exit.
type RunError struct {
	Code    ErrorCode
	Message string
	Details []string
	Cause   error
}

// RunErrorOption is a functional option for configuring run errors
type RunErrorOption func(*RunError)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) RunErrorOption {
	return func(e *RunError) {
		e.Details = append(e.Details, details...)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) RunErrorOption {
	return func(e *RunError) {
		e.Message = message
	}
}

// WithCause attaches the underlying error
func WithCause(cause error) RunErrorOption {
	return func(e *RunError) {
		e.Cause = cause
	}
}

// NewRunError creates a run error with the given code and the code's default
// message, then applies any options.
func NewRunError(code ErrorCode, opts ...RunErrorOption) *RunError {
	e := &RunError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *RunError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Details, "; "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *RunError) Unwrap() error { return e.Cause }

// CodeOf extracts the error code from err. Errors that are not RunErrors are
// classified as unexpected failures.
func CodeOf(err error) ErrorCode {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Code
	}
	return SystemUnexpectedError
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Code == code
	}
	return false
}
