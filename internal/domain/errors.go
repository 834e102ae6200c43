package domain

import (
	"errors"
	"fmt"
)

// Code is a stable, user-facing error identifier. Codes cross the protocol
// boundary; raw error text never does.
type Code string

const (
	CodeMissingCredential Code = "MISSING_CREDENTIAL"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeUnauthorized      Code = "UPSTREAM_UNAUTHORIZED"
	CodeRateLimited       Code = "UPSTREAM_RATE_LIMITED"
	CodeUnavailable       Code = "UPSTREAM_UNAVAILABLE"
	CodeMalformed         Code = "MALFORMED_UPSTREAM_RESPONSE"
	CodeCancelled         Code = "CANCELLED"
	CodeInternal          Code = "INTERNAL"
)

// Error pairs a stable code with a human-readable message safe to show to
// the end user. The wrapped cause stays server-side for logging.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Errorf builds a coded error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError attaches a cause to a coded error.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: cause}
}

// CodeOf extracts the stable code from an error chain, defaulting to
// CodeInternal for anything uncoded.
func CodeOf(err error) Code {
	var domErr *Error
	if errors.As(err, &domErr) {
		return domErr.Code
	}
	return CodeInternal
}

// MessageOf extracts the user-facing message from an error chain. Uncoded
// errors get a generic message so internals never leak.
func MessageOf(err error) string {
	var domErr *Error
	if errors.As(err, &domErr) {
		return domErr.Message
	}
	return "internal server error"
}
