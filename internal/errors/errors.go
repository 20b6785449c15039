package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error for callers that need to branch on it
type Code string

const (
	// CodeUnknown is used when nothing more specific applies
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument means the caller passed a bad value
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound means a unit, equipment item or roster does not exist
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists means a record with the same ID is already stored
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal means a storage or encoding failure
	CodeInternal Code = "internal"

	// CodeValidation means input data (usually the catalog) is malformed
	CodeValidation Code = "validation"

	// CodeCapacityExceeded means an add would put more instances of a unit
	// on the roster than its max count allows
	CodeCapacityExceeded Code = "capacity_exceeded"

	// CodeOutOfRange means a slot index does not address an existing slot
	CodeOutOfRange Code = "out_of_range"
)

// Error is an application error carrying a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the message, followed by the cause when one is wrapped
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key/value pair and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap adds context to err. The code of an existing *Error is kept.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf adds formatted context to err
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and forces the code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// CapacityExceeded reports that requested instances of unitKey do not fit.
// The overage is recorded in Meta under "over_by".
func CapacityExceeded(unitKey string, requested, remaining int) *Error {
	return Newf(CodeCapacityExceeded, "cannot add %d of %s: only %d remaining", requested, unitKey, remaining).
		WithMeta("unit_key", unitKey).
		WithMeta("requested", requested).
		WithMeta("remaining", remaining).
		WithMeta("over_by", requested-remaining)
}

// OutOfRange reports a slot index outside [0, size)
func OutOfRange(index, size int) *Error {
	return Newf(CodeOutOfRange, "slot index %d out of range (roster has %d slots)", index, size).
		WithMeta("index", index).
		WithMeta("size", size)
}

// Is reports whether err carries the given code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks for CodeNotFound
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks for CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks for CodeAlreadyExists
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsValidation checks for CodeValidation
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsCapacityExceeded checks for CodeCapacityExceeded
func IsCapacityExceeded(err error) bool {
	return Is(err, CodeCapacityExceeded)
}

// IsOutOfRange checks for CodeOutOfRange
func IsOutOfRange(err error) bool {
	return Is(err, CodeOutOfRange)
}

// GetCode returns the code of err, or CodeUnknown
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of err, if any
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
