package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Rendering errors
	ErrInvalidConfig      ErrorCode = "INVALID_CONFIG"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrUnknownDisplayKind ErrorCode = "UNKNOWN_DISPLAY_KIND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// TextkitError represents a structured error with code and details
type TextkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TextkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TextkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TextkitError) Is(target error) bool {
	var targetErr *TextkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TextkitError with the given code and message
func New(code ErrorCode, message string) *TextkitError {
	return &TextkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TextkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TextkitError {
	return &TextkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TextkitError
func Wrap(err error, code ErrorCode, message string) *TextkitError {
	if err == nil {
		return nil
	}
	return &TextkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TextkitError {
	if err == nil {
		return nil
	}
	return &TextkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TextkitError) WithDetail(key string, value interface{}) *TextkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tkErr *TextkitError
	if errors.As(err, &tkErr) {
		return tkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TextkitError
func GetErrorCode(err error) ErrorCode {
	var tkErr *TextkitError
	if errors.As(err, &tkErr) {
		return tkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TextkitError
func GetErrorDetails(err error) map[string]interface{} {
	var tkErr *TextkitError
	if errors.As(err, &tkErr) {
		return tkErr.Details
	}
	return nil
}
