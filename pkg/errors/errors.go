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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors, fatal at rule-set construction
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Per-rule errors, collected and reported
	ErrPathAccess   ErrorCode = "PATH_ACCESS"
	ErrNotDirectory ErrorCode = "NOT_DIRECTORY"

	// Per-entry / per-action errors, collected and reported
	ErrScriptFailed     ErrorCode = "SCRIPT_FAILED"
	ErrScriptOutput     ErrorCode = "SCRIPT_OUTPUT"
	ErrMoveFailed       ErrorCode = "MOVE_FAILED"
	ErrOverwriteBlocked ErrorCode = "OVERWRITE_BLOCKED"
	ErrDirCreate        ErrorCode = "DIR_CREATE"
)

// DirkeepError represents a structured error with code and details
type DirkeepError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DirkeepError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DirkeepError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DirkeepError) Is(target error) bool {
	var targetErr *DirkeepError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DirkeepError with the given code and message
func New(code ErrorCode, message string) *DirkeepError {
	return &DirkeepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DirkeepError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DirkeepError {
	return &DirkeepError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DirkeepError
func Wrap(err error, code ErrorCode, message string) *DirkeepError {
	if err == nil {
		return nil
	}
	return &DirkeepError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DirkeepError {
	if err == nil {
		return nil
	}
	return &DirkeepError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DirkeepError) WithDetail(key string, value interface{}) *DirkeepError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dkErr *DirkeepError
	if errors.As(err, &dkErr) {
		return dkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DirkeepError
func GetErrorCode(err error) ErrorCode {
	var dkErr *DirkeepError
	if errors.As(err, &dkErr) {
		return dkErr.Code
	}
	return ErrUnknown
}
