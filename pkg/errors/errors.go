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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors
	ErrScopeViolation ErrorCode = "SCOPE_VIOLATION"

	// Backup primitive errors
	ErrBackupPrecondition ErrorCode = "BACKUP_PRECONDITION"
	ErrBackupIntegrity    ErrorCode = "BACKUP_INTEGRITY"
	ErrRenameFailed       ErrorCode = "RENAME_FAILED"

	// Link engine errors
	ErrSourceMissing ErrorCode = "SOURCE_MISSING"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// SoftlinkError represents a structured error with code and details
type SoftlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SoftlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SoftlinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SoftlinkError) Is(target error) bool {
	var targetErr *SoftlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SoftlinkError with the given code and message
func New(code ErrorCode, message string) *SoftlinkError {
	return &SoftlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SoftlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SoftlinkError {
	return &SoftlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SoftlinkError
func Wrap(err error, code ErrorCode, message string) *SoftlinkError {
	if err == nil {
		return nil
	}
	return &SoftlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SoftlinkError {
	if err == nil {
		return nil
	}
	return &SoftlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SoftlinkError) WithDetail(key string, value interface{}) *SoftlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var slErr *SoftlinkError
	if errors.As(err, &slErr) {
		return slErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not a SoftlinkError
func GetErrorCode(err error) ErrorCode {
	var slErr *SoftlinkError
	if errors.As(err, &slErr) {
		return slErr.Code
	}
	return ErrUnknown
}
