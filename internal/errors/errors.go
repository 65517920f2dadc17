package errors

import (
	"fmt"
)

// Error codes for user-visible failures. Analysis functions never return
// these; they surface from the ingestion and catalog boundaries only.
const (
	CodeEmptyInput      = "EMPTY_INPUT"
	CodeNoValidValues   = "NO_VALID_VALUES"
	CodeUnsupportedFile = "UNSUPPORTED_FILE"
	CodeParseFailed     = "PARSE_FAILED"
	CodeNotFound        = "NOT_FOUND"
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise CodeInternal
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// ConfigInvalid creates a configuration error
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// NotFound creates a not-found error
func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}
