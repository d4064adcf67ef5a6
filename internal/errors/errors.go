package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies a failure for reporting at the CLI boundary
type ErrorType string

const (
	ErrTypeInputNotFound   ErrorType = "INPUT_NOT_FOUND"
	ErrTypeParse           ErrorType = "PARSE"
	ErrTypeValueConversion ErrorType = "VALUE_CONVERSION"
	ErrTypeOutputWrite     ErrorType = "OUTPUT_WRITE"
	ErrTypeConfig          ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// TypeOf reports the classification of err, or the empty string when err
// does not wrap an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// Helper functions for common error types

// NewInputNotFoundError creates an error for a missing or unreadable input
func NewInputNotFoundError(message string, cause error) *AppError {
	return NewAppError(ErrTypeInputNotFound, message, cause)
}

// NewParseError creates an error for structurally malformed input
func NewParseError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParse, message, cause)
}

// NewValueConversionError creates an error for a cell that should hold a
// number but does not
func NewValueConversionError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValueConversion, message, cause)
}

// NewOutputWriteError creates an error for an unwritable output destination
func NewOutputWriteError(message string, cause error) *AppError {
	return NewAppError(ErrTypeOutputWrite, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
