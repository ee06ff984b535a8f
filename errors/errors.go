package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// IsFault reports whether the error is a programmer error.
func (e *AppError) IsFault() bool { return IsFaultCode(e.Code) }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Registry faults ---

// TypeMismatch creates an AppError for a value read through a key of a different type.
func TypeMismatch(key, expected, actual string) *AppError {
	return &AppError{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("value for %s is %s, expected %s", key, actual, expected),
		Details: map[string]any{
			"key":      key,
			"expected": expected,
			"actual":   actual,
		},
	}
}

// InvalidKey creates an AppError for a key or override defined without a provider.
func InvalidKey(key, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidKey,
		Message: fmt.Sprintf("invalid key %s: %s", key, reason),
		Details: map[string]any{"key": key},
	}
}

// UnboundInjection creates an AppError for a read through an Injection that was never bound.
func UnboundInjection(valueType string) *AppError {
	return &AppError{
		Code:    ErrCodeUnboundInjection,
		Message: fmt.Sprintf("injection of %s is not bound to a key", valueType),
		Details: map[string]any{"type": valueType},
	}
}

// --- Validation ---

// InvalidInput creates an AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates an AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// --- Configuration ---

// ConfigLoad creates an AppError for configuration that could not be read.
func ConfigLoad(source string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConfigLoad, Message: fmt.Sprintf("failed to load configuration from %s", source),
		Details: map[string]any{"source": source}, Cause: cause,
	}
}

// ConfigDecode creates an AppError for configuration that could not be decoded.
func ConfigDecode(target string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConfigDecode, Message: fmt.Sprintf("failed to decode configuration for %s", target),
		Details: map[string]any{"target": target}, Cause: cause,
	}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// FromRecovered converts a value obtained from recover() into an AppError.
// It returns false when the value is not an AppError.
func FromRecovered(r any) (*AppError, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	return AsAppError(err)
}
