package errors

import "fmt"

// BeaconError is the structured error type for Beacon. It carries a
// stable code, a category for logging, and an optional suggestion shown
// to the user on fatal CLI errors.
type BeaconError struct {
	// Code is the unique error code (e.g. "ERR_102_CONFIG_INVALID").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Index, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *BeaconError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *BeaconError) Unwrap() error {
	return e.Cause
}

// Is matches by code, enabling errors.Is against sentinel values.
func (e *BeaconError) Is(target error) bool {
	if t, ok := target.(*BeaconError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *BeaconError) WithSuggestion(suggestion string) *BeaconError {
	e.Suggestion = suggestion
	return e
}

// New creates a BeaconError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *BeaconError {
	return &BeaconError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a BeaconError from an existing error, reusing its
// message. Returns nil when err is nil.
func Wrap(code string, err error) *BeaconError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *BeaconError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// LockError creates a singleton-lock error. These are fatal at
// startup.
func LockError(message string, cause error) *BeaconError {
	return New(ErrCodeLockFailed, message, cause)
}

// IndexError creates an application-index error.
func IndexError(message string, cause error) *BeaconError {
	return New(ErrCodeIndexBuild, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *BeaconError {
	return New(ErrCodeInternal, message, cause)
}
