// Package errors provides structured error handling for Beacon.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (files, lock file, history database)
//   - 3XX: Index errors (application catalog)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file, lock and database I/O errors.
	CategoryIO Category = "IO"
	// CategoryIndex indicates application index errors.
	CategoryIndex Category = "INDEX"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeLockFailed   = "ERR_201_LOCK_FAILED"
	ErrCodeHistoryOpen  = "ERR_202_HISTORY_OPEN"
	ErrCodeFileNotFound = "ERR_203_FILE_NOT_FOUND"

	// Index errors (300-399)
	ErrCodeIndexBuild = "ERR_301_INDEX_BUILD"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode derives the category from a code's number band.
func categoryFromCode(code string) Category {
	if len(code) < 5 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryIndex
	default:
		return CategoryInternal
	}
}

// severityFromCode derives severity: config and lock failures abort
// startup, everything else degrades.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeConfigInvalid, ErrCodeLockFailed:
		return SeverityFatal
	case ErrCodeIndexBuild, ErrCodeHistoryOpen:
		return SeverityWarning
	default:
		return SeverityError
	}
}
