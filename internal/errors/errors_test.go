package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategoryAndSeverity(t *testing.T) {
	tests := []struct {
		code     string
		category Category
		severity Severity
	}{
		{ErrCodeConfigNotFound, CategoryConfig, SeverityError},
		{ErrCodeConfigInvalid, CategoryConfig, SeverityFatal},
		{ErrCodeLockFailed, CategoryIO, SeverityFatal},
		{ErrCodeHistoryOpen, CategoryIO, SeverityWarning},
		{ErrCodeFileNotFound, CategoryIO, SeverityError},
		{ErrCodeIndexBuild, CategoryIndex, SeverityWarning},
		{ErrCodeInternal, CategoryInternal, SeverityError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.category, err.Category)
			assert.Equal(t, tt.severity, err.Severity)
		})
	}
}

func TestBeaconError_Error(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad yaml", nil)
	assert.Equal(t, "[ERR_102_CONFIG_INVALID] bad yaml", err.Error())
}

func TestBeaconError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := New(ErrCodeLockFailed, "lock failed", cause)
	assert.ErrorIs(t, err, cause)
}

func TestBeaconError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("startup: %w", ConfigError("bad", nil))
	assert.ErrorIs(t, err, &BeaconError{Code: ErrCodeConfigInvalid})
	assert.NotErrorIs(t, err, &BeaconError{Code: ErrCodeLockFailed})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))

	cause := stderrors.New("oops")
	err := Wrap(ErrCodeInternal, cause)
	require.NotNil(t, err)
	assert.Equal(t, "oops", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestWithSuggestion(t *testing.T) {
	err := ConfigError("bad", nil).WithSuggestion("delete the file")
	assert.Equal(t, "delete the file", err.Suggestion)
}

func TestFormatForCLI(t *testing.T) {
	out := FormatForCLI(ConfigError("invalid config", nil).
		WithSuggestion("fix the YAML"))
	assert.Contains(t, out, "Error: invalid config")
	assert.Contains(t, out, "Hint: fix the YAML")
	assert.Contains(t, out, "Code: ERR_102_CONFIG_INVALID")
}

func TestFormatForCLI_PlainError(t *testing.T) {
	out := FormatForCLI(stderrors.New("plain failure"))
	assert.Contains(t, out, "Error: plain failure")
	assert.Contains(t, out, "Code: ERR_501_INTERNAL")
	assert.NotContains(t, out, "Hint:")
}

func TestFormatForCLI_Nil(t *testing.T) {
	assert.Empty(t, FormatForCLI(nil))
}
