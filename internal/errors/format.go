package errors

import (
	"fmt"
	"strings"
)

// FormatForCLI formats an error for terminal display: message, hint
// when available, and the code for reference.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	be, ok := err.(*BeaconError)
	if !ok {
		be = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", be.Message))
	if be.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", be.Suggestion))
	}
	sb.WriteString(fmt.Sprintf("  Code: %s\n", be.Code))
	return sb.String()
}
