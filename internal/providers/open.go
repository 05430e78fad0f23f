// Package providers contains the concrete search domains the launcher
// fans queries out to: installed applications, the calculator, files,
// shell commands and URLs. Each provider contains its own failures and
// reports nothing when it cannot answer.
package providers

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// opener returns the platform command that hands a path or URL to the
// desktop environment.
func opener() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// openTarget asks the desktop environment to open target (a file path
// or URL) and detaches from the spawned process.
func openTarget(ctx context.Context, target string) error {
	return spawnDetached(ctx, opener(), target)
}

// spawnDetached starts name with args and releases the process so it
// outlives the launcher session. Deliberately not bound to ctx: the
// child must survive the launcher exiting right after activation.
func spawnDetached(_ context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return cmd.Process.Release()
}
