package providers

import (
	"context"
	"os"
	"strings"

	"github.com/beacon-sh/beacon/internal/launcher"
)

// terminalScore sits above apps and files but below the calculator: a
// "$" prefix is explicit intent.
const terminalScore = 1 << 20

// TerminalProvider turns queries of the form "$ <command>" into a
// single result that runs the command in the user's shell.
type TerminalProvider struct {
	shell string
}

// NewTerminalProvider creates the terminal provider. When shell is
// empty, $SHELL is used with /bin/sh as fallback.
func NewTerminalProvider(shell string) *TerminalProvider {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &TerminalProvider{shell: shell}
}

func (p *TerminalProvider) Name() string { return "terminal" }

func (p *TerminalProvider) Query(_ context.Context, text string, onResults func([]launcher.Result)) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "$") {
		return
	}
	command := strings.TrimSpace(strings.TrimPrefix(trimmed, "$"))
	if command == "" {
		return
	}

	onResults([]launcher.Result{&TerminalResult{shell: p.shell, command: command}})
}

// TerminalResult runs a shell command, detached.
type TerminalResult struct {
	shell   string
	command string
}

func (r *TerminalResult) Title() string   { return r.command }
func (r *TerminalResult) Tooltip() string { return "Run in " + r.shell }
func (r *TerminalResult) Score() int      { return terminalScore }
func (r *TerminalResult) Icon() string    { return ">_" }

func (r *TerminalResult) Equals(other launcher.Result) bool {
	o, ok := other.(*TerminalResult)
	return ok && o.command == r.command
}

func (r *TerminalResult) Activate(ctx context.Context) error {
	return spawnDetached(ctx, r.shell, "-c", r.command)
}
