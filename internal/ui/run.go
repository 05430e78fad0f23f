package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/beacon-sh/beacon/internal/launcher"
)

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run drives one launcher session: it wires the aggregator's publish
// callback into the program, runs the TUI until the user activates or
// cancels, and performs the activation after the terminal is restored
// so the spawned target does not fight the alternate screen.
//
// Returns the activated result, or nil when the session was cancelled.
func Run(ctx context.Context, state *launcher.AppState, agg *launcher.Aggregator) (launcher.Result, error) {
	if !IsTTY(os.Stdout) {
		return nil, fmt.Errorf("stdout is not a terminal; use 'beacon search' for scripted queries")
	}

	styles := DefaultStyles()
	if os.Getenv("NO_COLOR") != "" {
		styles = NoColorStyles()
	}

	model := NewModel(ctx, state, agg, styles)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	agg.OnNewResults = func(results []launcher.Result) {
		program.Send(resultsMsg(results))
	}

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("launcher UI failed: %w", err)
	}

	finalModel, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	activated, ok := finalModel.Activated()
	if !ok {
		return nil, nil
	}
	return activated, nil
}
