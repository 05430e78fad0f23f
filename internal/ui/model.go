// Package ui is the bubbletea front end of the launcher: a prompt, up
// to a handful of result rows, and the selection/activation key
// protocol. It renders whatever the aggregator last published and never
// computes matches itself.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/beacon-sh/beacon/internal/launcher"
)

// resultsMsg carries a freshly published ranked list into the program.
// Each message replaces the displayed list wholesale.
type resultsMsg []launcher.Result

// Model is the launcher's bubbletea model.
type Model struct {
	ctx    context.Context
	input  textinput.Model
	state  *launcher.AppState
	agg    *launcher.Aggregator
	styles Styles
	width  int

	// activated is the result chosen with Enter; the session ends right
	// after it is set and Run performs the activation once the terminal
	// is restored.
	activated launcher.Result
}

// NewModel creates the launcher model.
func NewModel(ctx context.Context, state *launcher.AppState, agg *launcher.Aggregator, styles Styles) Model {
	input := textinput.New()
	input.Placeholder = "Search apps, files, =2+2, $cmd, URLs…"
	input.Prompt = "> "
	input.Focus()

	return Model{
		ctx:    ctx,
		input:  input,
		state:  state,
		agg:    agg,
		styles: styles,
	}
}

// Activated returns the result chosen with Enter, if any.
func (m Model) Activated() (launcher.Result, bool) {
	return m.activated, m.activated != nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case resultsMsg:
		// State was already installed by the aggregator; the message
		// only triggers a re-render.
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit

		case "enter":
			if selected, ok := m.state.Selected(); ok {
				m.activated = selected
				return m, tea.Quit
			}
			return m, nil

		case "up", "ctrl+p":
			m.state.MoveUp()
			return m, nil

		case "down", "ctrl+n", "tab":
			m.state.MoveDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.agg.Search(m.ctx, m.input.Value())
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render(m.input.View()))
	sb.WriteString("\n")

	results := m.state.Results()
	visible := m.state.VisibleCount()
	selected := m.state.SelectedIndex()

	for i := 0; i < visible && i < len(results); i++ {
		r := results[i]
		row := fmt.Sprintf("%s %s", m.styles.Icon.Render(r.Icon()), r.Title())
		if tooltip := r.Tooltip(); tooltip != "" {
			row += "  " + m.styles.Tooltip.Render(tooltip)
		}
		if i == selected {
			sb.WriteString(m.styles.Selected.Render("▸ " + row))
		} else {
			sb.WriteString(m.styles.Row.Render("  " + row))
		}
		sb.WriteString("\n")
	}

	if visible > 0 {
		sb.WriteString(m.styles.Hint.Render("↑/↓ select · enter activate · esc cancel"))
	}
	return m.styles.Frame.Render(sb.String())
}
