package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beacon-sh/beacon/internal/launcher"
)

type stubResult struct {
	title string
}

func (r stubResult) Title() string   { return r.title }
func (r stubResult) Tooltip() string { return "" }
func (r stubResult) Score() int      { return 1 }
func (r stubResult) Icon() string    { return "*" }
func (r stubResult) Equals(other launcher.Result) bool {
	o, ok := other.(stubResult)
	return ok && o.title == r.title
}
func (r stubResult) Activate(context.Context) error { return nil }

func testModel(t *testing.T, results ...launcher.Result) (Model, *launcher.AppState) {
	t.Helper()
	state := launcher.NewAppState(launcher.MaxVisibleResults)
	cache := launcher.NewResultCache(launcher.DefaultCacheSize)
	agg := launcher.NewAggregator(state, cache)

	if len(results) > 0 {
		require.True(t, state.SetQuery("q"))
		require.True(t, state.Install("q", results))
	}
	return NewModel(t.Context(), state, agg, NoColorStyles()), state
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_EscQuits(t *testing.T) {
	m, _ := testModel(t)

	_, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_EnterActivatesSelection(t *testing.T) {
	m, _ := testModel(t, stubResult{title: "Firefox"}, stubResult{title: "Files"})

	updated, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	activated, ok := updated.(Model).Activated()
	require.True(t, ok)
	assert.Equal(t, "Firefox", activated.Title())
}

func TestModel_EnterWithoutResultsDoesNothing(t *testing.T) {
	m, _ := testModel(t)

	updated, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
	_, ok := updated.(Model).Activated()
	assert.False(t, ok)
}

func TestModel_ArrowsMoveSelection(t *testing.T) {
	m, state := testModel(t,
		stubResult{title: "a"}, stubResult{title: "b"}, stubResult{title: "c"})

	next, _ := m.Update(key("down"))
	assert.Equal(t, 1, state.SelectedIndex())

	next, _ = next.Update(key("tab"))
	assert.Equal(t, 2, state.SelectedIndex())

	next, _ = next.Update(key("down"))
	assert.Equal(t, 0, state.SelectedIndex(), "selection wraps at the end")

	_, _ = next.Update(key("up"))
	assert.Equal(t, 2, state.SelectedIndex(), "selection wraps at the top")
}

func TestModel_TypingTriggersSearch(t *testing.T) {
	m, state := testModel(t)

	next, _ := m.Update(key("x"))
	assert.Equal(t, "x", next.(Model).input.Value())
	assert.Equal(t, "x", state.LastQuery())
}

func TestModel_ViewMarksSelectedRow(t *testing.T) {
	m, _ := testModel(t, stubResult{title: "Firefox"}, stubResult{title: "Files"})
	m.input.SetValue("fi")

	view := m.View()
	assert.Contains(t, view, "▸ * Firefox")
	assert.Contains(t, view, "  * Files")
	assert.Contains(t, view, "enter activate")
}

func TestModel_ViewWithoutResultsHidesHint(t *testing.T) {
	m, _ := testModel(t)
	assert.NotContains(t, m.View(), "enter activate")
}
