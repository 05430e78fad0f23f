package launcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResults(n int) []Result {
	out := make([]Result, n)
	for i := range out {
		out[i] = newFakeResult(fmt.Sprintf("r%d", i), 100-i)
	}
	return out
}

func installedState(t *testing.T, n int) *AppState {
	t.Helper()
	state := NewAppState(0)
	require.True(t, state.SetQuery("q"))
	require.True(t, state.Install("q", makeResults(n)))
	return state
}

func TestAppState_SetQueryNoOpGuard(t *testing.T) {
	state := NewAppState(0)
	assert.True(t, state.SetQuery("fire"))
	assert.False(t, state.SetQuery("fire"), "unchanged text must not re-trigger")
	assert.True(t, state.SetQuery("firef"))
	assert.Equal(t, "firef", state.LastQuery())
}

func TestAppState_InstallRejectsStaleQuery(t *testing.T) {
	state := NewAppState(0)
	state.SetQuery("new")

	assert.False(t, state.Install("old", makeResults(3)))
	assert.Empty(t, state.Results())
	assert.Equal(t, NoSelection, state.SelectedIndex())
}

func TestAppState_InstallResetsSelection(t *testing.T) {
	state := installedState(t, 3)
	state.MoveDown()
	require.Equal(t, 1, state.SelectedIndex())

	require.True(t, state.Install("q", makeResults(2)))
	assert.Equal(t, 0, state.SelectedIndex())
}

func TestAppState_EmptyInstallClearsSelection(t *testing.T) {
	state := installedState(t, 3)
	require.True(t, state.Install("q", nil))
	assert.Equal(t, NoSelection, state.SelectedIndex())
	assert.Equal(t, 0, state.VisibleCount())
}

func TestAppState_VisibleCap(t *testing.T) {
	state := installedState(t, 10)
	assert.Equal(t, MaxVisibleResults, state.VisibleCount())
	assert.Equal(t, 0, state.SelectedIndex())
	assert.Len(t, state.Results(), 10)
}

func TestAppState_MoveWrapsCyclically(t *testing.T) {
	state := installedState(t, 3)

	// Down: 0 -> 1 -> 2 -> 0
	state.MoveDown()
	assert.Equal(t, 1, state.SelectedIndex())
	state.MoveDown()
	assert.Equal(t, 2, state.SelectedIndex())
	state.MoveDown()
	assert.Equal(t, 0, state.SelectedIndex())

	// Up from 0 wraps to the last visible row.
	state.MoveUp()
	assert.Equal(t, 2, state.SelectedIndex())
	state.MoveUp()
	assert.Equal(t, 1, state.SelectedIndex())
}

func TestAppState_MoveWrapsOverVisibleNotTotal(t *testing.T) {
	state := installedState(t, 10)
	state.MoveUp()
	assert.Equal(t, MaxVisibleResults-1, state.SelectedIndex(),
		"wrap must target the last visible row, not the last result")
}

func TestAppState_MoveNoOpWhenEmpty(t *testing.T) {
	state := NewAppState(0)
	state.MoveDown()
	assert.Equal(t, NoSelection, state.SelectedIndex())
	state.MoveUp()
	assert.Equal(t, NoSelection, state.SelectedIndex())
}

func TestAppState_SelectedBounds(t *testing.T) {
	state := installedState(t, 4)
	for range 20 {
		state.MoveDown()
		idx := state.SelectedIndex()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, state.VisibleCount())
	}
}

func TestAppState_Selected(t *testing.T) {
	state := installedState(t, 2)
	state.MoveDown()

	selected, ok := state.Selected()
	require.True(t, ok)
	assert.Equal(t, "r1", selected.Title())

	empty := NewAppState(0)
	_, ok = empty.Selected()
	assert.False(t, ok)
}

func TestAppState_CustomMaxVisible(t *testing.T) {
	state := NewAppState(3)
	require.True(t, state.SetQuery("q"))
	require.True(t, state.Install("q", makeResults(10)))
	assert.Equal(t, 3, state.VisibleCount())
}
