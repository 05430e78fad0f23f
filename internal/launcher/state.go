package launcher

import "sync"

// MaxVisibleResults is the default cap on rows shown in the UI.
const MaxVisibleResults = 6

// NoSelection is the selectedIndex value meaning nothing is highlighted.
const NoSelection = -1

// AppState is the shared mutable state between the aggregator and the
// UI driver: the authoritative current query, the last published ranked
// list, and the selection cursor over its visible prefix.
//
// Invariant: when a selection exists,
// 0 <= selectedIndex < visibleCount <= len(results).
type AppState struct {
	mu            sync.Mutex
	lastQuery     string
	results       []Result
	selectedIndex int
	visibleCount  int
	maxVisible    int
}

// NewAppState creates empty state capping visible rows at maxVisible.
// If maxVisible <= 0, MaxVisibleResults is used.
func NewAppState(maxVisible int) *AppState {
	if maxVisible <= 0 {
		maxVisible = MaxVisibleResults
	}
	return &AppState{
		selectedIndex: NoSelection,
		maxVisible:    maxVisible,
	}
}

// SetQuery records text as the current query. It returns false without
// changing anything when text is unchanged, which is the no-op guard
// that skips re-searching on redundant input events.
func (s *AppState) SetQuery(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastQuery == text {
		return false
	}
	s.lastQuery = text
	return true
}

// LastQuery returns the current query text.
func (s *AppState) LastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// Install atomically publishes a ranked result list for query. It is
// the final staleness gate: if query is no longer the current query the
// list is discarded and Install returns false. On success the selection
// resets to the top row (or none when the list is empty) and the
// visible count is recomputed.
func (s *AppState) Install(query string, results []Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastQuery != query {
		return false
	}

	s.results = results
	s.visibleCount = min(len(results), s.maxVisible)
	if s.visibleCount == 0 {
		s.selectedIndex = NoSelection
	} else {
		s.selectedIndex = 0
	}
	return true
}

// Results returns a copy of the last published list.
func (s *AppState) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// VisibleCount returns how many results are currently shown.
func (s *AppState) VisibleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleCount
}

// SelectedIndex returns the highlighted row, or NoSelection.
func (s *AppState) SelectedIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedIndex
}

// Selected returns the highlighted result, if any.
func (s *AppState) Selected() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedIndex == NoSelection || s.selectedIndex >= len(s.results) {
		return nil, false
	}
	return s.results[s.selectedIndex], true
}

// MoveUp moves the selection one row up, wrapping from the top row to
// the last visible one. No-op when nothing is visible.
func (s *AppState) MoveUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visibleCount == 0 {
		return
	}
	idx := s.selectedIndex
	if idx == NoSelection {
		idx = 0
	}
	if idx == 0 {
		idx = s.visibleCount - 1
	} else {
		idx--
	}
	s.selectedIndex = idx
}

// MoveDown moves the selection one row down, wrapping from the last
// visible row back to the top. No-op when nothing is visible.
func (s *AppState) MoveDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visibleCount == 0 {
		return
	}
	idx := s.selectedIndex
	if idx == NoSelection {
		idx = 0
	}
	if idx == s.visibleCount-1 {
		idx = 0
	} else {
		idx++
	}
	s.selectedIndex = idx
}
