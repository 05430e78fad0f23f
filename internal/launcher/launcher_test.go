package launcher

import (
	"context"
	"sync"
)

// fakeResult is a minimal Result for core tests. Identity is the id
// field, so two fakeResults with the same id deduplicate regardless of
// score.
type fakeResult struct {
	id    string
	title string
	score int

	mu        sync.Mutex
	activated bool
}

func newFakeResult(id string, score int) *fakeResult {
	return &fakeResult{id: id, title: id, score: score}
}

func (r *fakeResult) Title() string   { return r.title }
func (r *fakeResult) Tooltip() string { return "" }
func (r *fakeResult) Score() int      { return r.score }
func (r *fakeResult) Icon() string    { return "" }

func (r *fakeResult) Equals(other Result) bool {
	o, ok := other.(*fakeResult)
	return ok && o.id == r.id
}

func (r *fakeResult) Activate(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activated = true
	return nil
}

// manualProvider records Query invocations and lets tests fire the
// callbacks whenever they choose, simulating providers of arbitrary
// slowness.
type manualProvider struct {
	name string

	mu    sync.Mutex
	calls []manualCall
}

type manualCall struct {
	text string
	on   func([]Result)
}

func (p *manualProvider) Name() string { return p.name }

func (p *manualProvider) Query(_ context.Context, text string, onResults func([]Result)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, manualCall{text: text, on: onResults})
}

// callCount returns how many times Query was invoked.
func (p *manualProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

// fire invokes the callback of call i with results.
func (p *manualProvider) fire(i int, results []Result) {
	p.mu.Lock()
	call := p.calls[i]
	p.mu.Unlock()
	call.on(results)
}

// publishRecorder captures every OnNewResults firing.
type publishRecorder struct {
	mu        sync.Mutex
	published [][]Result
}

func (r *publishRecorder) record(results []Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, results)
}

func (r *publishRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.published)
}

func (r *publishRecorder) last() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.published) == 0 {
		return nil
	}
	return r.published[len(r.published)-1]
}

func (r *publishRecorder) all() [][]Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]Result, len(r.published))
	copy(out, r.published)
	return out
}

func titles(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title()
	}
	return out
}
