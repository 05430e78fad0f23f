package providers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/beacon-sh/beacon/internal/appindex"
	"github.com/beacon-sh/beacon/internal/history"
	"github.com/beacon-sh/beacon/internal/launcher"
)

// maxAppHits bounds how many applications one query can contribute.
const maxAppHits = 16

// appScoreBase and appScoreRange map a normalized index relevance in
// (0, 1] onto [appScoreBase, appScoreBase+appScoreRange]; history adds
// up to history.MaxBoost on top. Apps therefore outrank files but never
// the calculator.
const (
	appScoreBase  = 50
	appScoreRange = 50
)

// AppProvider matches installed applications against the query via the
// desktop-entry index, with launch history folded into scores.
type AppProvider struct {
	index   *appindex.Index
	history *history.Store // nil disables boosting
}

// NewAppProvider creates an app provider over idx. hist may be nil.
func NewAppProvider(idx *appindex.Index, hist *history.Store) *AppProvider {
	return &AppProvider{index: idx, history: hist}
}

func (p *AppProvider) Name() string { return "apps" }

// Query reports matching applications, or nothing on index failure.
func (p *AppProvider) Query(ctx context.Context, text string, onResults func([]launcher.Result)) {
	if strings.TrimSpace(text) == "" {
		onResults(nil)
		return
	}

	hits, err := p.index.Search(ctx, text, maxAppHits)
	if err != nil {
		slog.Debug("app_provider_failed", slog.String("error", err.Error()))
		return
	}

	results := make([]launcher.Result, 0, len(hits))
	for _, hit := range hits {
		score := appScoreBase + int(float64(appScoreRange)*hit.Score)
		if p.history != nil {
			score += p.history.Boost(ctx, hit.Entry.ID)
		}
		results = append(results, &AppResult{
			entry:   hit.Entry,
			score:   score,
			history: p.history,
		})
	}
	onResults(results)
}

// AppResult launches an installed application.
type AppResult struct {
	entry   appindex.Entry
	score   int
	history *history.Store
}

func (r *AppResult) Title() string   { return r.entry.Name }
func (r *AppResult) Tooltip() string { return r.entry.Comment }
func (r *AppResult) Score() int      { return r.score }

func (r *AppResult) Icon() string {
	if r.entry.Terminal {
		return ">_"
	}
	return "◆"
}

// Equals compares by desktop-entry ID: the same application reported
// twice (or with different scores) deduplicates to one row.
func (r *AppResult) Equals(other launcher.Result) bool {
	o, ok := other.(*AppResult)
	return ok && o.entry.ID == r.entry.ID
}

// Activate spawns the entry's Exec command detached and records the
// launch in history.
func (r *AppResult) Activate(ctx context.Context) error {
	fields := strings.Fields(r.entry.Exec)
	if len(fields) == 0 {
		return nil
	}
	if err := spawnDetached(ctx, fields[0], fields[1:]...); err != nil {
		return err
	}
	if r.history != nil {
		if err := r.history.Record(ctx, r.entry.ID); err != nil {
			slog.Debug("history_record_failed", slog.String("error", err.Error()))
		}
	}
	return nil
}
