package launcher

import (
	"context"
	"log/slog"
	"time"
)

// Aggregator fans a query out to every registered provider, merges
// their asynchronous answers into the ResultCache, and publishes the
// ranked entry for whatever query is current at the time each answer
// lands.
//
// Two mutual-exclusion domains are involved: the cache mutex, held only
// during merge and snapshot, and the AppState mutex, held during the
// publish gate. They are acquired disjointly and never nested.
type Aggregator struct {
	providers []Provider
	cache     *ResultCache
	state     *AppState

	// OnNewResults is invoked with a ranked, deduplicated list for the
	// currently live query. Each firing replaces the previous list
	// wholesale; within one query's session successive firings are
	// sorted supersets of earlier ones. It may fire from any goroutine.
	OnNewResults func(results []Result)
}

// NewAggregator creates an aggregator over the given providers.
func NewAggregator(state *AppState, cache *ResultCache, providers ...Provider) *Aggregator {
	if cache == nil {
		cache = NewResultCache(0)
	}
	return &Aggregator{
		providers: providers,
		cache:     cache,
		state:     state,
	}
}

// Providers returns the registered providers.
func (a *Aggregator) Providers() []Provider {
	return a.providers
}

// Search records text as the current query and fans it out to all
// providers. The fan-out is unordered and concurrent; Search itself
// never blocks on provider work. Redundant searches for the text
// already current are skipped.
func (a *Aggregator) Search(ctx context.Context, text string) {
	if !a.state.SetQuery(text) {
		return
	}

	for _, p := range a.providers {
		go func(p Provider) {
			p.Query(ctx, text, func(results []Result) {
				a.didReceiveResults(text, results)
			})
		}(p)
	}
}

// didReceiveResults handles one provider answer for the query that
// produced it. The answer is merged into that query's cache entry, but
// what gets published is re-derived from the live query: slow providers
// answering for text the user has since replaced merge silently and
// publish nothing.
func (a *Aggregator) didReceiveResults(query string, results []Result) {
	a.cache.Merge(query, results)

	live := a.state.LastQuery()
	ranked, ok := a.cache.Ranked(live)
	if !ok {
		// No entry for the live query yet: this answer belongs to a
		// superseded query. Drop it.
		slog.Debug("stale_results_dropped",
			slog.String("query", query),
			slog.String("live", live),
			slog.Int("count", len(results)))
		return
	}

	// Install re-checks the live query under the state lock, so a
	// keystroke racing this publish cannot leave stale rows installed.
	if !a.state.Install(live, ranked) {
		return
	}
	if a.OnNewResults != nil {
		a.OnNewResults(ranked)
	}
}

// Collect runs a one-shot search and returns the ranked list for text
// after the wait elapses or ctx is done, whichever comes first. It
// exists for the non-interactive CLI path; hung providers simply do not
// contribute within the window.
func (a *Aggregator) Collect(ctx context.Context, text string, wait time.Duration) []Result {
	a.Search(ctx, text)

	select {
	case <-ctx.Done():
	case <-time.After(wait):
	}

	ranked, _ := a.cache.Ranked(text)
	return ranked
}
