package launcher

import (
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of query entries kept.
// A launcher session rarely sees more than a few dozen distinct
// queries, but a long-lived session must not grow without bound.
const DefaultCacheSize = 128

// cacheEntry accumulates the deduplicated results for one query, in
// first-seen order.
type cacheEntry struct {
	results []Result
}

// ResultCache maps query strings to their accumulated, deduplicated
// results. Entries are bounded by an LRU over query strings. All access
// goes through a single cache-wide mutex; merges are linear Equals
// scans, which preserves the first-seen order that score tie-breaking
// depends on.
type ResultCache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, *cacheEntry]
}

// NewResultCache creates a cache bounded to size query entries.
// If size <= 0, DefaultCacheSize is used.
func NewResultCache(size int) *ResultCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, _ := lru.New[string, *cacheEntry](size)
	return &ResultCache{entries: entries}
}

// Merge folds incoming results into the entry for query, creating the
// entry if needed. A result already present by Equals is dropped, so
// within one entry no two results are mutually equal.
func (c *ResultCache) Merge(query string, incoming []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries.Get(query)
	if !ok {
		entry = &cacheEntry{}
		c.entries.Add(query, entry)
	}

	for _, r := range incoming {
		if r == nil {
			continue
		}
		found := false
		for _, existing := range entry.results {
			if r.Equals(existing) {
				found = true
				break
			}
		}
		if !found {
			entry.results = append(entry.results, r)
		}
	}
}

// Ranked returns a copy of query's entry sorted by descending score.
// The sort is stable, so equal scores keep their first-seen order.
// ok is false when no entry exists for query.
func (c *ResultCache) Ranked(query string) (results []Result, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries.Get(query)
	if !ok {
		return nil, false
	}

	results = make([]Result, len(entry.results))
	copy(results, entry.results)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score() > results[j].Score()
	})
	return results, true
}

// Len reports the number of query entries currently cached.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
