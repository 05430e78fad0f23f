// Package appindex maintains an in-memory full-text index of installed
// applications, built from XDG desktop entries and queried by the app
// provider with per-hit relevance scores.
package appindex

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"golang.org/x/sync/errgroup"
)

// nameAnalyzerName is the analyzer used for application names and
// comments: unicode tokenization plus lowercasing, no stemming, so
// partial typing like "fire" still prefix-matches "Firefox".
const nameAnalyzerName = "app_name"

// scanWorkers bounds the parallel directory scan.
const scanWorkers = 4

// indexedEntry is the document shape stored in bleve.
type indexedEntry struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

// Hit is one scored index match.
type Hit struct {
	Entry Entry
	// Score is the bleve relevance score, normalized by the best hit of
	// the same search to (0, 1].
	Score float64
}

// Index is the searchable catalog of installed applications. The bleve
// index is in-memory and rebuilt wholesale on refresh; entries are kept
// alongside it for hydration of hits.
type Index struct {
	dirs []string

	mu      sync.RWMutex
	idx     bleve.Index
	entries map[string]Entry
}

// New creates an empty index over the given application directories.
// When dirs is empty the standard XDG locations are used.
func New(dirs []string) (*Index, error) {
	if len(dirs) == 0 {
		dirs = DefaultDirs()
	}
	idx, err := bleve.NewMemOnly(createMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create app index: %w", err)
	}
	return &Index{
		dirs:    dirs,
		idx:     idx,
		entries: make(map[string]Entry),
	}, nil
}

// DefaultDirs returns the XDG application directories in precedence
// order, later entries shadowed by earlier ones on duplicate IDs.
func DefaultDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}
	if dataDirs := os.Getenv("XDG_DATA_DIRS"); dataDirs != "" {
		for _, d := range filepath.SplitList(dataDirs) {
			if d != "" {
				dirs = append(dirs, filepath.Join(d, "applications"))
			}
		}
	} else {
		dirs = append(dirs,
			"/usr/local/share/applications",
			"/usr/share/applications")
	}
	return dirs
}

// Dirs returns the directories this index scans.
func (x *Index) Dirs() []string {
	return x.dirs
}

func createMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()
	// Errors here only occur for unknown component names.
	_ = indexMapping.AddCustomAnalyzer(nameAnalyzerName, map[string]interface{}{
		"type":          custom.Name,
		"tokenizer":     unicode.Name,
		"token_filters": []string{lowercase.Name},
	})
	indexMapping.DefaultAnalyzer = nameAnalyzerName
	return indexMapping
}

// Rebuild rescans all application directories and replaces the index
// contents. Directories are scanned in parallel; unreadable files or
// directories are skipped.
func (x *Index) Rebuild(ctx context.Context) error {
	var mu sync.Mutex
	found := make(map[string]Entry)
	priority := make(map[string]int)

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(scanWorkers)

	// Dirs are scanned in parallel; on duplicate IDs the earlier-listed
	// directory wins, matching XDG shadowing.
	for prio, dir := range x.dirs {
		grp.Go(func() error {
			entries, err := scanDir(ctx, dir)
			if err != nil {
				slog.Debug("app_dir_skipped",
					slog.String("dir", dir),
					slog.String("error", err.Error()))
				return nil
			}
			mu.Lock()
			for id, e := range entries {
				if existing, ok := priority[id]; ok && existing <= prio {
					continue
				}
				found[id] = e
				priority[id] = prio
			}
			mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	idx, err := bleve.NewMemOnly(createMapping())
	if err != nil {
		return fmt.Errorf("failed to create app index: %w", err)
	}
	batch := idx.NewBatch()
	for id, e := range found {
		if err := batch.Index(id, indexedEntry{Name: e.Name, Comment: e.Comment}); err != nil {
			return fmt.Errorf("failed to index %s: %w", id, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return fmt.Errorf("failed to build app index: %w", err)
	}

	x.mu.Lock()
	old := x.idx
	x.idx = idx
	x.entries = found
	x.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}

	slog.Debug("app_index_rebuilt", slog.Int("entries", len(found)))
	return nil
}

// scanDir parses every .desktop file directly under dir.
func scanDir(ctx context.Context, dir string) (map[string]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]Entry)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".desktop") {
			continue
		}
		id := strings.TrimSuffix(f.Name(), ".desktop")
		file, err := os.Open(filepath.Join(dir, f.Name()))
		if err != nil {
			continue
		}
		entry, ok := parseDesktopEntry(id, file)
		_ = file.Close()
		if ok {
			entries[id] = entry
		}
	}
	return entries, nil
}

// Search returns up to limit applications matching text, best first.
// Matching combines a fuzzy-ish match over names and comments with a
// prefix match over names, so both "firefox" and "fire" find Firefox.
func (x *Index) Search(ctx context.Context, text string, limit int) ([]Hit, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	x.mu.RLock()
	idx := x.idx
	x.mu.RUnlock()

	nameMatch := bleve.NewMatchQuery(text)
	nameMatch.SetField("name")
	nameMatch.SetBoost(2.0)

	namePrefix := bleve.NewPrefixQuery(strings.ToLower(text))
	namePrefix.SetField("name")
	namePrefix.SetBoost(1.5)

	commentMatch := bleve.NewMatchQuery(text)
	commentMatch.SetField("comment")

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(nameMatch, namePrefix, commentMatch))
	req.Size = limit

	res, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("app search failed: %w", err)
	}
	if len(res.Hits) == 0 {
		return nil, nil
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	top := res.Hits[0].Score
	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		entry, ok := x.entries[h.ID]
		if !ok {
			continue
		}
		score := 1.0
		if top > 0 {
			score = h.Score / top
		}
		hits = append(hits, Hit{Entry: entry, Score: score})
	}
	return hits, nil
}

// Len reports the number of indexed applications.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}
