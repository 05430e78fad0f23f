package providers

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beacon-sh/beacon/internal/launcher"
)

// minFileQueryLen keeps one- and two-letter queries from walking the
// filesystem; they match everything and help nobody.
const minFileQueryLen = 3

// File score bands; all below app scores so a matching application
// beats a matching file of the same name.
const (
	fileScoreExact  = 45
	fileScorePrefix = 35
	fileScoreSubstr = 25
)

// Walk bounds. The walk is best-effort: whatever was found inside the
// budget is reported.
const (
	defaultFileMaxDepth   = 6
	defaultFileMaxResults = 16
	maxWalkEntries        = 50000
)

// FileProvider fuzzy-matches file names under the configured roots on a
// background goroutine.
type FileProvider struct {
	roots      []string
	maxDepth   int
	maxResults int
}

// NewFileProvider creates a file provider over roots. When roots is
// empty the user's home directory is used.
func NewFileProvider(roots []string, maxDepth, maxResults int) *FileProvider {
	if len(roots) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			roots = []string{home}
		}
	}
	if maxDepth <= 0 {
		maxDepth = defaultFileMaxDepth
	}
	if maxResults <= 0 {
		maxResults = defaultFileMaxResults
	}
	return &FileProvider{roots: roots, maxDepth: maxDepth, maxResults: maxResults}
}

func (p *FileProvider) Name() string { return "files" }

// Query walks the roots looking for matching names. The walk happens on
// the calling goroutine (the aggregator already dispatches providers
// concurrently) and stops early when ctx is cancelled or the entry
// budget is spent.
func (p *FileProvider) Query(ctx context.Context, text string, onResults func([]launcher.Result)) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if len(needle) < minFileQueryLen {
		return
	}

	type scored struct {
		path  string
		score int
	}
	var matches []scored
	visited := 0

	for _, root := range p.roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if ctx.Err() != nil {
				return filepath.SkipAll
			}
			visited++
			if visited > maxWalkEntries {
				return filepath.SkipAll
			}

			name := d.Name()
			if d.IsDir() {
				if path != root && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				if depthOf(root, path) >= p.maxDepth {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return nil
			}

			if score := matchScore(strings.ToLower(name), needle); score > 0 {
				matches = append(matches, scored{path: path, score: score})
			}
			return nil
		})
		if err != nil {
			slog.Debug("file_walk_failed",
				slog.String("root", root),
				slog.String("error", err.Error()))
		}
	}

	// Keep the best matches, sorted so truncation drops the weakest.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > p.maxResults {
		matches = matches[:p.maxResults]
	}

	results := make([]launcher.Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, &FileResult{path: m.path, score: m.score})
	}
	onResults(results)
}

// matchScore rates how well needle matches a lowercased file name.
// Zero means no match.
func matchScore(name, needle string) int {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	switch {
	case name == needle || stem == needle:
		return fileScoreExact
	case strings.HasPrefix(name, needle):
		return fileScorePrefix
	case strings.Contains(name, needle):
		return fileScoreSubstr
	}
	return 0
}

func depthOf(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// FileResult opens a file with the platform opener. Identity is the
// absolute path: the same file found twice deduplicates.
type FileResult struct {
	path  string
	score int
}

func (r *FileResult) Title() string   { return filepath.Base(r.path) }
func (r *FileResult) Tooltip() string { return r.path }
func (r *FileResult) Score() int      { return r.score }
func (r *FileResult) Icon() string    { return "▤" }

func (r *FileResult) Equals(other launcher.Result) bool {
	o, ok := other.(*FileResult)
	return ok && o.path == r.path
}

func (r *FileResult) Activate(ctx context.Context) error {
	return openTarget(ctx, r.path)
}
