package appindex

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce coalesces bursts of filesystem events (package
// managers touch many desktop files at once) into one rebuild.
const DefaultWatchDebounce = 500 * time.Millisecond

// Watch re-runs Rebuild whenever a watched application directory
// changes, debounced. It blocks until ctx is done and is intended to
// run on its own goroutine. Directories that cannot be watched are
// skipped; if none can be watched an error is returned.
func (x *Index) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := 0
	for _, dir := range x.dirs {
		if err := watcher.Add(dir); err != nil {
			slog.Debug("app_dir_watch_failed",
				slog.String("dir", dir),
				slog.String("error", err.Error()))
			continue
		}
		watched++
	}
	if watched == 0 {
		return errNoWatchableDirs
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Debug("app_watch_error", slog.String("error", err.Error()))
		case <-timer.C:
			if err := x.Rebuild(ctx); err != nil {
				slog.Warn("app_index_rebuild_failed", slog.String("error", err.Error()))
			}
		}
	}
}
