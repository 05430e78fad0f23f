// Package lock enforces the one-launcher-per-machine contract with an
// advisory file lock. A second instance finding the lock held is not an
// error: it exits quietly so the already-open launcher keeps the
// screen.
package lock

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	berrors "github.com/beacon-sh/beacon/internal/errors"
)

// ErrAlreadyRunning reports that another launcher instance holds the
// lock. Callers treat it as a normal early exit, not a failure.
var ErrAlreadyRunning = errors.New("another instance is running")

// Guard is the process-wide singleton lock.
type Guard struct {
	flock *flock.Flock
}

// DefaultPath returns the lock file location, preferring
// XDG_RUNTIME_DIR.
func DefaultPath() string {
	if runtime := os.Getenv("XDG_RUNTIME_DIR"); runtime != "" {
		return filepath.Join(runtime, "beacon.lock")
	}
	return filepath.Join(os.TempDir(), "beacon.lock")
}

// New creates a guard for the given lock path; empty uses DefaultPath.
func New(path string) *Guard {
	if path == "" {
		path = DefaultPath()
	}
	return &Guard{flock: flock.New(path)}
}

// Acquire takes the lock without blocking. It returns ErrAlreadyRunning
// when another process holds it, or a fatal lock error when the lock
// cannot be attempted at all.
func (g *Guard) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(g.flock.Path()), 0o755); err != nil {
		return berrors.LockError("cannot create lock directory", err)
	}

	acquired, err := g.flock.TryLock()
	if err != nil {
		return berrors.LockError("cannot acquire singleton lock", err).
			WithSuggestion("check permissions on " + g.flock.Path())
	}
	if !acquired {
		return ErrAlreadyRunning
	}
	return nil
}

// Release drops the lock. Safe to call when never acquired.
func (g *Guard) Release() error {
	return g.flock.Unlock()
}

// Path returns the lock file path.
func (g *Guard) Path() string {
	return g.flock.Path()
}
