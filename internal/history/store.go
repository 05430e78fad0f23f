// Package history persists application launch counts and feeds a small
// frecency boost back into app result scores, so frequently launched
// applications climb toward the top row.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// MaxBoost caps the additive score bonus from launch history so it can
// reorder applications among themselves but never outrank a calculator
// or terminal result.
const MaxBoost = 20

// staleAfter is the age past which a launch count stops boosting at
// full strength.
const staleAfter = 30 * 24 * time.Hour

// Stat is one row of launch history.
type Stat struct {
	EntryID    string
	Count      int
	LastLaunch time.Time
}

// Store is the sqlite-backed launch history.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// Single writer; the launcher is the only client.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// WAL must be set via PRAGMA for modernc.org/sqlite; DSN params may
	// be ignored.
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS launches (
		entry_id    TEXT PRIMARY KEY,
		count       INTEGER NOT NULL DEFAULT 0,
		last_launch INTEGER NOT NULL DEFAULT 0
	);

	INSERT OR IGNORE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record notes one launch of entryID.
func (s *Store) Record(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("history store is closed")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO launches (entry_id, count, last_launch) VALUES (?, 1, ?)
		ON CONFLICT(entry_id) DO UPDATE SET
			count = count + 1,
			last_launch = excluded.last_launch`,
		entryID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record launch: %w", err)
	}
	return nil
}

// Boost returns the additive score bonus for entryID: log-scaled in the
// launch count, capped at MaxBoost, halved once the last launch is
// older than staleAfter. Unknown entries boost zero.
func (s *Store) Boost(ctx context.Context, entryID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}

	var count int64
	var last int64
	err := s.db.QueryRowContext(ctx,
		`SELECT count, last_launch FROM launches WHERE entry_id = ?`,
		entryID).Scan(&count, &last)
	if err != nil {
		return 0
	}

	boost := int(6 * math.Log1p(float64(count)))
	if boost > MaxBoost {
		boost = MaxBoost
	}
	if time.Since(time.Unix(last, 0)) > staleAfter {
		boost /= 2
	}
	return boost
}

// Top returns the n most-launched entries, most launched first.
func (s *Store) Top(ctx context.Context, n int) ([]Stat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("history store is closed")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT entry_id, count, last_launch FROM launches
		ORDER BY count DESC, last_launch DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []Stat
	for rows.Next() {
		var st Stat
		var last int64
		if err := rows.Scan(&st.EntryID, &st.Count, &last); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		st.LastLaunch = time.Unix(last, 0)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// Clear removes all launch history.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("history store is closed")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM launches`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
