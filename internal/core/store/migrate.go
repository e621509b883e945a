package store

import (
	"context"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS signal_cache (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		domain TEXT NOT NULL,
		kind TEXT NOT NULL,
		signal TEXT NOT NULL,
		reason TEXT,
		check_id TEXT,
		checked_at INTEGER NOT NULL,
		UNIQUE(domain, kind)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_signal_cache_lookup ON signal_cache(domain, kind);`,
	`CREATE INDEX IF NOT EXISTS idx_signal_cache_checked ON signal_cache(checked_at);`,
	`CREATE TABLE IF NOT EXISTS rate_limits (
		endpoint TEXT PRIMARY KEY,
		request_count INTEGER NOT NULL DEFAULT 0,
		window_start INTEGER NOT NULL,
		backoff_until INTEGER,
		last_denied_at INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at INTEGER NOT NULL,
		completed_at INTEGER NOT NULL,
		names_checked INTEGER NOT NULL,
		com_available INTEGER NOT NULL,
		summary_json TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);`,
}

// Migrate ensures the required database tables exist.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	for _, stmt := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store migration failed: %w", err)
		}
	}

	return nil
}
