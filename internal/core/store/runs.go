package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/domainscout/domainscout/internal/core"
)

// RunRecord is one persisted run with its stored summary.
type RunRecord struct {
	ID           int64
	StartedAt    time.Time
	CompletedAt  time.Time
	NamesChecked int
	ComAvailable int
	Summary      *core.RunSummary
}

// SaveRun persists a completed run summary.
func (s *Store) SaveRun(ctx context.Context, summary *core.RunSummary) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}
	if summary == nil {
		return 0, errors.New("run summary is required")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("encode run summary: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO runs (started_at, completed_at, names_checked, com_available, summary_json)
		VALUES (?, ?, ?, ?, ?)
	`, summary.StartedAt.UTC().Unix(), summary.CompletedAt.UTC().Unix(), summary.NamesChecked, summary.ComAvailable, string(payload))
	if err != nil {
		return 0, fmt.Errorf("store run: %w", err)
	}

	return res.LastInsertId()
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, started_at, completed_at, names_checked, com_available, summary_json
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch runs: %w", err)
	}
	defer rows.Close() // nolint:errcheck // best-effort cleanup on SQL rows

	records := make([]RunRecord, 0, limit)
	for rows.Next() {
		var (
			record      RunRecord
			startedAt   int64
			completedAt int64
			payload     string
		)
		if err := rows.Scan(&record.ID, &startedAt, &completedAt, &record.NamesChecked, &record.ComAvailable, &payload); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		record.StartedAt = time.Unix(startedAt, 0).UTC()
		record.CompletedAt = time.Unix(completedAt, 0).UTC()

		var summary core.RunSummary
		if err := json.Unmarshal([]byte(payload), &summary); err != nil {
			return nil, fmt.Errorf("decode run summary: %w", err)
		}
		record.Summary = &summary

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch runs: %w", err)
	}

	return records, nil
}
