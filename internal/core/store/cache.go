package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/domainscout/domainscout/internal/core"
)

// GetCachedSignal returns a cached signal result no older than maxAge.
func (s *Store) GetCachedSignal(ctx context.Context, domain string, kind core.SignalKind, maxAge time.Duration) (*core.SignalResult, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, errors.New("cache domain is required")
	}

	cutoff := time.Now().UTC().Add(-maxAge).Unix()

	var (
		signal    string
		reason    sql.NullString
		checkID   sql.NullString
		checkedAt int64
	)

	row := s.DB.QueryRowContext(ctx, `
		SELECT signal, reason, check_id, checked_at
		FROM signal_cache
		WHERE domain = ? AND kind = ? AND checked_at > ?
	`, domain, string(kind), cutoff)

	if err := row.Scan(&signal, &reason, &checkID, &checkedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch cached signal: %w", err)
	}

	parsed, err := core.ParseSignal(signal)
	if err != nil {
		return nil, fmt.Errorf("decode cached signal: %w", err)
	}

	return &core.SignalResult{
		Kind:      kind,
		Signal:    parsed,
		Reason:    reason.String,
		CheckID:   checkID.String,
		CheckedAt: time.Unix(checkedAt, 0).UTC(),
		FromCache: true,
	}, nil
}

// SetCachedSignal stores a signal result, replacing any prior entry
// for the same domain and kind.
func (s *Store) SetCachedSignal(ctx context.Context, domain string, result core.SignalResult) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return errors.New("cache domain is required")
	}

	checkedAt := result.CheckedAt
	if checkedAt.IsZero() {
		checkedAt = time.Now().UTC()
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO signal_cache (domain, kind, signal, reason, check_id, checked_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(domain, kind) DO UPDATE SET
			signal = excluded.signal,
			reason = excluded.reason,
			check_id = excluded.check_id,
			checked_at = excluded.checked_at
	`, domain, string(result.Kind), result.Signal.String(), result.Reason, result.CheckID, checkedAt.Unix())
	if err != nil {
		return fmt.Errorf("store cached signal: %w", err)
	}

	return nil
}

// PruneSignalCache removes entries older than maxAge.
func (s *Store) PruneSignalCache(ctx context.Context, maxAge time.Duration) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cutoff := time.Now().UTC().Add(-maxAge).Unix()
	res, err := s.DB.ExecContext(ctx, `DELETE FROM signal_cache WHERE checked_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune signal cache: %w", err)
	}

	return res.RowsAffected()
}
