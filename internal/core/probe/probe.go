// Package probe implements the three availability signals: DNS
// resolution, WHOIS registry lookup, and HTTP reachability. Each
// prober returns a tri-state result and never fails its caller; doubt
// is reported as an unknown signal with a reason.
package probe

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/domainscout/domainscout/internal/core"
)

// Prober is one availability signal source.
type Prober interface {
	Kind() core.SignalKind
	Probe(ctx context.Context, domain string) core.SignalResult
}

// SignalStore caches prior signal results so repeat lookups within a
// TTL skip the network.
type SignalStore interface {
	GetCachedSignal(ctx context.Context, domain string, kind core.SignalKind, maxAge time.Duration) (*core.SignalResult, error)
	SetCachedSignal(ctx context.Context, domain string, result core.SignalResult) error
}

// CachePolicy maps each verdict to how long it stays fresh. Absent
// domains churn fastest, so they get the shortest reuse window.
type CachePolicy struct {
	AvailableTTL time.Duration
	TakenTTL     time.Duration
	ErrorTTL     time.Duration
}

// DefaultCachePolicy mirrors how quickly each verdict goes stale.
func DefaultCachePolicy() CachePolicy {
	return CachePolicy{
		AvailableTTL: 1 * time.Hour,
		TakenTTL:     24 * time.Hour,
		ErrorTTL:     10 * time.Minute,
	}
}

// MaxTTL returns the longest reuse window the policy grants; entries
// older than this can never be served again.
func (p CachePolicy) MaxTTL() time.Duration {
	max := p.AvailableTTL
	if p.TakenTTL > max {
		max = p.TakenTTL
	}
	if p.ErrorTTL > max {
		max = p.ErrorTTL
	}
	return max
}

// TTLFor returns the reuse window for a cached signal.
func (p CachePolicy) TTLFor(signal core.Signal) time.Duration {
	switch signal {
	case core.SignalDoesNotExist:
		return p.AvailableTTL
	case core.SignalExists:
		return p.TakenTTL
	default:
		return p.ErrorTTL
	}
}

// result builds a SignalResult with a fresh check ID and timestamp.
func result(kind core.SignalKind, signal core.Signal, reason string, now func() time.Time) core.SignalResult {
	clock := now
	if clock == nil {
		clock = time.Now
	}
	return core.SignalResult{
		Kind:      kind,
		Signal:    signal,
		Reason:    reason,
		CheckID:   uuid.NewString(),
		CheckedAt: clock(),
	}
}

// Cached wraps a prober with store-backed reuse. Store errors degrade
// to a live probe.
type Cached struct {
	Prober Prober
	Store  SignalStore
	Policy CachePolicy
}

func (c *Cached) Kind() core.SignalKind {
	return c.Prober.Kind()
}

func (c *Cached) Probe(ctx context.Context, domain string) core.SignalResult {
	if c.Store != nil {
		maxAge := c.Policy.MaxTTL()
		if cached, err := c.Store.GetCachedSignal(ctx, domain, c.Prober.Kind(), maxAge); err == nil && cached != nil {
			if time.Since(cached.CheckedAt) <= c.Policy.TTLFor(cached.Signal) {
				hit := *cached
				hit.FromCache = true
				return hit
			}
		}
	}
	res := c.Prober.Probe(ctx, domain)
	if c.Store != nil && !res.FromCache {
		// nolint:errcheck // best-effort cache write
		c.Store.SetCachedSignal(ctx, domain, res)
	}
	return res
}
