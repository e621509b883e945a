package engine

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/domainscout/domainscout/internal/core"
)

// RateLimiter enforces per-endpoint rate limits backed by a store so
// limits survive process restarts.
type RateLimiter struct {
	Store  RateLimitStore
	Limits map[string]RateLimit
	Clock  func() time.Time
	Margin float64
}

// RateLimit represents a rate limit window.
type RateLimit struct {
	RequestsPerWindow int
	WindowDuration    time.Duration
}

// RateLimitStore stores rate limit state.
type RateLimitStore interface {
	GetRateLimit(ctx context.Context, endpoint string) (*core.RateLimitState, error)
	UpdateRateLimit(ctx context.Context, endpoint string, state *core.RateLimitState) error
}

// DefaultLimits provides conservative defaults per endpoint. WHOIS
// registries are the strictest and the quickest to block abusers.
var DefaultLimits = map[string]RateLimit{
	"whois":             {RequestsPerWindow: 30, WindowDuration: time.Hour},
	"rdap.verisign.com": {RequestsPerWindow: 30, WindowDuration: time.Minute},
	"rdap.nic.io":       {RequestsPerWindow: 10, WindowDuration: 10 * time.Second},
	"http":              {RequestsPerWindow: 300, WindowDuration: time.Minute},
}

// Allow reports whether a request to the endpoint may proceed. A store
// read failure fails open so availability checks never stall on local
// bookkeeping.
func (r *RateLimiter) Allow(ctx context.Context, endpoint string) (bool, error) {
	if r == nil || r.Store == nil {
		return true, nil
	}

	state, err := r.Store.GetRateLimit(ctx, endpoint)
	if err != nil {
		return true, err
	}
	if state == nil {
		state = &core.RateLimitState{WindowStart: r.now()}
	}

	if state.BackoffUntil != nil && r.now().Before(*state.BackoffUntil) {
		return false, nil
	}

	limit := r.getLimit(endpoint)
	windowEnd := state.WindowStart.Add(limit.WindowDuration)
	if r.now().After(windowEnd) {
		state.RequestCount = 0
		state.WindowStart = r.now()
	}

	if state.RequestCount >= limit.RequestsPerWindow {
		now := r.now()
		state.LastDeniedAt = &now
		// nolint:errcheck // best-effort denial bookkeeping
		r.Store.UpdateRateLimit(ctx, endpoint, state)
		return false, nil
	}

	return true, nil
}

// Record increments the request count for an endpoint.
func (r *RateLimiter) Record(ctx context.Context, endpoint string) error {
	if r == nil || r.Store == nil {
		return nil
	}

	state, err := r.Store.GetRateLimit(ctx, endpoint)
	if err != nil {
		return err
	}
	if state == nil {
		state = &core.RateLimitState{WindowStart: r.now()}
	}

	state.RequestCount++
	if state.WindowStart.IsZero() {
		state.WindowStart = r.now()
	}

	return r.Store.UpdateRateLimit(ctx, endpoint, state)
}

// RecordBackoff applies a backoff window after an endpoint pushed back.
func (r *RateLimiter) RecordBackoff(ctx context.Context, endpoint string, retryAfter time.Duration) error {
	if r == nil || r.Store == nil {
		return nil
	}

	state, err := r.Store.GetRateLimit(ctx, endpoint)
	if err != nil {
		return err
	}
	if state == nil {
		state = &core.RateLimitState{WindowStart: r.now()}
	}

	now := r.now()
	state.LastDeniedAt = &now
	if retryAfter > 0 {
		until := now.Add(retryAfter)
		state.BackoffUntil = &until
	}

	return r.Store.UpdateRateLimit(ctx, endpoint, state)
}

// ApplyOverrides merges per-endpoint request overrides (per minute).
func (r *RateLimiter) ApplyOverrides(overrides map[string]int) {
	if r == nil || len(overrides) == 0 {
		return
	}

	if r.Limits == nil {
		r.Limits = make(map[string]RateLimit, len(DefaultLimits))
		for key, limit := range DefaultLimits {
			r.Limits[key] = limit
		}
	}

	for endpoint, value := range overrides {
		endpoint = strings.TrimSpace(endpoint)
		if endpoint == "" || value <= 0 {
			continue
		}
		r.Limits[endpoint] = RateLimit{
			RequestsPerWindow: value,
			WindowDuration:    time.Minute,
		}
	}
}

// ApplySafetyMargin adjusts the effective request limits by a ratio (0-1].
func (r *RateLimiter) ApplySafetyMargin(margin float64) {
	if r == nil {
		return
	}
	if margin <= 0 || margin > 1 {
		return
	}
	r.Margin = margin
}

func (r *RateLimiter) getLimit(endpoint string) RateLimit {
	if r == nil {
		return RateLimit{RequestsPerWindow: 1, WindowDuration: time.Minute}
	}

	limits := r.Limits
	if limits == nil {
		limits = DefaultLimits
	}

	if limit, ok := limits[endpoint]; ok {
		return r.applyMargin(limit)
	}

	if strings.HasPrefix(endpoint, "whois.") {
		if limit, ok := limits["whois"]; ok {
			return r.applyMargin(limit)
		}
	}

	return r.applyMargin(RateLimit{RequestsPerWindow: 30, WindowDuration: time.Minute})
}

func (r *RateLimiter) now() time.Time {
	if r != nil && r.Clock != nil {
		return r.Clock()
	}
	return time.Now().UTC()
}

func (r *RateLimiter) applyMargin(limit RateLimit) RateLimit {
	if r == nil || r.Margin <= 0 || r.Margin > 1 {
		return limit
	}
	adjusted := int(math.Floor(float64(limit.RequestsPerWindow) * r.Margin))
	if adjusted < 1 {
		adjusted = 1
	}
	limit.RequestsPerWindow = adjusted
	return limit
}
