package cmd

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/domainscout/domainscout/internal/config"
	"github.com/domainscout/domainscout/internal/core/engine"
	"github.com/domainscout/domainscout/internal/core/probe"
	"github.com/domainscout/domainscout/internal/core/store"
)

// openStore opens and migrates the store, degrading to nil when it is
// unavailable. Runs still work without a store; they just lose the
// signal cache, persistent rate limits, and history.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) *store.Store {
	storeCfg := cfg.Store
	if storeCfg.Path == "" && storeCfg.URL == "" {
		storeCfg.Path = defaultStorePath()
	}
	if storeCfg.Path == "" && storeCfg.URL == "" {
		return nil
	}

	st, err := store.Open(ctx, storeCfg)
	if err != nil {
		logger.Warn("store unavailable, continuing without cache", zap.Error(err))
		return nil
	}
	if err := st.Migrate(ctx); err != nil {
		logger.Warn("store migration failed, continuing without cache", zap.Error(err))
		// nolint:errcheck // best-effort cleanup on unusable store
		st.Close()
		return nil
	}

	// Entries past the longest TTL can never be served; drop them so
	// the cache does not grow without bound.
	if pruned, err := st.PruneSignalCache(ctx, cachePolicy(cfg).MaxTTL()); err != nil {
		logger.Warn("signal cache prune failed", zap.Error(err))
	} else if pruned > 0 {
		logger.Debug("pruned stale cached signals", zap.Int64("pruned", pruned))
	}

	return st
}

func defaultStorePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cacheDir, "domainscout", "domainscout.db")
}

// buildOrchestrator wires probes, caching, and rate limiting from the
// configuration. A nil store disables caching and persistent limits.
func buildOrchestrator(cfg *config.Config, st *store.Store, logger *zap.Logger) *engine.Orchestrator {
	var limiter *engine.RateLimiter
	if st != nil {
		limiter = &engine.RateLimiter{Store: st}
		limiter.ApplyOverrides(cfg.RateLimits)
		limiter.ApplySafetyMargin(cfg.RateLimitMargin)
	}

	dns := probe.NewDNSProber(cfg.Probes.DNSTimeout)
	whois := probe.NewWhoisProber(cfg.Probes.WhoisServers, cfg.Probes.WhoisTimeout, limiterOrNil(limiter))
	http := probe.NewHTTPProber(cfg.Probes.HTTPTimeout)
	http.Limiter = limiterOrNil(limiter)

	probers := []engine.Prober{
		wrapCached(dns, st, cfg),
		wrapCached(whois, st, cfg),
		wrapCached(http, st, cfg),
	}

	return &engine.Orchestrator{
		Probers:     probers,
		Workers:     cfg.Checks.Workers,
		DomainDelay: cfg.Checks.DomainDelay,
		NameDelay:   cfg.Checks.NameDelay,
		Suffixes:    cfg.Checks.Suffixes,
		Extensions:  cfg.Checks.Extensions,
		Logger:      logger,
	}
}

// limiterOrNil keeps a typed-nil *RateLimiter out of the Limiter
// interface value.
func limiterOrNil(limiter *engine.RateLimiter) probe.Limiter {
	if limiter == nil {
		return nil
	}
	return limiter
}

// cachePolicy applies configured TTL overrides to the default policy.
func cachePolicy(cfg *config.Config) probe.CachePolicy {
	policy := probe.DefaultCachePolicy()
	if cfg.Cache.AvailableTTL > 0 {
		policy.AvailableTTL = cfg.Cache.AvailableTTL
	}
	if cfg.Cache.TakenTTL > 0 {
		policy.TakenTTL = cfg.Cache.TakenTTL
	}
	if cfg.Cache.ErrorTTL > 0 {
		policy.ErrorTTL = cfg.Cache.ErrorTTL
	}
	return policy
}

func wrapCached(p probe.Prober, st *store.Store, cfg *config.Config) engine.Prober {
	if st == nil || !cfg.Cache.Enabled {
		return p
	}
	return &probe.Cached{Prober: p, Store: st, Policy: cachePolicy(cfg)}
}
