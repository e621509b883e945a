package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/domainscout/domainscout/internal/core"
)

type stubProber struct {
	kind   core.SignalKind
	probes int
	signal core.Signal
}

func (s *stubProber) Kind() core.SignalKind {
	return s.kind
}

func (s *stubProber) Probe(ctx context.Context, domain string) core.SignalResult {
	s.probes++
	return core.SignalResult{Kind: s.kind, Signal: s.signal, CheckedAt: time.Now().UTC()}
}

type memorySignalStore struct {
	entries map[string]core.SignalResult
	writes  int
}

func (m *memorySignalStore) key(domain string, kind core.SignalKind) string {
	return domain + "|" + string(kind)
}

func (m *memorySignalStore) GetCachedSignal(ctx context.Context, domain string, kind core.SignalKind, maxAge time.Duration) (*core.SignalResult, error) {
	if entry, ok := m.entries[m.key(domain, kind)]; ok {
		hit := entry
		return &hit, nil
	}
	return nil, nil
}

func (m *memorySignalStore) SetCachedSignal(ctx context.Context, domain string, result core.SignalResult) error {
	if m.entries == nil {
		m.entries = make(map[string]core.SignalResult)
	}
	m.entries[m.key(domain, result.Kind)] = result
	m.writes++
	return nil
}

func TestCachedProbeWritesThrough(t *testing.T) {
	inner := &stubProber{kind: core.SignalKindDNS, signal: core.SignalDoesNotExist}
	store := &memorySignalStore{}
	cached := &Cached{Prober: inner, Store: store, Policy: DefaultCachePolicy()}

	first := cached.Probe(context.Background(), "example.com")
	require.False(t, first.FromCache)
	require.Equal(t, 1, inner.probes)
	require.Equal(t, 1, store.writes)

	second := cached.Probe(context.Background(), "example.com")
	require.True(t, second.FromCache)
	require.Equal(t, 1, inner.probes)
}

func TestCachedProbeExpiredEntryRefetches(t *testing.T) {
	inner := &stubProber{kind: core.SignalKindDNS, signal: core.SignalDoesNotExist}
	store := &memorySignalStore{entries: map[string]core.SignalResult{
		"example.com|dns": {
			Kind:      core.SignalKindDNS,
			Signal:    core.SignalDoesNotExist,
			CheckedAt: time.Now().UTC().Add(-48 * time.Hour),
		},
	}}
	cached := &Cached{Prober: inner, Store: store, Policy: DefaultCachePolicy()}

	result := cached.Probe(context.Background(), "example.com")
	require.False(t, result.FromCache)
	require.Equal(t, 1, inner.probes)
}

func TestCachePolicyTTLFor(t *testing.T) {
	policy := DefaultCachePolicy()
	require.Equal(t, policy.AvailableTTL, policy.TTLFor(core.SignalDoesNotExist))
	require.Equal(t, policy.TakenTTL, policy.TTLFor(core.SignalExists))
	require.Equal(t, policy.ErrorTTL, policy.TTLFor(core.SignalUnknown))
}

func TestCachePolicyMaxTTL(t *testing.T) {
	policy := DefaultCachePolicy()
	require.Equal(t, policy.TakenTTL, policy.MaxTTL())

	policy.ErrorTTL = 48 * time.Hour
	require.Equal(t, policy.ErrorTTL, policy.MaxTTL())
}

func TestResultGeneratesCheckID(t *testing.T) {
	first := result(core.SignalKindDNS, core.SignalUnknown, "", nil)
	second := result(core.SignalKindDNS, core.SignalUnknown, "", nil)
	require.NotEmpty(t, first.CheckID)
	require.NotEqual(t, first.CheckID, second.CheckID)
}
