package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/domainscout/domainscout/internal/core"
)

type stubProber struct {
	kind    core.SignalKind
	signals map[string]core.Signal
	panicOn string

	mu   sync.Mutex
	seen []string
}

func (s *stubProber) Kind() core.SignalKind {
	return s.kind
}

func (s *stubProber) Probe(ctx context.Context, domain string) core.SignalResult {
	s.mu.Lock()
	s.seen = append(s.seen, domain)
	s.mu.Unlock()

	if domain == s.panicOn {
		panic("probe exploded")
	}

	signal := core.SignalUnknown
	if s.signals != nil {
		signal = s.signals[domain]
	}
	return core.SignalResult{Kind: s.kind, Signal: signal, CheckedAt: time.Now().UTC()}
}

func fastOrchestrator(probers ...Prober) *Orchestrator {
	return &Orchestrator{
		Probers:     probers,
		Workers:     3,
		DomainDelay: time.Millisecond,
		NameDelay:   time.Millisecond,
		Suffixes:    []string{"", "hq"},
		Extensions:  []string{".com", ".io"},
	}
}

func TestAssessDomainCombinesSignals(t *testing.T) {
	dns := &stubProber{kind: core.SignalKindDNS, signals: map[string]core.Signal{"acme.com": core.SignalDoesNotExist}}
	whois := &stubProber{kind: core.SignalKindWhois, signals: map[string]core.Signal{"acme.com": core.SignalDoesNotExist}}
	http := &stubProber{kind: core.SignalKindHTTP, signals: map[string]core.Signal{"acme.com": core.SignalExists}}

	o := fastOrchestrator(dns, whois, http)
	assessment := o.AssessDomain(context.Background(), "acme.com", 0)

	require.NotNil(t, assessment.Score)
	require.Equal(t, 66, *assessment.Score)
	require.False(t, assessment.IsAvailable())
	require.Len(t, assessment.Signals, 3)
}

func TestAssessDomainPanicBecomesFailure(t *testing.T) {
	dns := &stubProber{kind: core.SignalKindDNS, panicOn: "acme.com"}

	o := fastOrchestrator(dns)
	assessment := o.AssessDomain(context.Background(), "acme.com", 2)

	require.True(t, assessment.Failed)
	require.Contains(t, assessment.FailureReason, "probe exploded")
	require.Equal(t, 2, assessment.Ordinal)
}

func TestAssessNameOrderPreserved(t *testing.T) {
	dns := &stubProber{kind: core.SignalKindDNS, signals: map[string]core.Signal{
		"acme.com":   core.SignalDoesNotExist,
		"acme.io":    core.SignalExists,
		"acmehq.com": core.SignalDoesNotExist,
		"acmehq.io":  core.SignalDoesNotExist,
	}}

	o := fastOrchestrator(dns)
	report := o.AssessName(context.Background(), "acme")

	require.Len(t, report.Assessments, 4)
	domains := make([]string, 0, 4)
	for i, assessment := range report.Assessments {
		require.Equal(t, i, assessment.Ordinal)
		domains = append(domains, assessment.Domain)
	}
	require.Equal(t, []string{"acme.com", "acme.io", "acmehq.com", "acmehq.io"}, domains)
}

func TestAssessNamePanicIsolatedToOneDomain(t *testing.T) {
	dns := &stubProber{
		kind:    core.SignalKindDNS,
		panicOn: "acme.io",
		signals: map[string]core.Signal{
			"acme.com":   core.SignalDoesNotExist,
			"acmehq.com": core.SignalDoesNotExist,
			"acmehq.io":  core.SignalDoesNotExist,
		},
	}

	o := fastOrchestrator(dns)
	report := o.AssessName(context.Background(), "acme")

	require.Equal(t, 1, report.Failures)
	require.Equal(t, 3, report.Checked)
	require.True(t, report.Assessments[1].Failed)
	require.False(t, report.Assessments[0].Failed)
}

func TestAssessNameBestComRanking(t *testing.T) {
	dns := &stubProber{kind: core.SignalKindDNS, signals: map[string]core.Signal{
		"acme.com":   core.SignalExists,
		"acme.io":    core.SignalDoesNotExist,
		"acmehq.com": core.SignalDoesNotExist,
		"acmehq.io":  core.SignalDoesNotExist,
	}}

	o := fastOrchestrator(dns)
	report := o.AssessName(context.Background(), "acme")

	require.Equal(t, "acmehq.com", report.BestCom)
	require.ElementsMatch(t, []string{"acme.io", "acmehq.io"}, report.Alternatives)
}

func TestRunRanksNames(t *testing.T) {
	dns := &stubProber{kind: core.SignalKindDNS, signals: map[string]core.Signal{
		"alpha.com":   core.SignalDoesNotExist,
		"alpha.io":    core.SignalDoesNotExist,
		"alphahq.com": core.SignalDoesNotExist,
		"alphahq.io":  core.SignalDoesNotExist,
		"beta.com":    core.SignalDoesNotExist,
	}}

	o := fastOrchestrator(dns)
	summary := o.Run(context.Background(), []string{"alpha", "beta"})

	require.Equal(t, 2, summary.NamesChecked)
	require.Equal(t, 2, summary.ComAvailable)
	require.Equal(t, "alpha", summary.Opportunities[0].Name)
	require.Equal(t, "alpha.com", summary.Opportunities[0].BestCom)
}

func TestRunProgressCallback(t *testing.T) {
	dns := &stubProber{kind: core.SignalKindDNS}

	var mu sync.Mutex
	count := 0

	o := fastOrchestrator(dns)
	o.OnAssessment = func(a *core.Assessment) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	o.Run(context.Background(), []string{"alpha"})

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 4, count)
}

func TestRunCancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dns := &stubProber{kind: core.SignalKindDNS}
	o := fastOrchestrator(dns)

	summary := o.Run(ctx, []string{"alpha", "beta"})
	require.Empty(t, summary.Names)
}
