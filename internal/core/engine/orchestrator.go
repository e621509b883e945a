// Package engine coordinates probes across domain variations. Each
// domain gets every signal; each name gets every variation; a run gets
// every name in order.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/domainscout/domainscout/internal/core"
)

const (
	defaultWorkers     = 5
	defaultDomainDelay = 500 * time.Millisecond
	defaultNameDelay   = time.Second
)

// Prober is one availability signal source.
type Prober interface {
	Kind() core.SignalKind
	Probe(ctx context.Context, domain string) core.SignalResult
}

// Orchestrator fans domain variations out over a worker pool and
// collects assessments back in generation order.
type Orchestrator struct {
	Probers     []Prober
	Workers     int
	DomainDelay time.Duration
	NameDelay   time.Duration
	Suffixes    []string
	Extensions  []string
	Logger      *zap.Logger

	// OnAssessment is called from the orchestrating goroutine after
	// each domain completes, for progress reporting.
	OnAssessment func(*core.Assessment)

	Clock func() time.Time
}

// AssessDomain runs every probe against one domain and aggregates the
// signals. A panic inside a probe fails that domain only.
func (o *Orchestrator) AssessDomain(ctx context.Context, domain string, ordinal int) (assessment *core.Assessment) {
	defer func() {
		if r := recover(); r != nil {
			o.logger().Warn("domain check panicked",
				zap.String("domain", domain),
				zap.Any("panic", r))
			assessment = core.FailedAssessment(domain, ordinal, fmt.Sprintf("check panicked: %v", r), o.now())
		}
	}()

	signals := make([]core.SignalResult, 0, len(o.Probers))
	for _, prober := range o.Probers {
		if ctx.Err() != nil {
			return core.FailedAssessment(domain, ordinal, "check cancelled", o.now())
		}
		signals = append(signals, prober.Probe(ctx, domain))
	}

	return core.Aggregate(domain, ordinal, signals, o.now())
}

type domainJob struct {
	ordinal int
	domain  string
}

// AssessName expands a candidate name into its variations, assesses
// them concurrently, and builds the per-name report. Results slot into
// the report in generation order regardless of completion order; the
// courtesy delay between completions runs on the orchestrating
// goroutine, not inside workers.
func (o *Orchestrator) AssessName(ctx context.Context, name string) *core.NameReport {
	variations := core.Variations(name, o.suffixes(), o.extensions())
	assessments := make([]*core.Assessment, len(variations))

	jobs := make(chan domainJob)
	completed := make(chan *core.Assessment)

	var wg sync.WaitGroup
	workers := o.workerCount()
	if workers > len(variations) {
		workers = len(variations)
	}

	worker := func() {
		defer wg.Done()
		for job := range jobs {
			if ctx.Err() != nil {
				return
			}
			select {
			case completed <- o.AssessDomain(ctx, job.domain, job.ordinal):
			case <-ctx.Done():
				return
			}
		}
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker()
	}

	go func() {
	sendLoop:
		for i, domain := range variations {
			select {
			case <-ctx.Done():
				break sendLoop
			case jobs <- domainJob{ordinal: i, domain: domain}:
			}
		}
		close(jobs)
		wg.Wait()
		close(completed)
	}()

	for assessment := range completed {
		assessments[assessment.Ordinal] = assessment
		o.logger().Debug("domain assessed",
			zap.String("domain", assessment.Domain),
			zap.String("confidence", string(assessment.Confidence)),
			zap.Int("score", assessment.ScoreValue()))
		if o.OnAssessment != nil {
			o.OnAssessment(assessment)
		}
		o.pause(ctx, o.domainDelay())
	}

	for i, assessment := range assessments {
		if assessment == nil {
			assessments[i] = core.FailedAssessment(variations[i], i, "check cancelled", o.now())
		}
	}

	return core.BuildNameReport(name, assessments, o.now())
}

// Run assesses every candidate name in order and ranks the results.
// Names run sequentially so the per-name courtesy delay holds.
func (o *Orchestrator) Run(ctx context.Context, names []string) *core.RunSummary {
	startedAt := o.now()
	reports := make([]*core.NameReport, 0, len(names))

	for i, name := range names {
		if ctx.Err() != nil {
			break
		}
		o.logger().Info("checking name",
			zap.String("name", name),
			zap.Int("position", i+1),
			zap.Int("total", len(names)))

		report := o.AssessName(ctx, name)
		reports = append(reports, report)

		o.logger().Info("name checked",
			zap.String("name", name),
			zap.Int("available", report.Available),
			zap.String("best_com", report.BestCom))

		if i < len(names)-1 {
			o.pause(ctx, o.nameDelay())
		}
	}

	return core.BuildRunSummary(startedAt, reports, o.now())
}

func (o *Orchestrator) pause(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (o *Orchestrator) workerCount() int {
	if o != nil && o.Workers > 0 {
		return o.Workers
	}
	return defaultWorkers
}

func (o *Orchestrator) domainDelay() time.Duration {
	if o != nil && o.DomainDelay > 0 {
		return o.DomainDelay
	}
	return defaultDomainDelay
}

func (o *Orchestrator) nameDelay() time.Duration {
	if o != nil && o.NameDelay > 0 {
		return o.NameDelay
	}
	return defaultNameDelay
}

func (o *Orchestrator) suffixes() []string {
	if o != nil && len(o.Suffixes) > 0 {
		return o.Suffixes
	}
	return core.DefaultSuffixes
}

func (o *Orchestrator) extensions() []string {
	if o != nil && len(o.Extensions) > 0 {
		return o.Extensions
	}
	return core.DefaultExtensions
}

func (o *Orchestrator) logger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o *Orchestrator) now() time.Time {
	if o != nil && o.Clock != nil {
		return o.Clock()
	}
	return time.Now().UTC()
}
