package probe

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/domainscout/domainscout/internal/core"
)

const httpEndpoint = "http"

// HTTPProber checks whether anything answers on the web for a domain.
// No response on either scheme is treated as a vote for availability;
// a registered domain almost always serves something, even if only a
// parking page.
type HTTPProber struct {
	Client   *http.Client
	Timeout  time.Duration
	Clock    func() time.Time
	BaseURLs []string
	Limiter  Limiter
}

// NewHTTPProber returns a prober that tries HTTPS first and falls
// back to plain HTTP.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProber{
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

func (p *HTTPProber) Kind() core.SignalKind {
	return core.SignalKindHTTP
}

func (p *HTTPProber) Probe(ctx context.Context, domain string) core.SignalResult {
	if p == nil || p.Client == nil {
		return result(core.SignalKindHTTP, core.SignalUnknown, "http client not configured", nil)
	}

	if p.Limiter != nil {
		allowed, err := p.Limiter.Allow(ctx, httpEndpoint)
		if err == nil && !allowed {
			return result(core.SignalKindHTTP, core.SignalUnknown, "http rate limit reached", p.Clock)
		}
	}

	urls := p.BaseURLs
	if len(urls) == 0 {
		urls = []string{"https://" + domain, "http://" + domain}
	}

	for _, url := range urls {
		if p.Limiter != nil {
			// nolint:errcheck // best-effort usage accounting
			p.Limiter.Record(ctx, httpEndpoint)
		}
		status, wait, err := p.fetch(ctx, url)
		if err != nil {
			continue
		}
		if status == http.StatusTooManyRequests && p.Limiter != nil && wait > 0 {
			// nolint:errcheck // best-effort backoff bookkeeping
			p.Limiter.RecordBackoff(ctx, httpEndpoint, wait)
		}
		signal, reason := classifyStatus(status)
		return result(core.SignalKindHTTP, signal, reason, p.Clock)
	}

	return result(core.SignalKindHTTP, core.SignalDoesNotExist, "no http response", p.Clock)
}

func (p *HTTPProber) fetch(ctx context.Context, url string) (int, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on response body

	return resp.StatusCode, retryAfterHeader(resp), nil
}

// retryAfterHeader parses a Retry-After header, in either delta-seconds
// or HTTP-date form.
func retryAfterHeader(resp *http.Response) time.Duration {
	if resp == nil || resp.Header == nil {
		return 0
	}

	retry := resp.Header.Get("Retry-After")
	if retry == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retry); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if parsed, err := http.ParseTime(retry); err == nil {
		return time.Until(parsed)
	}

	return 0
}

// classifyStatus maps a response status to a signal. Any server that
// answers at all implies the domain is in use; only a clean 404 with
// no site behind it counts against that.
func classifyStatus(status int) (core.Signal, string) {
	switch {
	case status == http.StatusOK:
		return core.SignalExists, "website responding"
	case status == http.StatusNotFound:
		return core.SignalDoesNotExist, "server answered with 404"
	default:
		return core.SignalExists, fmt.Sprintf("server answered with status %d", status)
	}
}
