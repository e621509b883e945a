package probe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/domainscout/domainscout/internal/core"
)

const (
	whoisIanaServer = "whois.iana.org"
	whoisPort       = "43"
	whoisMaxBytes   = 128 * 1024
	whoisEndpoint   = "whois"
)

// WhoisClient performs WHOIS lookups.
type WhoisClient interface {
	Lookup(ctx context.Context, tld, domain string) (*WhoisResponse, error)
}

// WhoisResponse contains WHOIS response data.
type WhoisResponse struct {
	Server string
	Body   string
}

// DefaultWhoisClient is a TCP WHOIS client with optional server overrides.
type DefaultWhoisClient struct {
	Servers map[string]string
	Timeout time.Duration
}

// Lookup queries the WHOIS server for the domain's TLD.
func (c *DefaultWhoisClient) Lookup(ctx context.Context, tld, domain string) (*WhoisResponse, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, errors.New("whois domain is required")
	}

	server, err := c.ResolveServer(ctx, tld)
	if err != nil {
		return nil, err
	}

	body, err := queryWhois(ctx, server, domain, c.Timeout)
	if err != nil {
		return nil, err
	}

	return &WhoisResponse{Server: server, Body: body}, nil
}

// ResolveServer resolves the WHOIS server for a TLD, consulting the
// override map before asking IANA for a referral.
func (c *DefaultWhoisClient) ResolveServer(ctx context.Context, tld string) (string, error) {
	tld = strings.ToLower(strings.TrimSpace(tld))
	if tld == "" {
		return "", errors.New("whois tld is required")
	}
	if c != nil && len(c.Servers) > 0 {
		if server := strings.TrimSpace(c.Servers[tld]); server != "" {
			return server, nil
		}
	}

	response, err := queryWhois(ctx, whoisIanaServer, tld, c.Timeout)
	if err != nil {
		return "", fmt.Errorf("whois iana query failed: %w", err)
	}

	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "refer:") || strings.HasPrefix(lower, "whois:") {
			parts := strings.SplitN(trimmed, ":", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1]), nil
			}
		}
	}

	return "", fmt.Errorf("no whois server for tld %s", tld)
}

func queryWhois(ctx context.Context, server, query string, timeout time.Duration) (string, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return "", errors.New("whois server is required")
	}

	dialer := &net.Dialer{}
	if timeout > 0 {
		dialer.Timeout = timeout
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(server, whoisPort))
	if err != nil {
		return "", fmt.Errorf("whois dial failed: %w", err)
	}
	defer conn.Close() // nolint:errcheck // best-effort cleanup on network connection

	if timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(timeout))
	}

	if _, err := fmt.Fprintf(conn, "%s\r\n", query); err != nil {
		return "", fmt.Errorf("whois query failed: %w", err)
	}

	reader := bufio.NewReader(conn)
	limited := &io.LimitedReader{R: reader, N: whoisMaxBytes}
	body, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("whois read failed: %w", err)
	}

	return string(body), nil
}

// Limiter gates outbound queries and remembers when an endpoint
// pushed back.
type Limiter interface {
	Allow(ctx context.Context, endpoint string) (bool, error)
	Record(ctx context.Context, endpoint string) error
	RecordBackoff(ctx context.Context, endpoint string, retryAfter time.Duration) error
}

// WhoisPatterns provides match strings for availability parsing.
type WhoisPatterns struct {
	Available []string
	Taken     []string
}

// DefaultWhoisPatterns covers the registry phrasings seen across the
// major gTLD and ccTLD servers.
func DefaultWhoisPatterns() WhoisPatterns {
	return WhoisPatterns{
		Available: []string{"no match", "not found", "no data found", "no entries found", "status: free"},
		Taken:     []string{"domain name:", "status: active", "registration status:", "created on"},
	}
}

var whoisCreationRe = regexp.MustCompile(`(?im)^\s*(?:creation date|created|registered on|registration date)\s*:\s*(.+)$`)

// WhoisProber asks the registry of record whether a domain has an
// entry. A registry that reports no match is the authoritative vote
// for availability.
type WhoisProber struct {
	Client   WhoisClient
	Patterns WhoisPatterns
	Limiter  Limiter
	Clock    func() time.Time
}

// NewWhoisProber returns a prober backed by the default TCP client.
func NewWhoisProber(servers map[string]string, timeout time.Duration, limiter Limiter) *WhoisProber {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WhoisProber{
		Client:   &DefaultWhoisClient{Servers: servers, Timeout: timeout},
		Patterns: DefaultWhoisPatterns(),
		Limiter:  limiter,
	}
}

func (p *WhoisProber) Kind() core.SignalKind {
	return core.SignalKindWhois
}

func (p *WhoisProber) Probe(ctx context.Context, domain string) core.SignalResult {
	if p == nil || p.Client == nil {
		return result(core.SignalKindWhois, core.SignalUnknown, "whois client not configured", nil)
	}

	if p.Limiter != nil {
		allowed, err := p.Limiter.Allow(ctx, whoisEndpoint)
		if err == nil && !allowed {
			return result(core.SignalKindWhois, core.SignalUnknown, "whois rate limit reached", p.Clock)
		}
	}

	tld := domainTLD(domain)
	response, err := p.Client.Lookup(ctx, tld, domain)
	if p.Limiter != nil {
		// nolint:errcheck // best-effort usage accounting
		p.Limiter.Record(ctx, whoisEndpoint)
	}
	if err != nil {
		return result(core.SignalKindWhois, core.SignalUnknown, fmt.Sprintf("whois lookup failed: %v", err), p.Clock)
	}

	signal, reason := interpretWhois(response.Body, p.Patterns)
	return result(core.SignalKindWhois, signal, reason, p.Clock)
}

// interpretWhois maps a registry response body to a tri-state signal.
// Availability phrasings win over taken markers because several
// registries echo the queried name back even when no record exists.
func interpretWhois(body string, patterns WhoisPatterns) (core.Signal, string) {
	lower := strings.ToLower(body)
	for _, pattern := range patterns.Available {
		if pattern == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return core.SignalDoesNotExist, "whois reports no record"
		}
	}

	if match := whoisCreationRe.FindStringSubmatch(body); match != nil {
		return core.SignalExists, fmt.Sprintf("registered (created %s)", strings.TrimSpace(match[1]))
	}

	for _, pattern := range patterns.Taken {
		if pattern == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return core.SignalExists, "whois record found"
		}
	}

	// A body with no registration markers at all is a record-free
	// response; only transport failures produce Unknown.
	return core.SignalDoesNotExist, "no whois record"
}

func domainTLD(domain string) string {
	if idx := strings.LastIndex(domain, "."); idx >= 0 {
		return domain[idx+1:]
	}
	return domain
}
