package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/domainscout/domainscout/internal/core"
)

// DNSProber asks whether a domain resolves. An NXDOMAIN answer is the
// strongest cheap hint that a name is unregistered.
type DNSProber struct {
	Resolver *net.Resolver
	Timeout  time.Duration
	Clock    func() time.Time
}

// NewDNSProber returns a prober using the system resolver.
func NewDNSProber(timeout time.Duration) *DNSProber {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &DNSProber{Resolver: net.DefaultResolver, Timeout: timeout}
}

func (p *DNSProber) Kind() core.SignalKind {
	return core.SignalKindDNS
}

func (p *DNSProber) Probe(ctx context.Context, domain string) core.SignalResult {
	if p == nil || p.Resolver == nil {
		return result(core.SignalKindDNS, core.SignalUnknown, "dns resolver not configured", nil)
	}
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	addrs, err := p.Resolver.LookupHost(ctx, domain)
	signal, reason := classifyDNS(addrs, err)
	return result(core.SignalKindDNS, signal, reason, p.Clock)
}

// classifyDNS maps a lookup outcome to a tri-state signal. Only a
// definitive not-found answer votes available; timeouts and server
// failures stay unknown.
func classifyDNS(addrs []string, err error) (core.Signal, string) {
	if err == nil {
		if len(addrs) == 0 {
			return core.SignalExists, "dns zone exists without address records"
		}
		return core.SignalExists, fmt.Sprintf("resolves to %s", addrs[0])
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsNotFound {
			return core.SignalDoesNotExist, "nxdomain"
		}
		if dnsErr.IsTimeout {
			return core.SignalUnknown, "dns lookup timed out"
		}
	}
	return core.SignalUnknown, fmt.Sprintf("dns lookup failed: %v", err)
}
