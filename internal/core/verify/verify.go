// Package verify gives a second opinion on domains that scored well.
// A cheap probe pass can be fooled by stale DNS or a slow registry, so
// the verifier asks the authoritative RDAP service before anyone
// spends money on a name.
package verify

import (
	"context"
	"time"

	"github.com/openrdap/rdap"

	"github.com/domainscout/domainscout/internal/core"
	"github.com/domainscout/domainscout/internal/core/probe"
)

// Status is the verified registration state of a domain.
type Status string

const (
	StatusAvailable        Status = "available"
	StatusRegisteredParked Status = "registered-parked"
	StatusRegisteredActive Status = "registered-active"
	StatusUnknown          Status = "unknown"
)

// Verification is the outcome of verifying one domain.
type Verification struct {
	Domain    string    `json:"domain"`
	Status    Status    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Confirmed reports whether the domain verified as available.
func (v Verification) Confirmed() bool {
	return v.Status == StatusAvailable
}

// Verifier cross-checks candidate domains against RDAP and, for
// registered names, uses DNS and HTTP to tell a parked page from an
// active site.
type Verifier struct {
	Client *rdap.Client
	DNS    probe.Prober
	HTTP   probe.Prober
	Clock  func() time.Time
}

// NewVerifier returns a verifier with live RDAP, DNS, and HTTP probes.
func NewVerifier(timeout time.Duration) *Verifier {
	return &Verifier{
		Client: &rdap.Client{},
		DNS:    probe.NewDNSProber(timeout),
		HTTP:   probe.NewHTTPProber(timeout),
	}
}

// Verify checks one domain against the registry of record.
func (v *Verifier) Verify(ctx context.Context, domain string) Verification {
	verification := Verification{
		Domain:    domain,
		Status:    StatusUnknown,
		CheckedAt: v.now(),
	}

	client := v.Client
	if client == nil {
		client = &rdap.Client{}
	}

	req := rdap.NewDomainRequest(domain).WithContext(ctx)
	resp, err := client.Do(req)
	if err != nil {
		if isNotFound(err) {
			verification.Status = StatusAvailable
			verification.Detail = "rdap reports no registration"
			return verification
		}
		verification.Detail = "rdap lookup failed: " + err.Error()
		return verification
	}

	if _, ok := resp.Object.(*rdap.Domain); !ok {
		verification.Detail = "unexpected rdap response"
		return verification
	}

	verification.Status, verification.Detail = v.classifyRegistered(ctx, domain)
	verification.CheckedAt = v.now()
	return verification
}

// VerifyAll verifies domains in order, one RDAP query at a time.
func (v *Verifier) VerifyAll(ctx context.Context, domains []string, delay time.Duration) []Verification {
	verifications := make([]Verification, 0, len(domains))
	for i, domain := range domains {
		if ctx.Err() != nil {
			break
		}
		verifications = append(verifications, v.Verify(ctx, domain))
		if delay > 0 && i < len(domains)-1 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
			case <-timer.C:
			}
			timer.Stop()
		}
	}
	return verifications
}

// classifyRegistered splits a registered domain into parked or active
// by whether anything answers on the web.
func (v *Verifier) classifyRegistered(ctx context.Context, domain string) (Status, string) {
	if v.HTTP == nil {
		return StatusRegisteredParked, "registered, web status not checked"
	}

	httpResult := v.HTTP.Probe(ctx, domain)
	if httpResult.Signal == core.SignalExists {
		return StatusRegisteredActive, "registered with " + httpResult.Reason
	}

	if v.DNS != nil {
		dnsResult := v.DNS.Probe(ctx, domain)
		if dnsResult.Signal == core.SignalExists {
			return StatusRegisteredParked, "registered, resolves but serves nothing"
		}
	}

	return StatusRegisteredParked, "registered without a reachable site"
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	clientErr, ok := err.(*rdap.ClientError)
	if !ok {
		return false
	}
	return clientErr.Type == rdap.ObjectDoesNotExist
}

func (v *Verifier) now() time.Time {
	if v != nil && v.Clock != nil {
		return v.Clock()
	}
	return time.Now().UTC()
}
