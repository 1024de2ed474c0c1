package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
	"github.com/miekg/dns"
)

const (
	dnsQueries = 3
	dnsTimeout = 3 * time.Second
)

// dnsProbe resolves a name against a fixed server.
type dnsProbe struct {
	server  string
	name    string
	queries int
	client  *dns.Client
}

func newDNSProbe(env Environment) (Probe, error) {
	if env.Config == nil || env.Config.DNSServer == "" || env.Config.DNSName == "" {
		return nil, fmt.Errorf("DNS_SERVER or DNS_NAME not set: %w", ErrUnavailable)
	}

	return &dnsProbe{
		server:  env.Config.DNSServer,
		name:    env.Config.DNSName,
		queries: dnsQueries,
		client:  &dns.Client{Timeout: dnsTimeout},
	}, nil
}

func (p *dnsProbe) ID() string { return catalog.ProbeDNSLookup }

func (p *dnsProbe) Run(ctx context.Context) error {
	for i := 0; i < p.queries; i++ {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(p.name), dns.TypeA)
		msg.RecursionDesired = true

		resp, _, err := p.client.ExchangeContext(ctx, msg, p.server)
		if err != nil {
			return fmt.Errorf("dns A %s: %w", p.name, err)
		}

		if resp.Rcode != dns.RcodeSuccess {
			return fmt.Errorf("dns A %s: rcode %s", p.name, dns.RcodeToString[resp.Rcode])
		}
	}

	return nil
}

// httpProbe fetches a URL and drains the body.
type httpProbe struct {
	url    string
	client *http.Client
}

func newHTTPProbe(env Environment) (Probe, error) {
	if env.Config == nil || env.Config.HTTPProbeURL == "" {
		return nil, fmt.Errorf("HTTP_PROBE_URL not set: %w", ErrUnavailable)
	}

	return &httpProbe{
		url:    env.Config.HTTPProbeURL,
		client: &http.Client{},
	}, nil
}

func (p *httpProbe) ID() string { return catalog.ProbeHTTPGet }

func (p *httpProbe) Run(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, http.NoBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", p.url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("fetching %s: unexpected status %d", p.url, resp.StatusCode)
	}

	return nil
}
