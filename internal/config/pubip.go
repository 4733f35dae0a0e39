package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/qdm12/gandyn/pkg/publicip/dns"
	"github.com/qdm12/gandyn/pkg/publicip/http"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

const all = "all"

type PubIP struct {
	Fetchers      []string
	HTTPProviders []string
	DNSProviders  []string
	DNSTimeout    time.Duration
}

func (p *PubIP) setDefaults() {
	p.Fetchers = gosettings.DefaultSlice(p.Fetchers, []string{all})
	p.HTTPProviders = gosettings.DefaultSlice(p.HTTPProviders, []string{string(http.Ipify)})
	p.DNSProviders = gosettings.DefaultSlice(p.DNSProviders, []string{all})
	const defaultDNSTimeout = 3 * time.Second
	p.DNSTimeout = gosettings.DefaultComparable(p.DNSTimeout, defaultDNSTimeout)
}

func (p PubIP) Validate() (err error) {
	err = validate.AreAllOneOf(p.Fetchers, []string{all, "http", "dns"})
	if err != nil {
		return fmt.Errorf("fetchers: %w", err)
	}

	if p.HTTPEnabled() {
		for _, provider := range p.HTTPProviders {
			err = http.ValidateProvider(http.Provider(provider))
			if err != nil {
				return fmt.Errorf("HTTP providers: %w", err)
			}
		}
	}

	if p.DNSEnabled() {
		err = p.validateDNSProviders()
		if err != nil {
			return fmt.Errorf("DNS providers: %w", err)
		}
	}

	return nil
}

func (p PubIP) validateDNSProviders() (err error) {
	for _, provider := range p.DNSProviders {
		if provider == all {
			continue
		}
		err = dns.ValidateProvider(dns.Provider(provider))
		if err != nil {
			return err
		}
	}
	return nil
}

func (p PubIP) HTTPEnabled() bool {
	return p.fetcherEnabled("http")
}

func (p PubIP) DNSEnabled() bool {
	return p.fetcherEnabled("dns")
}

func (p PubIP) fetcherEnabled(name string) bool {
	for _, fetcher := range p.Fetchers {
		if fetcher == all || fetcher == name {
			return true
		}
	}
	return false
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() (node *gotree.Node) {
	node = gotree.New("Public IP fetching")

	node.Appendf("HTTP enabled: %s", yesNo(p.HTTPEnabled()))
	if p.HTTPEnabled() {
		childNode := node.Appendf("HTTP providers")
		for _, provider := range p.HTTPProviders {
			childNode.Appendf(provider)
		}
	}

	node.Appendf("DNS enabled: %s", yesNo(p.DNSEnabled()))
	if p.DNSEnabled() {
		node.Appendf("DNS timeout: %s", p.DNSTimeout)
		childNode := node.Appendf("DNS over TLS providers")
		for _, provider := range p.DNSProviders {
			childNode.Appendf(provider)
		}
	}

	return node
}

// ToHTTPOptions assumes the settings have been validated.
func (p PubIP) ToHTTPOptions(timeout time.Duration) (options []http.Option) {
	providers := p.httpProviders()
	return []http.Option{
		http.SetProviders(providers[0], providers[1:]...),
		http.SetTimeout(timeout),
	}
}

func (p PubIP) httpProviders() (providers []http.Provider) {
	providers = make([]http.Provider, len(p.HTTPProviders))
	for i, provider := range p.HTTPProviders {
		if !strings.HasPrefix(provider, "url:") {
			providers[i] = http.Provider(provider)
			continue
		}
		// URL already parsed once by Validate.
		customURL, _ := url.Parse(strings.TrimPrefix(provider, "url:"))
		providers[i] = http.CustomProvider(customURL)
	}
	return providers
}

// ToDNSOptions assumes the settings have been validated.
func (p PubIP) ToDNSOptions() (options []dns.Option) {
	var providers []dns.Provider
	for _, provider := range p.DNSProviders {
		if provider == all {
			providers = dns.ListProviders()
			break
		}
		providers = append(providers, dns.Provider(provider))
	}
	return []dns.Option{
		dns.SetProviders(providers[0], providers[1:]...),
		dns.SetTimeout(p.DNSTimeout),
	}
}

func (p *PubIP) read(r *reader.Reader) (err error) {
	p.Fetchers = r.CSV("PUBLICIP_FETCHERS", reader.ForceLowercase(true))

	// Custom provider URLs keep their case.
	p.HTTPProviders = r.CSV("PUBLICIP_HTTP_PROVIDERS", reader.ForceLowercase(false))
	for i, provider := range p.HTTPProviders {
		if !strings.HasPrefix(provider, "url:") {
			p.HTTPProviders[i] = strings.ToLower(provider)
		}
	}

	p.DNSProviders = r.CSV("PUBLICIP_DNS_PROVIDERS", reader.ForceLowercase(true))

	p.DNSTimeout, err = r.Duration("PUBLICIP_DNS_TIMEOUT")
	if err != nil {
		return err
	}

	return nil
}

func yesNo(b bool) string {
	return gosettings.BoolToYesNo(&b)
}
