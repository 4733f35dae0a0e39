package dns

import (
	"errors"
	"fmt"

	"github.com/miekg/dns"
)

type Provider string

const (
	Cloudflare Provider = "cloudflare"
	OpenDNS    Provider = "opendns"
)

func ListProviders() []Provider {
	return []Provider{
		Cloudflare,
		OpenDNS,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo DNS provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type providerData struct {
	// Address is the DNS over TLS server hostname,
	// also used as the TLS server name.
	Address string
	fqdn    string
	class   uint16
	qType   uint16
}

func (p Provider) data() providerData {
	// Google is not listed since only ns1.google.com echoes the
	// client address and it does not support DNS over TLS.
	switch p {
	case Cloudflare:
		return providerData{
			Address: "1dot1dot1dot1.cloudflare-dns.com",
			fqdn:    "whoami.cloudflare.",
			class:   dns.ClassCHAOS,
			qType:   dns.TypeTXT,
		}
	case OpenDNS:
		return providerData{
			Address: "dns.opendns.com",
			fqdn:    "myip.opendns.com.",
			class:   dns.ClassINET,
			qType:   dns.TypeA,
		}
	}
	panic(`provider unknown: "` + string(p) + `"`)
}
