package dns

import (
	"github.com/miekg/dns"
)

// Fetcher obtains the public IPv4 address using DNS over TLS
// queries to echo name servers, cycling through them.
type Fetcher struct {
	ring   ring
	client Client
}

type ring struct {
	// counter is used to get an index in the providers slice
	counter   *uint32 // 32 bit for 32 bit systems
	providers []Provider
}

func New(options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		ring: ring{
			counter:   new(uint32),
			providers: settings.providers,
		},
		client: &dns.Client{
			Net:     "tcp4-tls",
			Timeout: settings.timeout,
		},
	}, nil
}
