package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"sync/atomic"

	"github.com/qdm12/gandyn/pkg/publicip/dns"
	"github.com/qdm12/gandyn/pkg/publicip/http"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Logger

type ipFetcher interface {
	IP4(ctx context.Context) (ipv4 netip.Addr, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
}

// Fetcher obtains the public IPv4 address, cycling between
// the DNS and HTTP fetchers if both are enabled.
type Fetcher struct {
	fetchers []ipFetcher
	tries    int
	logger   Logger
	// calls counts the lookups made, to alternate between fetchers.
	calls atomic.Uint32
}

var (
	ErrNoFetchTypeSpecified = errors.New("at least one fetcher type must be specified")
	ErrLookup               = errors.New("public IP lookup failed")
)

func NewFetcher(dnsSettings DNSSettings, httpSettings HTTPSettings,
	logger Logger) (f *Fetcher, err error) {
	fetcher := &Fetcher{
		tries:  defaultTries,
		logger: logger,
	}

	if dnsSettings.Enabled {
		subFetcher, err := dns.New(dnsSettings.Options...)
		if err != nil {
			return nil, fmt.Errorf("creating DNS fetcher: %w", err)
		}
		fetcher.fetchers = append(fetcher.fetchers, subFetcher)
	}

	if httpSettings.Enabled {
		subFetcher, err := http.New(httpSettings.Client, httpSettings.Options...)
		if err != nil {
			return nil, fmt.Errorf("creating HTTP fetcher: %w", err)
		}
		fetcher.fetchers = append(fetcher.fetchers, subFetcher)
	}

	if len(fetcher.fetchers) == 0 {
		return nil, ErrNoFetchTypeSpecified
	}

	return fetcher, nil
}

const defaultTries = 3

// IP4 returns the public IPv4 address, trying up to three
// lookups before failing with an error wrapping ErrLookup.
func (f *Fetcher) IP4(ctx context.Context) (ipv4 netip.Addr, err error) {
	errs := make([]error, 0, f.tries)
	for try := 0; try < f.tries; try++ {
		ipv4, err = f.nextFetcher().IP4(ctx)
		if err != nil {
			errs = append(errs, err)
			f.logger.Debug("obtaining ipv4 address failed: try " + strconv.Itoa(try+1) +
				" of " + strconv.Itoa(f.tries) + ": " + err.Error())
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if try > 0 {
			f.logger.Info("obtaining ipv4 address succeeded after " +
				strconv.Itoa(try+1) + " tries")
		}
		return ipv4, nil
	}
	return netip.Addr{}, fmt.Errorf("%w: after %d tries: %w",
		ErrLookup, len(errs), errors.Join(errs...))
}

func (f *Fetcher) nextFetcher() ipFetcher { //nolint:ireturn
	if len(f.fetchers) == 1 {
		return f.fetchers[0]
	}
	n := f.calls.Add(1)
	return f.fetchers[int(n%uint32(len(f.fetchers)))]
}
