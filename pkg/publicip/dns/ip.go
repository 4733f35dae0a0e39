package dns

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"sync/atomic"
)

var ErrIPv4NotFound = errors.New("IP addresses found but no IPv4 address")

// IP4 returns the public IPv4 address reported by the next
// provider of the ring.
func (f *Fetcher) IP4(ctx context.Context) (publicIP netip.Addr, err error) {
	index := int(atomic.AddUint32(f.ring.counter, 1)) % len(f.ring.providers)
	provider := f.ring.providers[index]

	publicIPs, err := fetch(ctx, f.client, provider.data())
	if err != nil {
		return publicIP, fmt.Errorf("querying %s: %w", provider, err)
	}

	for _, ip := range publicIPs {
		ip = ip.Unmap()
		if ip.Is4() {
			return ip, nil
		}
	}
	return publicIP, fmt.Errorf("%w: from %s", ErrIPv4NotFound, provider)
}
