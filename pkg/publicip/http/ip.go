package http

import (
	"context"
	"errors"
	"net/netip"
	"strings"
)

// IP4 returns the public IPv4 address from the next non banned
// service of the ring.
func (f *Fetcher) IP4(ctx context.Context) (publicIP netip.Addr, err error) {
	index, url, err := f.ring.next()
	if err != nil {
		return publicIP, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	publicIP, err = fetch(ctx, f.client, url)
	if errors.Is(err, ErrBanned) {
		f.ring.ban(index, strings.TrimPrefix(err.Error(), ErrBanned.Error()+": "))
	}
	return publicIP, err
}
