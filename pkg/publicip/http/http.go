package http

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fetcher obtains the public IPv4 address from HTTP echo services,
// moving to the next service of the ring at each call.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	ring    *ring
}

func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client:  client,
		timeout: settings.timeout,
		ring:    newRing(settings.providers),
	}, nil
}

// ring cycles through echo service URLs, skipping the services
// which banned us. It is safe for concurrent use.
type ring struct {
	mutex   sync.Mutex
	last    int
	entries []ringEntry
}

type ringEntry struct {
	url string
	// banReason is set once the service refused to answer us.
	banReason string
}

func newRing(providers []Provider) *ring {
	entries := make([]ringEntry, len(providers))
	for i, provider := range providers {
		entries[i].url = provider.url()
	}
	return &ring{
		last:    -1,
		entries: entries,
	}
}

// next returns the index and URL of the next service not banned.
func (r *ring) next() (index int, url string, err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for range r.entries {
		r.last = (r.last + 1) % len(r.entries)
		entry := r.entries[r.last]
		if entry.banReason == "" {
			return r.last, entry.url, nil
		}
	}
	return 0, "", fmt.Errorf("%w: %s", ErrBanned, r.bansString())
}

func (r *ring) ban(index int, reason string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.entries[index].banReason = reason
}

func (r *ring) bansString() string {
	parts := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		if entry.banReason != "" {
			parts = append(parts, entry.banReason+" ("+entry.url+")")
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
