package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fetcher_IP4(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	responses := map[string]*http.Response{}
	client := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			response, ok := responses[r.URL.String()]
			require.True(t, ok, "unexpected url %s", r.URL)
			return response, nil
		}),
	}
	ok := func(body string) *http.Response {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
		}
	}

	fetcher := &Fetcher{
		client:  client,
		timeout: time.Hour,
		ring:    newRing([]Provider{Ipify, Wtfismyip, Provider("url:https://c.example.com")}),
	}

	responses["https://api.ipify.org"] = ok("1.1.1.1")
	ip, err := fetcher.IP4(ctx)
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("1.1.1.1"), ip)

	responses["https://ipv4.wtfismyip.com/text"] = &http.Response{
		StatusCode: http.StatusForbidden,
		Body:       io.NopCloser(bytes.NewBufferString("")),
	}
	_, err = fetcher.IP4(ctx)
	require.ErrorIs(t, err, ErrBanned)
	assert.Equal(t, "403 (Forbidden)", fetcher.ring.entries[1].banReason)

	responses["https://c.example.com"] = ok("3.3.3.3")
	ip, err = fetcher.IP4(ctx)
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("3.3.3.3"), ip)

	// Back to the first service, then the banned one is skipped.
	responses["https://api.ipify.org"] = ok("1.1.1.1")
	_, err = fetcher.IP4(ctx)
	require.NoError(t, err)
	responses["https://c.example.com"] = ok("3.3.3.3")
	ip, err = fetcher.IP4(ctx)
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("3.3.3.3"), ip)
}

func Test_Fetcher_IP4_allBanned(t *testing.T) {
	t.Parallel()

	fetcher := &Fetcher{
		ring: newRing([]Provider{Ipify, Seeip}),
	}
	fetcher.ring.ban(0, "429 (Too Many Requests)")
	fetcher.ring.ban(1, "403 (Forbidden)")

	_, err := fetcher.IP4(context.Background())

	require.ErrorIs(t, err, ErrBanned)
	assert.EqualError(t, err, "we got banned: "+
		"403 (Forbidden) (https://ipv4.seeip.org), "+
		"429 (Too Many Requests) (https://api.ipify.org)")
}

func Test_New(t *testing.T) {
	t.Parallel()

	client := &http.Client{}

	fetcher, err := New(client)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, fetcher.timeout)
	assert.Equal(t, []ringEntry{{url: "https://api.ipify.org"}}, fetcher.ring.entries)

	fetcher, err = New(client, SetProviders(Myexternalip, Ident), SetTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, time.Second, fetcher.timeout)
	assert.Equal(t, []ringEntry{
		{url: "https://ipv4.myexternalip.com/raw"},
		{url: "https://v4.ident.me"},
	}, fetcher.ring.entries)

	_, err = New(client, SetProviders(Provider("invalid")))
	assert.EqualError(t, err, "validating provider: "+
		"unknown public IP echo HTTP provider: invalid")
}
