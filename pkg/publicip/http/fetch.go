package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"

	"github.com/qdm12/gandyn/pkg/ipextract"
)

var (
	ErrBanned             = errors.New("we got banned")
	ErrHTTPStatusNotValid = errors.New("HTTP status is not valid")
	ErrNoIPFound          = errors.New("no IPv4 address found")
)

func fetch(ctx context.Context, client *http.Client, url string) (
	publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return publicIP, err
	}

	response, err := client.Do(request)
	if err != nil {
		return publicIP, err
	}
	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusTooManyRequests:
		return publicIP, fmt.Errorf("%w: %d (%s)", ErrBanned,
			response.StatusCode, http.StatusText(response.StatusCode))
	default:
		return publicIP, fmt.Errorf("%w: %d from %q", ErrHTTPStatusNotValid,
			response.StatusCode, url)
	}

	const maxBodySize = 1 << 16
	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		return publicIP, fmt.Errorf("reading response body: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return publicIP, fmt.Errorf("closing response body: %w", err)
	}

	publicIP, ok := ipextract.FirstIPv4(string(b))
	if !ok {
		return publicIP, fmt.Errorf("%w: from %q", ErrNoIPFound, url)
	}
	return publicIP, nil
}
