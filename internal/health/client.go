package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

func IsClientMode(args []string) bool {
	return len(args) > 1 && args[1] == "healthcheck"
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

var ErrUnhealthy = errors.New("unhealthy")

// Query sends an HTTP request to the other instance of
// the program listening on the address given.
func (c *Client) Query(ctx context.Context, address string) (err error) {
	url := "http://" + address
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("querying health server: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: reading body: %w", ErrUnhealthy, response.Status, err)
	}
	return fmt.Errorf("%w: %s", ErrUnhealthy, strings.TrimSpace(string(b)))
}
