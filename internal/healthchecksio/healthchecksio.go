package healthchecksio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client pings a healthchecks.io check at the end of each update cycle.
// With an empty uuid, pings are not sent.
type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
}

func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		uuid:       uuid,
	}
}

// State is the ping endpoint suffix signaling the cycle state.
type State string

const (
	Ok   State = ""
	Fail State = "fail"
)

var ErrStatusCode = errors.New("bad status code")

// maxReportLength is the number of bytes healthchecks.io
// keeps from a ping request body.
const maxReportLength = 100_000

// Ping signals the state given, attaching the report as
// the ping body which is shown in the check event log.
func (c *Client) Ping(ctx context.Context, state State, report string) (err error) {
	if c.uuid == "" {
		return nil
	}

	url := c.baseURL + "/" + c.uuid
	if state != Ok {
		url += "/" + string(state)
	}

	if len(report) > maxReportLength {
		report = report[:maxReportLength]
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(report))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Content-Type", "text/plain; charset=utf-8")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing ping request: %w", err)
	}
	defer response.Body.Close()

	_, _ = io.Copy(io.Discard, response.Body)

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrStatusCode, response.Status)
	}
	return nil
}
