package gandi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/qdm12/gandyn/internal/models"
)

// DefaultURL is the Gandi XML-RPC API endpoint.
const DefaultURL = "https://rpc.gandi.net/xmlrpc/"

// Client is a stateless client for the Gandi XML-RPC domain zone API.
// Each method maps to a single remote procedure call and is never retried.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

type Settings struct {
	// HTTPClient is the HTTP client to use and cannot be nil.
	HTTPClient *http.Client
	// URL defaults to DefaultURL if left empty.
	URL    string
	APIKey string
	// Logger, if not nil, is used to log each HTTP request
	// and response at the debug level, with the API key redacted.
	Logger DebugLogger
}

func New(settings Settings) *Client {
	url := settings.URL
	if url == "" {
		url = DefaultURL
	}
	httpClient := settings.HTTPClient
	if settings.Logger != nil {
		httpClient = makeLogClient(httpClient, settings.Logger, settings.APIKey)
	}
	return &Client{
		httpClient: httpClient,
		url:        url,
		apiKey:     settings.APIKey,
	}
}

// ZoneID returns the identifier of the zone used by the domain given.
func (c *Client) ZoneID(ctx context.Context, domain string) (zoneID models.ZoneID, err error) {
	const method = "domain.info"
	result, err := c.call(ctx, method, domain)
	if err != nil {
		return 0, err
	}

	members, err := result.toStruct()
	if err != nil {
		return 0, wrapFault(method, err)
	}

	zoneIDValue, ok := members["zone_id"]
	if !ok {
		return 0, wrapFault(method, fmt.Errorf("%w: for domain %s", ErrZoneIDNotFound, domain))
	}

	id, err := zoneIDValue.toInt()
	if err != nil {
		return 0, wrapFault(method, fmt.Errorf("zone id: %w", err))
	}
	return models.ZoneID(id), nil
}

// ListRecords lists the records matching the filter in the given zone version.
// Use models.ActiveVersion to list records of the active version.
// An empty slice is returned if no record matches the filter.
func (c *Client) ListRecords(ctx context.Context, zoneID models.ZoneID,
	version models.ZoneVersion, filter models.RecordFilter) (
	records []models.Record, err error) {
	const method = "domain.zone.record.list"
	result, err := c.call(ctx, method, int(zoneID), int(version), filterToStruct(filter))
	if err != nil {
		return nil, err
	}

	values, err := result.toArray()
	if err != nil {
		return nil, wrapFault(method, err)
	}

	records = make([]models.Record, len(values))
	for i, v := range values {
		records[i], err = parseRecord(v)
		if err != nil {
			return nil, wrapFault(method, fmt.Errorf("record %d of %d: %w", i+1, len(values), err))
		}
	}
	return records, nil
}

// NewVersion creates a new inactive version of the zone, copied
// from the active version, and returns its version number.
func (c *Client) NewVersion(ctx context.Context, zoneID models.ZoneID) (
	version models.ZoneVersion, err error) {
	const method = "domain.zone.version.new"
	result, err := c.call(ctx, method, int(zoneID))
	if err != nil {
		return 0, err
	}

	n, err := result.toInt()
	if err != nil {
		return 0, wrapFault(method, err)
	}
	return models.ZoneVersion(n), nil
}

// UpdateRecord replaces the fields of the record with the given id
// in the given inactive zone version.
func (c *Client) UpdateRecord(ctx context.Context, zoneID models.ZoneID,
	version models.ZoneVersion, recordID int, fields models.RecordFields) (err error) {
	const method = "domain.zone.record.update"
	recordSelector := map[string]any{"id": recordID}
	_, err = c.call(ctx, method, int(zoneID), int(version),
		recordSelector, fieldsToStruct(fields))
	return err
}

// DeleteVersion deletes the given inactive zone version.
func (c *Client) DeleteVersion(ctx context.Context, zoneID models.ZoneID,
	version models.ZoneVersion) (err error) {
	return c.callBool(ctx, "domain.zone.version.delete", zoneID, version)
}

// ActivateVersion sets the given zone version as the active version.
func (c *Client) ActivateVersion(ctx context.Context, zoneID models.ZoneID,
	version models.ZoneVersion) (err error) {
	return c.callBool(ctx, "domain.zone.version.set", zoneID, version)
}

func (c *Client) callBool(ctx context.Context, method string,
	zoneID models.ZoneID, version models.ZoneVersion) (err error) {
	result, err := c.call(ctx, method, int(zoneID), int(version))
	if err != nil {
		return err
	}

	ok, err := result.toBool()
	if err != nil {
		return wrapFault(method, err)
	} else if !ok {
		return wrapFault(method, fmt.Errorf("%w: for version %d of zone %d",
			ErrOperationRefused, version, zoneID))
	}
	return nil
}

// call sends the remote procedure call with the API key as first
// parameter and returns the single value of the response.
func (c *Client) call(ctx context.Context, method string, params ...any) (
	result value, err error) {
	params = append([]any{c.apiKey}, params...)
	body, err := encodeMethodCall(method, params...)
	if err != nil {
		return result, wrapFault(method, fmt.Errorf("encoding method call: %w", err))
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return result, wrapFault(method, fmt.Errorf("creating http request: %w", err))
	}
	request.Header.Set("Content-Type", "text/xml")
	request.Header.Set("Accept", "text/xml")
	request.Header.Set("User-Agent", "qdm12/gandyn")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return result, wrapFault(method, fmt.Errorf("doing http request: %w", err))
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return result, wrapFault(method, fmt.Errorf("%w: %d: %s",
			ErrHTTPStatusNotValid, response.StatusCode, bodyToSingleLine(response.Body)))
	}

	decoded, err := decodeMethodResponse(response.Body)
	if err != nil {
		return result, wrapFault(method, err)
	}

	if decoded.Fault != nil {
		return result, parseFault(method, *decoded.Fault)
	}

	if len(decoded.Params) != 1 {
		return result, wrapFault(method, fmt.Errorf("%w: %d values received instead of 1",
			ErrResponseMalformed, len(decoded.Params)))
	}

	return decoded.Params[0].Value, nil
}

func parseFault(method string, faultValue value) *Fault {
	members, err := faultValue.toStruct()
	if err != nil {
		return wrapFault(method, fmt.Errorf("%w: fault: %w", ErrResponseMalformed, err))
	}

	fault := &Fault{Method: method}
	codeValue, ok := members["faultCode"]
	if ok {
		fault.Code, err = codeValue.toInt()
		if err != nil {
			return wrapFault(method, fmt.Errorf("%w: fault code: %w", ErrResponseMalformed, err))
		}
	}

	messageValue, ok := members["faultString"]
	if ok {
		fault.Message, err = messageValue.toString()
		if err != nil {
			return wrapFault(method, fmt.Errorf("%w: fault string: %w", ErrResponseMalformed, err))
		}
	}
	return fault
}

func parseRecord(v value) (record models.Record, err error) {
	members, err := v.toStruct()
	if err != nil {
		return record, err
	}

	for name, memberValue := range members {
		switch name {
		case "id":
			record.ID, err = memberValue.toInt()
		case "ttl":
			record.TTL, err = memberValue.toInt()
		case "name":
			record.Name, err = memberValue.toString()
		case "type":
			record.Type, err = memberValue.toString()
		case "value":
			record.Value, err = memberValue.toString()
		}
		if err != nil {
			return record, fmt.Errorf("field %s: %w", name, err)
		}
	}
	return record, nil
}

func filterToStruct(filter models.RecordFilter) map[string]any {
	m := make(map[string]any, 2) //nolint:gomnd
	if filter.Name != "" {
		m["name"] = filter.Name
	}
	if filter.Type != "" {
		m["type"] = filter.Type
	}
	return m
}

func fieldsToStruct(fields models.RecordFields) map[string]any {
	return map[string]any{
		"name":  fields.Name,
		"type":  fields.Type,
		"value": fields.Value,
		"ttl":   fields.TTL,
	}
}

func bodyToSingleLine(body io.Reader) (s string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	return toSingleLine(string(b))
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.ReplaceAll(line, "  ", " ")
	line = strings.ReplaceAll(line, "  ", " ")
	return line
}
