package gandi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

const redacted = "[redacted]"

// makeLogClient returns an HTTP client logging each request and response
// at the debug level. Occurrences of the secret are replaced in logged lines.
func makeLogClient(client *http.Client, logger DebugLogger, secret string) (newClient *http.Client) {
	newClient = &http.Client{
		Timeout: client.Timeout,
	}

	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	transport, ok := originalTransport.(*http.Transport)
	if !ok {
		panic(fmt.Sprintf("transport %T is not *http.Transport", originalTransport))
	}

	newClient.Transport = &loggingRoundTripper{
		proxied: transport.Clone(),
		logger:  logger,
		secret:  secret,
	}

	return newClient
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
	secret  string
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(lrt.redact(requestToString(request)))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	lrt.logger.Debug(lrt.redact(responseToString(response)))

	return response, nil
}

func (lrt *loggingRoundTripper) redact(s string) string {
	if lrt.secret == "" {
		return s
	}
	return strings.ReplaceAll(s, lrt.secret, redacted)
}

func requestToString(request *http.Request) (s string) {
	s = request.Method + " " + request.URL.String()

	if request.Header != nil {
		s += " | headers: " + headerToString(request.Header)
	}

	if request.Body != nil {
		newBody, bodyString := readAndResetBody(request.Body)
		request.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if response.Header != nil {
		s += " | headers: " + headerToString(response.Header)
	}

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func headerToString(header http.Header) (s string) {
	headers := make([]string, 0, len(header))
	for key, values := range header {
		headerString := key + ": " + strings.Join(values, ",")
		headers = append(headers, headerString)
	}
	return strings.Join(headers, "; ")
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	if err != nil {
		bodyString = "error reading body: " + err.Error()
	} else {
		bodyString = toSingleLine(string(b))
		_ = body.Close()
		newBody = io.NopCloser(bytes.NewBuffer(b))
	}
	return newBody, bodyString
}
