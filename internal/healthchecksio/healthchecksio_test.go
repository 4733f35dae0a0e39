package healthchecksio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Client_Ping(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		uuid       string
		state      State
		report     string
		status     int
		path       string
		body       string
		errWrapped error
		errMessage string
	}{
		"disabled": {
			state: Ok,
		},
		"ok": {
			uuid:   "abc",
			state:  Ok,
			report: "committed",
			status: http.StatusOK,
			path:   "/abc",
			body:   "committed",
		},
		"fail": {
			uuid:   "abc",
			state:  Fail,
			report: "lookup error: public IP lookup failed",
			status: http.StatusOK,
			path:   "/abc/fail",
			body:   "lookup error: public IP lookup failed",
		},
		"report_truncated": {
			uuid:   "abc",
			state:  Fail,
			report: strings.Repeat("x", maxReportLength+1),
			status: http.StatusOK,
			path:   "/abc/fail",
			body:   strings.Repeat("x", maxReportLength),
		},
		"bad status": {
			uuid:       "abc",
			state:      Fail,
			status:     http.StatusNotFound,
			path:       "/abc/fail",
			errWrapped: ErrStatusCode,
			errMessage: "bad status code: 404 Not Found",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			called := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, testCase.path, r.URL.Path)
				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.Equal(t, testCase.body, string(body))
				w.WriteHeader(testCase.status)
			}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL+"/", testCase.uuid)

			err := client.Ping(context.Background(), testCase.state, testCase.report)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.uuid != "", called)
		})
	}
}
