package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_MakeRecordFields(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		filter RecordFilter
		record Record
		value  string
		ttl    time.Duration
		fields RecordFields
	}{
		"record identity wins": {
			filter: RecordFilter{Name: "@", Type: "A"},
			record: Record{ID: 42, Name: "www", Type: "CNAME", Value: "1.2.3.4", TTL: 300},
			value:  "5.6.7.8",
			ttl:    10 * time.Minute,
			fields: RecordFields{Name: "www", Type: "CNAME", Value: "5.6.7.8", TTL: 600},
		},
		"filter used as defaults": {
			filter: RecordFilter{Name: "@", Type: "A"},
			record: Record{ID: 42},
			value:  "5.6.7.8",
			ttl:    5 * time.Minute,
			fields: RecordFields{Name: "@", Type: "A", Value: "5.6.7.8", TTL: 300},
		},
		"sub second ttl truncated": {
			filter: RecordFilter{Type: "A"},
			record: Record{Name: "@"},
			value:  "5.6.7.8",
			ttl:    300*time.Second + 900*time.Millisecond,
			fields: RecordFields{Name: "@", Type: "A", Value: "5.6.7.8", TTL: 300},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fields := MakeRecordFields(testCase.filter, testCase.record,
				testCase.value, testCase.ttl)

			assert.Equal(t, testCase.fields, fields)
		})
	}
}
