package gandi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_encodeMethodCall(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		method     string
		params     []any
		expected   string
		errMessage string
	}{
		"string and ints": {
			method: "domain.zone.version.set",
			params: []any{"key", 1234, 2},
			expected: `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
				`<methodCall><methodName>domain.zone.version.set</methodName><params>` +
				`<param><value><string>key</string></value></param>` +
				`<param><value><int>1234</int></value></param>` +
				`<param><value><int>2</int></value></param>` +
				`</params></methodCall>`,
		},
		"struct members sorted": {
			method: "m",
			params: []any{map[string]any{"type": "A", "name": "@", "ok": true}},
			expected: `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
				`<methodCall><methodName>m</methodName><params>` +
				`<param><value><struct>` +
				`<member><name>name</name><value><string>@</string></value></member>` +
				`<member><name>ok</name><value><boolean>1</boolean></value></member>` +
				`<member><name>type</name><value><string>A</string></value></member>` +
				`</struct></value></param>` +
				`</params></methodCall>`,
		},
		"escaped string": {
			method: "m",
			params: []any{"a<b&c"},
			expected: `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
				`<methodCall><methodName>m</methodName><params>` +
				`<param><value><string>a&lt;b&amp;c</string></value></param>` +
				`</params></methodCall>`,
		},
		"unsupported type": {
			method:     "m",
			params:     []any{"key", 1.5},
			errMessage: "encoding parameter 2: value type is not supported: float64",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b, err := encodeMethodCall(testCase.method, testCase.params...)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, string(b))
		})
	}
}

func Test_decodeMethodResponse(t *testing.T) {
	t.Parallel()

	const body = `<?xml version="1.0"?>
<methodResponse>
  <params>
    <param>
      <value>
        <array><data>
          <value><struct>
            <member><name>id</name><value><int>42</int></value></member>
            <member><name>name</name><value><string>@</string></value></member>
            <member><name>type</name><value>A</value></member>
            <member><name>ttl</name><value><i4>300</i4></value></member>
            <member><name>value</name><value><string>1.2.3.4</string></value></member>
          </struct></value>
        </data></array>
      </value>
    </param>
  </params>
</methodResponse>`

	response, err := decodeMethodResponse(strings.NewReader(body))
	require.NoError(t, err)
	require.Nil(t, response.Fault)
	require.Len(t, response.Params, 1)

	values, err := response.Params[0].Value.toArray()
	require.NoError(t, err)
	require.Len(t, values, 1)

	record, err := parseRecord(values[0])
	require.NoError(t, err)
	assert.Equal(t, 42, record.ID)
	assert.Equal(t, "@", record.Name)
	assert.Equal(t, "A", record.Type)
	assert.Equal(t, 300, record.TTL)
	assert.Equal(t, "1.2.3.4", record.Value)
}

func Test_value_conversions(t *testing.T) {
	t.Parallel()

	ptr := func(s string) *string { return &s }

	n, err := value{I4: ptr(" 7 ")}.toInt()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = value{String: ptr("7")}.toInt()
	assert.ErrorIs(t, err, ErrValueTypeMismatch)

	b, err := value{Boolean: ptr("0")}.toBool()
	require.NoError(t, err)
	assert.False(t, b)

	_, err = value{Boolean: ptr("yes")}.toBool()
	assert.EqualError(t, err, `value type mismatch: boolean "yes"`)

	s, err := value{Text: "untyped"}.toString()
	require.NoError(t, err)
	assert.Equal(t, "untyped", s)

	_, err = value{Int: ptr("1")}.toString()
	assert.ErrorIs(t, err, ErrValueTypeMismatch)

	_, err = value{}.toStruct()
	assert.ErrorIs(t, err, ErrValueTypeMismatch)
}
