package gandi

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

type methodCall struct {
	XMLName    xml.Name `xml:"methodCall"`
	MethodName string   `xml:"methodName"`
	Params     []param  `xml:"params>param"`
}

type methodResponse struct {
	XMLName xml.Name `xml:"methodResponse"`
	Params  []param  `xml:"params>param"`
	Fault   *value   `xml:"fault>value"`
}

type param struct {
	Value value `xml:"value"`
}

// value is an XML-RPC value. Exactly one of its typed fields
// is set, except for untyped values which are strings held in Text.
type value struct {
	Int     *string      `xml:"int,omitempty"`
	I4      *string      `xml:"i4,omitempty"`
	Boolean *string      `xml:"boolean,omitempty"`
	String  *string      `xml:"string,omitempty"`
	Struct  *structValue `xml:"struct,omitempty"`
	Array   *arrayValue  `xml:"array,omitempty"`
	Text    string       `xml:",chardata"`
}

type structValue struct {
	Members []member `xml:"member"`
}

type member struct {
	Name  string `xml:"name"`
	Value value  `xml:"value"`
}

type arrayValue struct {
	Values []value `xml:"data>value"`
}

var ErrValueTypeNotSupported = errors.New("value type is not supported")

func encodeMethodCall(method string, params ...any) (b []byte, err error) {
	call := methodCall{
		MethodName: method,
		Params:     make([]param, len(params)),
	}
	for i, p := range params {
		call.Params[i].Value, err = newValue(p)
		if err != nil {
			return nil, fmt.Errorf("encoding parameter %d: %w", i+1, err)
		}
	}

	b, err = xml.Marshal(call)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}

func decodeMethodResponse(r io.Reader) (response methodResponse, err error) {
	decoder := xml.NewDecoder(r)
	err = decoder.Decode(&response)
	if err != nil {
		return response, fmt.Errorf("%w: %w", ErrResponseMalformed, err)
	}
	return response, nil
}

func newValue(v any) (encoded value, err error) {
	switch typed := v.(type) {
	case int:
		s := strconv.Itoa(typed)
		encoded.Int = &s
	case string:
		encoded.String = &typed
	case bool:
		s := "0"
		if typed {
			s = "1"
		}
		encoded.Boolean = &s
	case map[string]any:
		names := make([]string, 0, len(typed))
		for name := range typed {
			names = append(names, name)
		}
		sort.Strings(names)
		encoded.Struct = &structValue{
			Members: make([]member, len(names)),
		}
		for i, name := range names {
			memberValue, err := newValue(typed[name])
			if err != nil {
				return value{}, fmt.Errorf("struct member %s: %w", name, err)
			}
			encoded.Struct.Members[i] = member{Name: name, Value: memberValue}
		}
	default:
		return value{}, fmt.Errorf("%w: %T", ErrValueTypeNotSupported, v)
	}
	return encoded, nil
}

var ErrValueTypeMismatch = errors.New("value type mismatch")

func (v value) toInt() (n int, err error) {
	s := v.Int
	if s == nil {
		s = v.I4
	}
	if s == nil {
		return 0, fmt.Errorf("%w: expected int", ErrValueTypeMismatch)
	}
	n, err = strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return 0, fmt.Errorf("parsing int: %w", err)
	}
	return n, nil
}

func (v value) toString() (s string, err error) {
	switch {
	case v.String != nil:
		return *v.String, nil
	case v.Int == nil && v.I4 == nil && v.Boolean == nil &&
		v.Struct == nil && v.Array == nil:
		return v.Text, nil
	default:
		return "", fmt.Errorf("%w: expected string", ErrValueTypeMismatch)
	}
}

func (v value) toBool() (b bool, err error) {
	if v.Boolean == nil {
		return false, fmt.Errorf("%w: expected boolean", ErrValueTypeMismatch)
	}
	switch strings.TrimSpace(*v.Boolean) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: boolean %q", ErrValueTypeMismatch, *v.Boolean)
	}
}

func (v value) toStruct() (members map[string]value, err error) {
	if v.Struct == nil {
		return nil, fmt.Errorf("%w: expected struct", ErrValueTypeMismatch)
	}
	members = make(map[string]value, len(v.Struct.Members))
	for _, m := range v.Struct.Members {
		members[m.Name] = m.Value
	}
	return members, nil
}

func (v value) toArray() (values []value, err error) {
	if v.Array == nil {
		return nil, fmt.Errorf("%w: expected array", ErrValueTypeMismatch)
	}
	return v.Array.Values, nil
}
