package gandi

import (
	"errors"
	"strconv"
)

// ErrProviderFault is wrapped by every error returned by the client.
var ErrProviderFault = errors.New("provider fault")

var (
	ErrHTTPStatusNotValid = errors.New("HTTP status is not valid")
	ErrResponseMalformed  = errors.New("response is malformed")
	ErrZoneIDNotFound     = errors.New("zone id not found in domain information")
	ErrOperationRefused   = errors.New("operation refused")
)

// Fault is the error returned for a failed remote call.
// For faults raised by the provider, Code and Message are the
// raw fault code and string sent back. For transport and decoding
// failures, Err is set instead.
type Fault struct {
	Method  string
	Code    int
	Message string
	Err     error
}

func (f *Fault) Error() string {
	s := f.Method + ": " + ErrProviderFault.Error()
	if f.Err != nil {
		return s + ": " + f.Err.Error()
	}
	return s + ": code " + strconv.Itoa(f.Code) + ": " + f.Message
}

func (f *Fault) Is(target error) bool {
	return target == ErrProviderFault //nolint:errorlint,goerr113
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func wrapFault(method string, err error) *Fault {
	return &Fault{Method: method, Err: err}
}
