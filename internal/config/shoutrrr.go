package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/containrrr/shoutrrr"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Shoutrrr struct {
	Addresses    []string
	DefaultTitle string
}

func (s *Shoutrrr) setDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	s.DefaultTitle = gosettings.DefaultComparable(s.DefaultTitle, "gandyn")
}

var ErrAddressNotValid = errors.New("address is not valid")

func (s Shoutrrr) Validate() (err error) {
	for i, address := range s.Addresses {
		_, err = url.Parse(address)
		if err != nil {
			// the url error contains the address and its credentials
			return fmt.Errorf("%w: address %d of %d", ErrAddressNotValid, i+1, len(s.Addresses))
		}
	}

	_, err = shoutrrr.CreateSender(s.Addresses...)
	if err != nil {
		return fmt.Errorf("shoutrrr addresses: %w", err)
	}
	return nil
}

func (s Shoutrrr) String() string {
	return s.ToLinesNode().String()
}

func (s Shoutrrr) ToLinesNode() *gotree.Node {
	if len(s.Addresses) == 0 {
		return gotree.New("Shoutrrr: disabled")
	}

	node := gotree.New("Shoutrrr")
	node.Appendf("Default title: %s", s.DefaultTitle)

	childNode := node.Appendf("Services")
	for _, address := range s.Addresses {
		childNode.Appendf(serviceOf(address))
	}

	return node
}

// serviceOf returns the service name of a shoutrrr address
// without its tokens and credentials, for display.
func serviceOf(address string) string {
	u, err := url.Parse(address)
	if err != nil || u.Scheme == "" {
		return "[invalid]"
	}
	return u.Scheme
}

func (s *Shoutrrr) read(r *reader.Reader) {
	s.Addresses = r.CSV("SHOUTRRR_ADDRESSES", reader.ForceLowercase(false))
	s.DefaultTitle = r.String("SHOUTRRR_DEFAULT_TITLE", reader.ForceLowercase(false))
}
