package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/gandyn/internal/gandi"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Gandi struct {
	APIKey string
	URL    string
}

func (g *Gandi) setDefaults() {
	g.URL = gosettings.DefaultComparable(g.URL, gandi.DefaultURL)
}

var (
	ErrAPIKeyNotSet = errors.New("API key is not set")
	ErrURLNotValid  = errors.New("URL is not valid")
)

func (g Gandi) Validate() (err error) {
	if g.APIKey == "" {
		return ErrAPIKeyNotSet
	}

	u, err := url.Parse(g.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLNotValid, err)
	} else if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%w: scheme %q must be http or https", ErrURLNotValid, u.Scheme)
	}

	return nil
}

func (g Gandi) String() string {
	return g.toLinesNode().String()
}

func (g Gandi) toLinesNode() *gotree.Node {
	node := gotree.New("Gandi")
	node.Appendf("API key: %s", obfuscate(g.APIKey))
	node.Appendf("API URL: %s", g.URL)
	return node
}

func (g *Gandi) read(r *reader.Reader) {
	g.APIKey = r.String("GANDI_API_KEY", reader.ForceLowercase(false))
	g.URL = r.String("GANDI_API_URL", reader.ForceLowercase(false))
}

// obfuscate keeps the first two characters of a secret
// and replaces the rest with a fixed number of stars.
func obfuscate(secret string) string {
	const visible = 2
	switch {
	case secret == "":
		return "[not set]"
	case len(secret) <= visible*2:
		return "[set]"
	default:
		return secret[:visible] + "******"
	}
}
