package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type Provider string

const (
	Ipify        Provider = "ipify"
	Wtfismyip    Provider = "wtfismyip"
	Myexternalip Provider = "myexternalip"
	Icanhazip    Provider = "icanhazip"
	Ident        Provider = "ident"
	Seeip        Provider = "seeip"
)

func ListProviders() []Provider {
	return []Provider{
		Ipify,
		Wtfismyip,
		Myexternalip,
		Icanhazip,
		Ident,
		Seeip,
	}
}

var (
	ErrUnknownProvider = errors.New("unknown public IP echo HTTP provider")
	ErrCustomURLNotTLS = errors.New("custom URL must use https")
)

const customPrefix = "url:"

// ValidateProvider returns an error if the provider is neither a known
// provider nor a custom provider of the form url:https://host/path.
func ValidateProvider(provider Provider) error {
	if s := string(provider); strings.HasPrefix(s, customPrefix) {
		u, err := url.Parse(strings.TrimPrefix(s, customPrefix))
		if err != nil {
			return fmt.Errorf("parsing custom provider url: %w", err)
		} else if u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("%w: %s", ErrCustomURLNotTLS, provider)
		}
		return nil
	}

	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

// url returns the IPv4 only echo URL of the provider.
func (provider Provider) url() (url string) {
	switch provider {
	case Ipify:
		return "https://api.ipify.org"
	case Wtfismyip:
		return "https://ipv4.wtfismyip.com/text"
	case Myexternalip:
		return "https://ipv4.myexternalip.com/raw"
	case Icanhazip:
		return "https://ipv4.icanhazip.com"
	case Ident:
		return "https://v4.ident.me"
	case Seeip:
		return "https://ipv4.seeip.org"
	}
	return strings.TrimPrefix(string(provider), customPrefix)
}

// CustomProvider creates a provider with a custom HTTPS URL.
// The URL must answer with a body containing the caller IPv4 address.
func CustomProvider(httpsURL *url.URL) Provider { //nolint:interfacer
	return Provider(customPrefix + httpsURL.String())
}
