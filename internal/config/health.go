package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Health struct {
	// ServerAddress is the address the healthcheck
	// subcommand queries to get the program health.
	ServerAddress         *string
	HealthchecksioBaseURL string
	HealthchecksioUUID    *string
}

func (h *Health) SetDefaults() {
	h.ServerAddress = gosettings.DefaultPointer(h.ServerAddress, "127.0.0.1:8000")
	h.HealthchecksioBaseURL = gosettings.DefaultComparable(h.HealthchecksioBaseURL,
		"https://hc-ping.com")
	h.HealthchecksioUUID = gosettings.DefaultPointer(h.HealthchecksioUUID, "")
}

var ErrServerAddressNotValid = errors.New("server address is not valid")

func (h Health) Validate() (err error) {
	_, _, err = net.SplitHostPort(*h.ServerAddress)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerAddressNotValid, err)
	}

	_, err = url.Parse(h.HealthchecksioBaseURL)
	if err != nil {
		return fmt.Errorf("healthchecks.io base URL: %w", err)
	}

	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	node := gotree.New("Health")
	node.Appendf("Server address: %s", *h.ServerAddress)
	if *h.HealthchecksioUUID != "" {
		childNode := node.Appendf("Healthchecks.io")
		childNode.Appendf("Base URL: %s", h.HealthchecksioBaseURL)
		childNode.Appendf("UUID: %s", *h.HealthchecksioUUID)
	}
	return node
}

func (h *Health) Read(r *reader.Reader) {
	h.ServerAddress = r.Get("HEALTH_SERVER_ADDRESS")
	h.HealthchecksioBaseURL = r.String("HEALTH_HEALTHCHECKSIO_BASE_URL", reader.ForceLowercase(false))
	h.HealthchecksioUUID = r.Get("HEALTH_HEALTHCHECKSIO_UUID")
}
