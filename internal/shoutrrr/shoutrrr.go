package shoutrrr

import (
	"fmt"
	"net/url"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

// Client sends notifications to the configured Shoutrrr services.
// With no address configured, Notify does nothing.
type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	logger        Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		u, err := url.Parse(address)
		if err != nil {
			return nil, fmt.Errorf("parsing address %d: %w", i+1, err)
		}
		addresses[i] = addDefaultTitle(u, settings.DefaultTitle)
		serviceNames[i] = u.Scheme
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		logger:        settings.Logger,
	}, nil
}

// Notify sends the message to every service and logs
// each service failure without returning it.
func (c *Client) Notify(message string) {
	if len(c.serviceNames) == 0 {
		return
	}

	errs := c.serviceRouter.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

func addDefaultTitle(u *url.URL, defaultTitle string) (updatedAddress string) {
	urlValues := u.Query()
	if urlValues.Has("title") {
		return u.String()
	}

	urlValues.Set("title", defaultTitle)
	updated := *u
	updated.RawQuery = urlValues.Encode()
	return updated.String()
}
