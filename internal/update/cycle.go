package update

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/qdm12/gandyn/internal/gandi"
	"github.com/qdm12/gandyn/internal/healthchecksio"
	"github.com/qdm12/gandyn/internal/zone"
	"github.com/qdm12/gandyn/pkg/publicip"
)

// Cycle checks the record value against the public IPv4 address
// and updates the record if they differ.
type Cycle struct {
	records   RecordUpdater
	ipGetter  PublicIPFetcher
	ttl       time.Duration
	logger    Logger
	notifier  Notifier
	hioClient HealthchecksIOClient
}

func NewCycle(records RecordUpdater, ipGetter PublicIPFetcher, ttl time.Duration,
	logger Logger, notifier Notifier, hioClient HealthchecksIOClient) *Cycle {
	return &Cycle{
		records:   records,
		ipGetter:  ipGetter,
		ttl:       ttl,
		logger:    logger,
		notifier:  notifier,
		hioClient: hioClient,
	}
}

// Run runs a single cycle. Errors are logged, notified and
// reported to healthchecks.io before being returned.
func (c *Cycle) Run(ctx context.Context) (outcome zone.Outcome, err error) {
	outcome, err = c.run(ctx)
	state, report := healthchecksio.Ok, outcome.String()
	if err != nil {
		message := category(err) + " error: " + err.Error()
		c.logger.Error(message)
		c.notifier.Notify(message)
		state, report = healthchecksio.Fail, message
	}

	pingErr := c.hioClient.Ping(ctx, state, report)
	if pingErr != nil {
		c.logger.Error("pinging healthchecks.io: " + pingErr.Error())
	}

	return outcome, err
}

func (c *Cycle) run(ctx context.Context) (outcome zone.Outcome, err error) {
	recordIP, err := c.records.RecordValue(ctx)
	switch {
	case err == nil:
	case errors.Is(err, zone.ErrRecordValueMalformed):
		c.logger.Warn(err.Error() + ", overwriting it")
	default:
		return zone.Aborted, fmt.Errorf("getting record value: %w", err)
	}

	publicIP, err := c.ipGetter.IP4(ctx)
	if err != nil {
		return zone.Aborted, fmt.Errorf("getting public IPv4 address: %w", err)
	}

	if recordIP == publicIP {
		c.logger.Debug("record value " + recordIP.String() +
			" is already the public IPv4 address")
		return zone.NoChangeNeeded, nil
	}

	c.logger.Info(fmt.Sprintf("updating record value from %s to %s",
		displayIP(recordIP), publicIP))
	outcome, err = c.records.UpdateRecordValue(ctx, publicIP, c.ttl)
	if err != nil {
		return outcome, fmt.Errorf("updating record value: %w", err)
	}

	message := "record value updated to " + publicIP.String()
	c.logger.Info(message)
	c.notifier.Notify(message)
	return outcome, nil
}

func displayIP(ip netip.Addr) string {
	if !ip.IsValid() {
		return "an invalid value"
	}
	return ip.String()
}

func category(err error) string {
	switch {
	case errors.Is(err, zone.ErrNoMatchingRecord):
		return "no matching record"
	case errors.Is(err, publicip.ErrLookup):
		return "lookup"
	case errors.Is(err, gandi.ErrProviderFault):
		return "provider"
	default:
		return "unexpected"
	}
}
