package zone

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/qdm12/gandyn/internal/models"
)

// Updater reads and updates the records of a domain zone.
// Updates are staged in a new zone version which is only activated
// if all the record updates succeed, and deleted otherwise.
// It is not safe for concurrent use.
type Updater struct {
	client Client
	domain string
	filter models.RecordFilter
	logger Logger
	// zoneID is resolved on first use and then kept.
	zoneID *models.ZoneID
}

type Settings struct {
	Domain string
	Filter models.RecordFilter
}

func New(client Client, settings Settings, logger Logger) *Updater {
	return &Updater{
		client: client,
		domain: settings.Domain,
		filter: settings.Filter,
		logger: logger,
	}
}

func (u *Updater) getZoneID(ctx context.Context) (zoneID models.ZoneID, err error) {
	if u.zoneID != nil {
		return *u.zoneID, nil
	}

	zoneID, err = u.client.ZoneID(ctx, u.domain)
	if err != nil {
		return 0, fmt.Errorf("getting zone id of %s: %w", u.domain, err)
	}
	u.zoneID = &zoneID
	return zoneID, nil
}

// RecordValue returns the value of the first record matching the
// filter in the active version of the zone.
func (u *Updater) RecordValue(ctx context.Context) (ip netip.Addr, err error) {
	zoneID, err := u.getZoneID(ctx)
	if err != nil {
		return ip, err
	}

	records, err := u.client.ListRecords(ctx, zoneID, models.ActiveVersion, u.filter)
	if err != nil {
		return ip, fmt.Errorf("listing records of active version: %w", err)
	} else if len(records) == 0 {
		return ip, fmt.Errorf("%w: %s in zone %d of %s",
			ErrNoMatchingRecord, u.filter, zoneID, u.domain)
	}

	value := records[0].Value
	ip, err = netip.ParseAddr(value)
	if err != nil || !ip.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrRecordValueMalformed, value)
	}
	return ip, nil
}

var ErrIPNotIPv4 = errors.New("IP address is not IPv4")

// UpdateRecordValue sets the value of all the records matching the filter
// to the IP address given, together with the TTL given. The outcome is
// Committed if the new zone version was activated, RolledBack if it was
// staged and then discarded, and Aborted if nothing was staged.
func (u *Updater) UpdateRecordValue(ctx context.Context, ip netip.Addr,
	ttl time.Duration) (outcome Outcome, err error) {
	ip = ip.Unmap()
	if !ip.Is4() {
		return Aborted, fmt.Errorf("%w: %s", ErrIPNotIPv4, ip)
	}

	zoneID, err := u.getZoneID(ctx)
	if err != nil {
		return Aborted, err
	}

	version, err := u.client.NewVersion(ctx, zoneID)
	if err != nil {
		return Aborted, fmt.Errorf("creating new version of zone %d: %w", zoneID, err)
	}
	u.logger.Debug(fmt.Sprintf("working on new version %d of zone %d", version, zoneID))

	err = u.updateRecords(ctx, zoneID, version, ip, ttl)
	if err == nil {
		err = u.client.ActivateVersion(ctx, zoneID, version)
		if err == nil {
			return Committed, nil
		}
		err = fmt.Errorf("activating version %d: %w", version, err)
	}

	return RolledBack, u.rollback(ctx, zoneID, version, err)
}

func (u *Updater) updateRecords(ctx context.Context, zoneID models.ZoneID,
	version models.ZoneVersion, ip netip.Addr, ttl time.Duration) (err error) {
	records, err := u.client.ListRecords(ctx, zoneID, version, u.filter)
	if err != nil {
		return fmt.Errorf("listing records of version %d: %w", version, err)
	}

	if len(records) == 0 {
		u.logger.Warn(fmt.Sprintf("no record matching %s in version %d, "+
			"activating it unchanged", u.filter, version))
	}

	for _, record := range records {
		fields := models.MakeRecordFields(u.filter, record, ip.String(), ttl)
		err = u.client.UpdateRecord(ctx, zoneID, version, record.ID, fields)
		if err != nil {
			return fmt.Errorf("updating record %d in version %d: %w",
				record.ID, version, err)
		}
		u.logger.Debug(fmt.Sprintf("record %s updated to %s in version %d",
			record, ip, version))
	}
	return nil
}

// rollback deletes the staged version, even if the context is canceled.
func (u *Updater) rollback(ctx context.Context, zoneID models.ZoneID,
	version models.ZoneVersion, cause error) (err error) {
	rollbackErr := &RollbackError{
		Version: version,
		Cause:   cause,
	}

	ctx = context.WithoutCancel(ctx)
	err = u.client.DeleteVersion(ctx, zoneID, version)
	if err != nil {
		rollbackErr.CleanupErr = fmt.Errorf("deleting version %d: %w", version, err)
	}
	return rollbackErr
}
