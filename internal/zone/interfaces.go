package zone

import (
	"context"

	"github.com/qdm12/gandyn/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Client,Logger

// Client is the DNS provider API used by the updater.
// Each method is a single remote call without retry.
type Client interface {
	ZoneID(ctx context.Context, domain string) (zoneID models.ZoneID, err error)
	ListRecords(ctx context.Context, zoneID models.ZoneID,
		version models.ZoneVersion, filter models.RecordFilter) (
		records []models.Record, err error)
	NewVersion(ctx context.Context, zoneID models.ZoneID) (
		version models.ZoneVersion, err error)
	UpdateRecord(ctx context.Context, zoneID models.ZoneID,
		version models.ZoneVersion, recordID int, fields models.RecordFields) (err error)
	DeleteVersion(ctx context.Context, zoneID models.ZoneID,
		version models.ZoneVersion) (err error)
	ActivateVersion(ctx context.Context, zoneID models.ZoneID,
		version models.ZoneVersion) (err error)
}

type Logger interface {
	Debug(s string)
	Warn(s string)
}
