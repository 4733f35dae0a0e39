package update

import (
	"context"
	"net/netip"
	"time"

	"github.com/qdm12/gandyn/internal/healthchecksio"
	"github.com/qdm12/gandyn/internal/zone"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . RecordUpdater,PublicIPFetcher,Logger,Notifier,HealthchecksIOClient,Cycler

type RecordUpdater interface {
	RecordValue(ctx context.Context) (ip netip.Addr, err error)
	UpdateRecordValue(ctx context.Context, ip netip.Addr,
		ttl time.Duration) (outcome zone.Outcome, err error)
}

type PublicIPFetcher interface {
	IP4(ctx context.Context) (ipv4 netip.Addr, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

type Notifier interface {
	Notify(message string)
}

type HealthchecksIOClient interface {
	Ping(ctx context.Context, state healthchecksio.State, report string) (err error)
}

type Cycler interface {
	Run(ctx context.Context) (outcome zone.Outcome, err error)
}
