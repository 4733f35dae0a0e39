package zone

import (
	"context"
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/gandyn/internal/models"
	"github.com/qdm12/gandyn/internal/zone/mock_zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Updater_RecordValue(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")
	filter := models.RecordFilter{Name: "@", Type: "A"}

	testCases := map[string]struct {
		zoneID     models.ZoneID
		zoneIDErr  error
		listCall   bool
		records    []models.Record
		listErr    error
		ip         netip.Addr
		errWrapped error
		errMessage string
	}{
		"zone id error": {
			zoneIDErr:  errTest,
			errWrapped: errTest,
			errMessage: "getting zone id of example.com: test error",
		},
		"list error": {
			zoneID:     1,
			listCall:   true,
			listErr:    errTest,
			errWrapped: errTest,
			errMessage: "listing records of active version: test error",
		},
		"no record": {
			zoneID:     1,
			listCall:   true,
			errWrapped: ErrNoMatchingRecord,
			errMessage: "no record matching filter: [name: @ | type: A] " +
				"in zone 1 of example.com",
		},
		"malformed value": {
			zoneID:     1,
			listCall:   true,
			records:    []models.Record{{ID: 42, Value: "not-an-ip"}},
			errWrapped: ErrRecordValueMalformed,
			errMessage: `record value is not an IPv4 address: "not-an-ip"`,
		},
		"IPv6 value": {
			zoneID:     1,
			listCall:   true,
			records:    []models.Record{{ID: 42, Value: "::1"}},
			errWrapped: ErrRecordValueMalformed,
			errMessage: `record value is not an IPv4 address: "::1"`,
		},
		"first record value": {
			zoneID:   1,
			listCall: true,
			records: []models.Record{
				{ID: 42, Value: "1.2.3.4"},
				{ID: 43, Value: "9.9.9.9"},
			},
			ip: netip.AddrFrom4([4]byte{1, 2, 3, 4}),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			client := mock_zone.NewMockClient(ctrl)
			client.EXPECT().ZoneID(ctx, "example.com").
				Return(testCase.zoneID, testCase.zoneIDErr)
			if testCase.listCall {
				client.EXPECT().ListRecords(ctx, testCase.zoneID, models.ActiveVersion, filter).
					Return(testCase.records, testCase.listErr)
			}

			updater := New(client, Settings{Domain: "example.com", Filter: filter}, nil)

			ip, err := updater.RecordValue(ctx)

			assert.Equal(t, testCase.ip, ip)
			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Updater_zoneIDCaching(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	errTest := errors.New("test error")
	filter := models.RecordFilter{Name: "@", Type: "A"}
	records := []models.Record{{ID: 42, Value: "1.2.3.4"}}

	client := mock_zone.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().ZoneID(ctx, "example.com").Return(models.ZoneID(0), errTest),
		client.EXPECT().ZoneID(ctx, "example.com").Return(models.ZoneID(7), nil),
	)
	client.EXPECT().ListRecords(ctx, models.ZoneID(7), models.ActiveVersion, filter).
		Return(records, nil).Times(2)

	updater := New(client, Settings{Domain: "example.com", Filter: filter}, nil)

	_, err := updater.RecordValue(ctx)
	require.ErrorIs(t, err, errTest)

	for i := 0; i < 2; i++ {
		ip, err := updater.RecordValue(ctx)
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddr("1.2.3.4"), ip)
	}
}

func Test_Updater_UpdateRecordValue(t *testing.T) {
	t.Parallel()

	const (
		domain  = "example.com"
		zoneID  = models.ZoneID(1)
		version = models.ZoneVersion(2)
		ttl     = 300 * time.Second
	)
	filter := models.RecordFilter{Name: "@", Type: "A"}
	newIP := netip.AddrFrom4([4]byte{5, 6, 7, 8})
	errTest := errors.New("test error")
	errCleanup := errors.New("cleanup error")

	makeRecords := func(n int) []models.Record {
		records := make([]models.Record, n)
		for i := range records {
			records[i] = models.Record{
				ID:    42 + i,
				Name:  "@",
				Type:  "A",
				Value: "1.2.3.4",
				TTL:   1800,
			}
		}
		return records
	}
	fieldsFor := func(record models.Record) models.RecordFields {
		return models.RecordFields{Name: record.Name, Type: record.Type,
			Value: "5.6.7.8", TTL: 300}
	}

	type expectations struct {
		client *mock_zone.MockClient
		logger *mock_zone.MockLogger
	}

	testCases := map[string]struct {
		ip         netip.Addr
		setup      func(ctx context.Context, e expectations)
		outcome    Outcome
		errWrapped []error
		errMessage string
	}{
		"IPv6 address": {
			ip:         netip.MustParseAddr("::1"),
			setup:      func(context.Context, expectations) {},
			outcome:    Aborted,
			errWrapped: []error{ErrIPNotIPv4},
			errMessage: "IP address is not IPv4: ::1",
		},
		"zone id error": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				e.client.EXPECT().ZoneID(ctx, domain).Return(models.ZoneID(0), errTest)
			},
			outcome:    Aborted,
			errWrapped: []error{errTest},
			errMessage: "getting zone id of example.com: test error",
		},
		"create version error": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil)
				e.client.EXPECT().NewVersion(ctx, zoneID).Return(models.ZoneVersion(0), errTest)
			},
			outcome:    Aborted,
			errWrapped: []error{errTest},
			errMessage: "creating new version of zone 1: test error",
		},
		"single record committed": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				record := models.Record{ID: 42, Name: "@", Type: "A", Value: "1.2.3.4", TTL: 1800}
				e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
				gomock.InOrder(
					e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil),
					e.client.EXPECT().NewVersion(ctx, zoneID).Return(version, nil),
					e.client.EXPECT().ListRecords(ctx, zoneID, version, filter).
						Return([]models.Record{record}, nil),
					e.client.EXPECT().UpdateRecord(ctx, zoneID, version, 42, models.RecordFields{
						Name: "@", Type: "A", Value: "5.6.7.8", TTL: 300,
					}).Return(nil),
					e.client.EXPECT().ActivateVersion(ctx, zoneID, version).Return(nil),
				)
			},
			outcome: Committed,
		},
		"three records committed": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				records := makeRecords(3)
				e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
				calls := []*gomock.Call{
					e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil),
					e.client.EXPECT().NewVersion(ctx, zoneID).Return(version, nil),
					e.client.EXPECT().ListRecords(ctx, zoneID, version, filter).Return(records, nil),
				}
				for _, record := range records {
					calls = append(calls, e.client.EXPECT().
						UpdateRecord(ctx, zoneID, version, record.ID, fieldsFor(record)).Return(nil))
				}
				calls = append(calls, e.client.EXPECT().ActivateVersion(ctx, zoneID, version).Return(nil))
				gomock.InOrder(calls...)
			},
			outcome: Committed,
		},
		"no matching record committed": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
				e.logger.EXPECT().Warn("no record matching [name: @ | type: A] in version 2, " +
					"activating it unchanged")
				gomock.InOrder(
					e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil),
					e.client.EXPECT().NewVersion(ctx, zoneID).Return(version, nil),
					e.client.EXPECT().ListRecords(ctx, zoneID, version, filter).Return(nil, nil),
					e.client.EXPECT().ActivateVersion(ctx, zoneID, version).Return(nil),
				)
			},
			outcome: Committed,
		},
		"list version records error": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
				gomock.InOrder(
					e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil),
					e.client.EXPECT().NewVersion(ctx, zoneID).Return(version, nil),
					e.client.EXPECT().ListRecords(ctx, zoneID, version, filter).Return(nil, errTest),
					e.client.EXPECT().DeleteVersion(gomock.Any(), zoneID, version).Return(nil),
				)
			},
			outcome:    RolledBack,
			errWrapped: []error{ErrRolledBack, errTest},
			errMessage: "zone version rolled back: version 2: " +
				"listing records of version 2: test error",
		},
		"single record update failure": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				record := models.Record{ID: 42, Name: "@", Type: "A", Value: "1.2.3.4", TTL: 1800}
				e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
				gomock.InOrder(
					e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil),
					e.client.EXPECT().NewVersion(ctx, zoneID).Return(version, nil),
					e.client.EXPECT().ListRecords(ctx, zoneID, version, filter).
						Return([]models.Record{record}, nil),
					e.client.EXPECT().UpdateRecord(ctx, zoneID, version, 42, fieldsFor(record)).
						Return(errTest),
					e.client.EXPECT().DeleteVersion(gomock.Any(), zoneID, version).Return(nil),
				)
			},
			outcome:    RolledBack,
			errWrapped: []error{ErrRolledBack, errTest},
			errMessage: "zone version rolled back: version 2: " +
				"updating record 42 in version 2: test error",
		},
		"second of three records update failure": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				records := makeRecords(3)
				e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
				gomock.InOrder(
					e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil),
					e.client.EXPECT().NewVersion(ctx, zoneID).Return(version, nil),
					e.client.EXPECT().ListRecords(ctx, zoneID, version, filter).Return(records, nil),
					e.client.EXPECT().UpdateRecord(ctx, zoneID, version, 42, fieldsFor(records[0])).
						Return(nil),
					e.client.EXPECT().UpdateRecord(ctx, zoneID, version, 43, fieldsFor(records[1])).
						Return(errTest),
					e.client.EXPECT().DeleteVersion(gomock.Any(), zoneID, version).Return(nil),
				)
			},
			outcome:    RolledBack,
			errWrapped: []error{ErrRolledBack, errTest},
			errMessage: "zone version rolled back: version 2: " +
				"updating record 43 in version 2: test error",
		},
		"delete failure after update failure": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				record := models.Record{ID: 42, Name: "@", Type: "A", Value: "1.2.3.4", TTL: 1800}
				e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
				gomock.InOrder(
					e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil),
					e.client.EXPECT().NewVersion(ctx, zoneID).Return(version, nil),
					e.client.EXPECT().ListRecords(ctx, zoneID, version, filter).
						Return([]models.Record{record}, nil),
					e.client.EXPECT().UpdateRecord(ctx, zoneID, version, 42, fieldsFor(record)).
						Return(errTest),
					e.client.EXPECT().DeleteVersion(gomock.Any(), zoneID, version).Return(errCleanup),
				)
			},
			outcome:    RolledBack,
			errWrapped: []error{ErrRolledBack, errTest, errCleanup},
			errMessage: "zone version rolled back: version 2: " +
				"updating record 42 in version 2: test error; " +
				"deleting version failed: deleting version 2: cleanup error",
		},
		"activate failure": {
			ip: newIP,
			setup: func(ctx context.Context, e expectations) {
				record := models.Record{ID: 42, Name: "@", Type: "A", Value: "1.2.3.4", TTL: 1800}
				e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
				gomock.InOrder(
					e.client.EXPECT().ZoneID(ctx, domain).Return(zoneID, nil),
					e.client.EXPECT().NewVersion(ctx, zoneID).Return(version, nil),
					e.client.EXPECT().ListRecords(ctx, zoneID, version, filter).
						Return([]models.Record{record}, nil),
					e.client.EXPECT().UpdateRecord(ctx, zoneID, version, 42, fieldsFor(record)).
						Return(nil),
					e.client.EXPECT().ActivateVersion(ctx, zoneID, version).Return(errTest),
					e.client.EXPECT().DeleteVersion(gomock.Any(), zoneID, version).Return(nil),
				)
			},
			outcome:    RolledBack,
			errWrapped: []error{ErrRolledBack, errTest},
			errMessage: "zone version rolled back: version 2: " +
				"activating version 2: test error",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			e := expectations{
				client: mock_zone.NewMockClient(ctrl),
				logger: mock_zone.NewMockLogger(ctrl),
			}
			testCase.setup(ctx, e)

			updater := New(e.client, Settings{Domain: domain, Filter: filter}, e.logger)

			outcome, err := updater.UpdateRecordValue(ctx, testCase.ip, ttl)

			assert.Equal(t, testCase.outcome, outcome)
			if len(testCase.errWrapped) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, errWrapped := range testCase.errWrapped {
				assert.ErrorIs(t, err, errWrapped)
			}
			assert.EqualError(t, err, testCase.errMessage)
		})
	}
}

func Test_Updater_UpdateRecordValue_canceledContext(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	ctx, cancel := context.WithCancel(context.Background())
	filter := models.RecordFilter{Name: "@", Type: "A"}

	client := mock_zone.NewMockClient(ctrl)
	logger := mock_zone.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	client.EXPECT().ZoneID(ctx, "example.com").Return(models.ZoneID(1), nil)
	client.EXPECT().NewVersion(ctx, models.ZoneID(1)).Return(models.ZoneVersion(2), nil)
	client.EXPECT().ListRecords(ctx, models.ZoneID(1), models.ZoneVersion(2), filter).
		DoAndReturn(func(ctx context.Context, _ models.ZoneID, _ models.ZoneVersion,
			_ models.RecordFilter) ([]models.Record, error) {
			cancel()
			return nil, ctx.Err()
		})
	client.EXPECT().DeleteVersion(gomock.Any(), models.ZoneID(1), models.ZoneVersion(2)).
		DoAndReturn(func(ctx context.Context, _ models.ZoneID, _ models.ZoneVersion) error {
			return ctx.Err()
		})

	updater := New(client, Settings{Domain: "example.com", Filter: filter}, logger)

	outcome, err := updater.UpdateRecordValue(ctx, netip.MustParseAddr("5.6.7.8"), time.Hour)

	assert.Equal(t, RolledBack, outcome)
	assert.ErrorIs(t, err, context.Canceled)
	var rollbackErr *RollbackError
	require.ErrorAs(t, err, &rollbackErr)
	assert.NoError(t, rollbackErr.CleanupErr)
}

func Test_Outcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aborted", Aborted.String())
	assert.Equal(t, "no change needed", NoChangeNeeded.String())
	assert.Equal(t, "committed", Committed.String())
	assert.Equal(t, "rolled back", RolledBack.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}
