package publicip

import (
	"context"
	"errors"
	"net/http"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/gandyn/pkg/publicip/mock_publicip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	ips  []netip.Addr
	errs []error
	call int
}

func (f *fakeFetcher) IP4(context.Context) (netip.Addr, error) {
	i := f.call
	f.call++
	return f.ips[i], f.errs[i]
}

func Test_NewFetcher(t *testing.T) {
	t.Parallel()

	_, err := NewFetcher(DNSSettings{}, HTTPSettings{}, nil)
	assert.ErrorIs(t, err, ErrNoFetchTypeSpecified)

	fetcher, err := NewFetcher(DNSSettings{Enabled: true},
		HTTPSettings{Enabled: true, Client: &http.Client{}}, nil)
	require.NoError(t, err)
	assert.Len(t, fetcher.fetchers, 2)
}

func Test_Fetcher_IP4(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")
	ip := netip.AddrFrom4([4]byte{1, 2, 3, 4})

	testCases := map[string]struct {
		fetcher    *fakeFetcher
		setLogger  func(logger *mock_publicip.MockLogger)
		ip         netip.Addr
		errWrapped error
		errMessage string
	}{
		"first try": {
			fetcher: &fakeFetcher{
				ips:  []netip.Addr{ip},
				errs: []error{nil},
			},
			setLogger: func(*mock_publicip.MockLogger) {},
			ip:        ip,
		},
		"third try": {
			fetcher: &fakeFetcher{
				ips:  []netip.Addr{{}, {}, ip},
				errs: []error{errTest, errTest, nil},
			},
			setLogger: func(logger *mock_publicip.MockLogger) {
				logger.EXPECT().Debug("obtaining ipv4 address failed: try 1 of 3: test error")
				logger.EXPECT().Debug("obtaining ipv4 address failed: try 2 of 3: test error")
				logger.EXPECT().Info("obtaining ipv4 address succeeded after 3 tries")
			},
			ip: ip,
		},
		"all tries failed": {
			fetcher: &fakeFetcher{
				ips:  []netip.Addr{{}, {}, {}},
				errs: []error{errTest, errTest, errTest},
			},
			setLogger: func(logger *mock_publicip.MockLogger) {
				logger.EXPECT().Debug(gomock.Any()).Times(3)
			},
			errWrapped: ErrLookup,
			errMessage: "public IP lookup failed: after 3 tries: " +
				"test error\ntest error\ntest error",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			logger := mock_publicip.NewMockLogger(ctrl)
			testCase.setLogger(logger)

			fetcher := &Fetcher{
				fetchers: []ipFetcher{testCase.fetcher},
				tries:    defaultTries,
				logger:   logger,
			}

			ip, err := fetcher.IP4(context.Background())

			assert.Equal(t, testCase.ip, ip)
			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Fetcher_nextFetcher(t *testing.T) {
	t.Parallel()

	a, b := &fakeFetcher{}, &fakeFetcher{}
	fetcher := &Fetcher{
		fetchers: []ipFetcher{a, b},
	}

	assert.Same(t, b, fetcher.nextFetcher())
	assert.Same(t, a, fetcher.nextFetcher())
	assert.Same(t, b, fetcher.nextFetcher())
}
