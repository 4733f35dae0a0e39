package publicip

import (
	"net/http"

	"github.com/qdm12/gandyn/pkg/publicip/dns"
	iphttp "github.com/qdm12/gandyn/pkg/publicip/http"
)

type DNSSettings struct {
	Enabled bool
	Options []dns.Option
}

type HTTPSettings struct {
	Enabled bool
	Client  *http.Client
	Options []iphttp.Option
}
