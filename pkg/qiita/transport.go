package qiita

import (
	"crypto/tls"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	promcfg "github.com/prometheus/common/config"

	"github.com/rhobs/qiita-mcp/pkg/metrics"
)

// NewHTTPClient returns an http.Client that authenticates every request with
// token as a bearer credential. When collectors is non-nil outgoing requests
// are counted by method and status code.
func NewHTTPClient(token string, insecure bool, collectors *metrics.Collectors) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		base.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via --insecure
	}

	var rt http.RoundTripper = promcfg.NewAuthorizationCredentialsRoundTripper(
		"Bearer", promcfg.NewInlineSecret(token), base)

	if collectors != nil {
		rt = promhttp.InstrumentRoundTripperCounter(collectors.APIRequests, rt)
	}

	return &http.Client{Transport: rt}
}
