package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/aiwolfie/waybackwolf/internal/config"
)

// NewClient builds the shared HTTP client used by the prober, the archive
// resolver and the content fetcher. The dial timeout bounds connection
// establishment, the response header timeout bounds the wait for the remote
// to start answering, and redirects are followed up to the configured cap.
func NewClient(cfg config.HTTPClientConfig) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   time.Duration(cfg.ConnectTimeoutSecs) * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ResponseHeaderTimeout: time.Duration(cfg.ReadTimeoutSecs) * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
	}
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	maxRedirects := cfg.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = 10
	}

	return &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}
