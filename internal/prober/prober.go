package prober

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/aiwolfie/waybackwolf/internal/common/errorwrapper"
	"github.com/aiwolfie/waybackwolf/internal/httpclient"
	"github.com/aiwolfie/waybackwolf/internal/limiter"
	"github.com/rs/zerolog"
)

// Failure categories surfaced in the structured output.
const (
	CategoryConnection = "ConnectionError"
	CategoryTimeout    = "Timeout"
	CategoryOther      = "OtherError"
)

// Prober issues lightweight existence checks against live URLs. Any received
// status code is returned as-is on the first attempt that produces one;
// transport-level failures are retried under the policy.
type Prober struct {
	client *http.Client
	policy httpclient.RetryPolicy
	gate   *limiter.Gate
	logger zerolog.Logger
}

// New creates a prober sharing the probe/fetch admission gate.
func New(client *http.Client, policy httpclient.RetryPolicy, gate *limiter.Gate, logger zerolog.Logger) *Prober {
	return &Prober{
		client: client,
		policy: policy,
		gate:   gate,
		logger: logger.With().Str("component", "Prober").Logger(),
	}
}

// Check performs a HEAD request against the URL and returns the resulting
// status code. After exhausting retries it returns a categorized
// NetworkError carrying the retry count. The admission gate bounds
// concurrent checks; saturation blocks rather than drops.
func (p *Prober) Check(ctx context.Context, rawURL string) (int, error) {
	if err := p.gate.Acquire(ctx); err != nil {
		return 0, err
	}
	defer p.gate.Release()

	var lastErr error
	for attempt := 1; attempt <= p.policy.MaxAttempts; attempt++ {
		status, err := p.head(ctx, rawURL)
		if err == nil {
			return status, nil
		}
		lastErr = err

		p.logger.Debug().
			Str("url", rawURL).
			Int("attempt", attempt).
			Err(err).
			Msg("Probe attempt failed")

		if attempt < p.policy.MaxAttempts {
			if waitErr := p.policy.Wait(ctx, attempt); waitErr != nil {
				return 0, waitErr
			}
		}
	}

	category := Categorize(lastErr)
	return 0, errorwrapper.NewNetworkError(rawURL, category, p.policy.MaxAttempts, lastErr)
}

func (p *Prober) head(ctx context.Context, rawURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Categorize maps a transport error into one of the probe failure
// categories.
func Categorize(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EHOSTUNREACH) {
		return CategoryConnection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CategoryConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return CategoryConnection
	}
	return CategoryOther
}
