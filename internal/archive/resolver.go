package archive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/aiwolfie/waybackwolf/internal/common/errorwrapper"
	"github.com/aiwolfie/waybackwolf/internal/config"
	"github.com/aiwolfie/waybackwolf/internal/httpclient"
	"github.com/aiwolfie/waybackwolf/internal/limiter"
	"github.com/rs/zerolog"
)

// availabilityResponse mirrors the archive availability API answer.
type availabilityResponse struct {
	ArchivedSnapshots struct {
		Closest struct {
			Available bool   `json:"available"`
			URL       string `json:"url"`
			Timestamp string `json:"timestamp"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

// Resolver queries the archive service for the most recent stored copy of a
// URL. Results, including misses, are cached for the run so each URL incurs
// at most one outbound lookup.
type Resolver struct {
	apiURL string
	client *http.Client
	policy httpclient.RetryPolicy
	cache  *SnapshotCache
	gate   *limiter.Gate
	logger zerolog.Logger
	now    func() time.Time
}

// NewResolver creates a resolver with its own admission gate, distinct from
// the prober's, since archive latency and rate limits differ from live-site
// checks.
func NewResolver(cfg config.ArchiveConfig, client *http.Client, gate *limiter.Gate, logger zerolog.Logger) *Resolver {
	return &Resolver{
		apiURL: cfg.APIURL,
		client: client,
		policy: httpclient.LinearBackoff(cfg.MaxAttempts, time.Duration(cfg.BackoffBaseSecs)*time.Second),
		cache:  NewSnapshotCache(),
		gate:   gate,
		logger: logger.With().Str("component", "ArchiveResolver").Logger(),
		now:    time.Now,
	}
}

// Resolve returns the newest snapshot URL for the given (inaccessible) URL,
// or "" when no snapshot is available. Lookup failures are retried with
// linear backoff; exhaustion is negative-cached and reported as absent, never
// as an error.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (string, bool) {
	if snapshot, cached := r.cache.Lookup(rawURL); cached {
		return snapshot, snapshot != ""
	}

	if err := r.gate.Acquire(ctx); err != nil {
		return "", false
	}
	defer r.gate.Release()

	// Re-check after the gate wait: another goroutine may have resolved the
	// same URL while this one was blocked.
	if snapshot, cached := r.cache.Lookup(rawURL); cached {
		return snapshot, snapshot != ""
	}

	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		snapshot, err := r.queryNewest(ctx, rawURL)
		if err == nil {
			r.cache.Store(rawURL, snapshot)
			return snapshot, snapshot != ""
		}

		r.logger.Debug().
			Str("url", rawURL).
			Int("attempt", attempt).
			Err(err).
			Msg("Archive lookup failed")

		if attempt < r.policy.MaxAttempts {
			if waitErr := r.policy.Wait(ctx, attempt); waitErr != nil {
				break
			}
		}
	}

	r.cache.Store(rawURL, "")
	return "", false
}

func (r *Resolver) queryNewest(ctx context.Context, rawURL string) (string, error) {
	query := url.Values{}
	query.Set("url", rawURL)
	// Asking for a capture closest to "now" yields the newest snapshot.
	query.Set("timestamp", r.now().UTC().Format("20060102150405"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errorwrapper.NewHTTPError(resp.StatusCode, r.apiURL, "unexpected availability API status")
	}

	var parsed availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if !parsed.ArchivedSnapshots.Closest.Available {
		return "", nil
	}
	return parsed.ArchivedSnapshots.Closest.URL, nil
}
