package fetcher

import (
	"context"
	"io"
	"net/http"

	"github.com/aiwolfie/waybackwolf/internal/datastore"
	"github.com/aiwolfie/waybackwolf/internal/limiter"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps how much of a payload is read. Representative content is
// enough for analysis; multi-hundred-MB archives are not.
const maxBodyBytes = 10 << 20

// Fetcher retrieves content from a live URL or a resolved snapshot, backed
// by the durable content cache. It shares the prober's admission gate since
// both hit arbitrary remote hosts.
type Fetcher struct {
	client *http.Client
	cache  *datastore.ContentCache
	gate   *limiter.Gate
	logger zerolog.Logger
}

// New creates a content fetcher.
func New(client *http.Client, cache *datastore.ContentCache, gate *limiter.Gate, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		cache:  cache,
		gate:   gate,
		logger: logger.With().Str("component", "Fetcher").Logger(),
	}
}

// Fetch returns the payload for the target URL. An existing cache entry
// short-circuits the network. Only a 200 response is persisted and returned;
// any other status or transport error is a normal "no content" outcome.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) ([]byte, bool) {
	if body, ok := f.cache.Get(targetURL); ok {
		f.logger.Debug().Str("url", targetURL).Msg("Content cache hit")
		return body, true
	}

	if err := f.gate.Acquire(ctx); err != nil {
		return nil, false
	}
	defer f.gate.Release()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		f.logger.Debug().Err(err).Str("url", targetURL).Msg("Invalid fetch target")
		return nil, false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug().Err(err).Str("url", targetURL).Msg("Content fetch failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug().Int("status", resp.StatusCode).Str("url", targetURL).Msg("Content fetch returned non-200, no content")
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		f.logger.Debug().Err(err).Str("url", targetURL).Msg("Reading fetched body failed")
		return nil, false
	}

	// A failed cache write degrades to an uncached fetch; the payload is
	// still usable for this request.
	if err := f.cache.Put(targetURL, body); err != nil {
		f.logger.Error().Err(err).Str("url", targetURL).Msg("Content cache write failed")
	}

	return body, true
}
