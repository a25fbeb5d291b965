package datastore

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/aiwolfie/waybackwolf/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const contentCacheSchema = `
CREATE TABLE IF NOT EXISTS content_cache (
	url_hash   TEXT PRIMARY KEY,
	target_url TEXT NOT NULL,
	body       BLOB NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);
`

// ContentCache is a content-addressed store keyed by a hash of the fetch
// target URL, persisted to sqlite so identical targets are never re-fetched
// across runs. Entries are never expired or invalidated here; staleness is an
// accepted tradeoff. Writes for the same key are last-write-wins.
type ContentCache struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewContentCache opens (and if needed initializes) the cache database at
// the given path.
func NewContentCache(path string, logger zerolog.Logger) (*ContentCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to open content cache")
	}

	if _, err := db.Exec(contentCacheSchema); err != nil {
		_ = db.Close()
		return nil, errorwrapper.WrapError(err, "failed to initialize content cache schema")
	}

	return &ContentCache{
		db:     db,
		logger: logger.With().Str("component", "ContentCache").Logger(),
	}, nil
}

// HashKey derives the stable cache key for a fetch target URL.
func HashKey(targetURL string) string {
	sum := sha256.Sum256([]byte(targetURL))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached payload for the target URL. A read failure is
// logged and degrades to a miss; it never fails the surrounding fetch.
func (c *ContentCache) Get(targetURL string) ([]byte, bool) {
	var body []byte
	err := c.db.QueryRow(
		"SELECT body FROM content_cache WHERE url_hash = ?",
		HashKey(targetURL),
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		c.logger.Error().Err(err).Str("url", targetURL).Msg("Content cache read failed, treating as miss")
		return nil, false
	}
	return body, true
}

// Put stores the payload under the target URL's hash. Concurrent writers for
// the same key race benignly; the upsert keeps the write atomic.
func (c *ContentCache) Put(targetURL string, body []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO content_cache (url_hash, target_url, body, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(url_hash) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		HashKey(targetURL), targetURL, body, time.Now().UTC(),
	)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to write content cache entry")
	}
	return nil
}

// Close releases the underlying database handle.
func (c *ContentCache) Close() error {
	return c.db.Close()
}
