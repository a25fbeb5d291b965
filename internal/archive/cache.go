package archive

import "sync"

// SnapshotCache records one resolution result per URL for the lifetime of a
// run, including negative results, so a failing lookup is never repeated.
// Growth is unbounded but bounded in practice by the finite input set.
type SnapshotCache struct {
	mu      sync.RWMutex
	entries map[string]string // url -> snapshot URL, "" for "no snapshot"
}

// NewSnapshotCache creates an empty per-run snapshot cache.
func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{entries: make(map[string]string)}
}

// Lookup returns the cached snapshot URL for the source URL. The second
// return distinguishes "never resolved" from a cached negative result.
func (c *SnapshotCache) Lookup(url string) (snapshot string, cached bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot, cached = c.entries[url]
	return snapshot, cached
}

// Store records the resolution result. An empty snapshot is the explicit
// "no snapshot" marker.
func (c *SnapshotCache) Store(url, snapshot string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = snapshot
}

// Len returns the number of cached resolutions.
func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
