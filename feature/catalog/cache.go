package catalog

import (
	"context"
	"sync"

	"catalog-manager/feature/catalog/feed"
	"catalog-manager/feature/catalog/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// loadKey is the single key used with the singleflight group; there is
// only one catalog to load.
const loadKey = "catalog"

// Cache memoizes the parsed catalog behind a single-flight load.
//
// The first Load fetches and parses the feed; concurrent callers join the
// in-flight load instead of triggering their own fetch. A successful
// result is kept for the process lifetime (until Clear); a failed load is
// never cached, so the next Load retries from scratch. The cached slice
// is shared between callers and must be treated as read-only — the query
// engine always copies.
type Cache struct {
	source FeedSource
	logger *zap.Logger

	mu         sync.RWMutex
	records    []models.ProductRecord
	loaded     bool
	malformed  int
	duplicates int

	sf singleflight.Group
}

// NewCache creates a cache around the given feed source.
func NewCache(source FeedSource, logger *zap.Logger) *Cache {
	return &Cache{source: source, logger: logger}
}

// Load returns the parsed catalog, fetching and parsing the feed at most
// once until Clear is called.
func (c *Cache) Load(ctx context.Context) ([]models.ProductRecord, error) {
	// Fast path: already memoized.
	c.mu.RLock()
	if c.loaded {
		records := c.records
		c.mu.RUnlock()
		return records, nil
	}
	c.mu.RUnlock()

	// Slow path: join or start the single in-flight load.
	result, err, _ := c.sf.Do(loadKey, func() (any, error) {
		// Double-check: another flight may have completed between the
		// fast path and entering the group.
		c.mu.RLock()
		if c.loaded {
			records := c.records
			c.mu.RUnlock()
			return records, nil
		}
		c.mu.RUnlock()

		text, err := c.source.FetchFeed(ctx)
		if err != nil {
			return nil, err
		}

		parsed := feed.Parse(text)
		c.logger.Info("Catalog feed parsed",
			zap.Int("records", len(parsed.Records)),
			zap.Int("malformed", parsed.Malformed),
			zap.Int("duplicates", parsed.Duplicates))

		c.mu.Lock()
		c.records = parsed.Records
		c.malformed = parsed.Malformed
		c.duplicates = parsed.Duplicates
		c.loaded = true
		c.mu.Unlock()

		return parsed.Records, nil
	})
	if err != nil {
		return nil, err
	}

	records, _ := result.([]models.ProductRecord)
	return records, nil
}

// Clear drops the memoized catalog. An in-flight load is allowed to
// finish; its result will be visible until the next Clear.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.records = nil
	c.loaded = false
	c.malformed = 0
	c.duplicates = 0
	c.mu.Unlock()
}

// Stats reports the cache state for diagnostics.
func (c *Cache) Stats() (loaded bool, total, malformed, duplicates int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded, len(c.records), c.malformed, c.duplicates
}
