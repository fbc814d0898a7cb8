package stockapi

import (
	"context"
	"sync"
	"time"

	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/service"
)

type cacheEntry struct {
	snapshot  entity.StockSnapshot
	expiresAt time.Time
}

// CachedSource wraps a StockSource with a short per-category TTL cache so
// repeated page loads and back-to-back checks don't hammer the upstream API.
// Errors are never cached: a failed fetch stays a failed fetch.
type CachedSource struct {
	source service.StockSource
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[entity.Category]cacheEntry
}

// NewCachedSource decorates source with a TTL cache.
func NewCachedSource(source service.StockSource, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source:  source,
		ttl:     ttl,
		entries: make(map[entity.Category]cacheEntry),
	}
}

// FetchSnapshot serves a fresh-enough cached snapshot or falls through to
// the wrapped source.
func (c *CachedSource) FetchSnapshot(ctx context.Context, category entity.Category) (entity.StockSnapshot, error) {
	c.mu.RLock()
	entry, ok := c.entries[category]
	c.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.snapshot, nil
	}

	snapshot, err := c.source.FetchSnapshot(ctx, category)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[category] = cacheEntry{snapshot: snapshot, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return snapshot, nil
}
