package catalog

import (
	"sync"
	"time"

	"bookjourney/internal/entity"
)

const DefaultCacheTTL = time.Hour

type cacheEntry struct {
	items     []entity.CatalogItem
	expiresAt time.Time
}

// Cache is a process-local TTL cache for search results. Entries expire
// passively on the next lookup past their deadline; there is no sweep and
// no size bound. Concurrent misses on the same key are not deduplicated,
// the last writer wins.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return NewCacheWithClock(ttl, time.Now)
}

func NewCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (c *Cache) Get(key string) ([]entity.CatalogItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.items, true
}

func (c *Cache) Set(key string, items []entity.CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		items:     items,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
