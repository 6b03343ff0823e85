package nethys

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a search result list is reused before the
// index is asked again.
const DefaultCacheTTL = 300 * time.Second

type cacheEntry struct {
	records    []Record
	insertedAt time.Time
}

// Cache is an in-memory TTL cache for search results. Expired entries are
// purged lazily on lookup; there is no size cap since the key space is
// bounded by distinct queries seen within one TTL window.
type Cache struct {
	ttl   time.Duration
	clock Clock

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCache builds a cache with the given TTL. A zero ttl falls back to
// DefaultCacheTTL; a nil clock falls back to the system clock.
func NewCache(ttl time.Duration, clock Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = NewClock()
	}
	return &Cache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached records for key, treating expired entries as absent
// and deleting them on the way out.
func (c *Cache) Get(key string) ([]Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Now().Sub(entry.insertedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.records, true
}

// Set stores records under key, stamped with the current time. Writes are
// last-write-wins; concurrent misses storing the same key are harmless.
func (c *Cache) Set(key string, records []Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{records: records, insertedAt: c.clock.Now()}
}
