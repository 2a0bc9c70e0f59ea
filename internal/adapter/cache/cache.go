// Package cache is the in-process store of resolved declensions, keyed by
// normalized word. It is safe for concurrent use; concurrent writers of the
// same key are last-writer-wins.
package cache

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/padezh/internal/domain"
)

// Stats is a point-in-time snapshot of cache usage.
type Stats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Cache maps words to resolved declensions. Stored values are shared: every
// hit returns the same pointer, so callers must treat them as read-only.
type Cache struct {
	lru    *expirable.LRU[string, *domain.Declension]
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a Cache. maxEntries 0 means unbounded; ttl 0 keeps entries
// for the lifetime of the process.
func New(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Cache{
		lru: expirable.NewLRU[string, *domain.Declension](maxEntries, nil, ttl),
	}
}

// Get returns the cached declension for word.
func (c *Cache) Get(word string) (*domain.Declension, bool) {
	d, ok := c.lru.Get(word)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return d, ok
}

// Add stores d under word, replacing any previous value.
func (c *Cache) Add(word string, d *domain.Declension) {
	c.lru.Add(word, d)
}

// Purge removes every entry. Hit and miss counters are kept.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Keys returns the cached words, oldest first.
func (c *Cache) Keys() []string {
	return c.lru.Keys()
}

// Stats returns current usage counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries: c.lru.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
