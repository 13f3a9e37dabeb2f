package pubdocs

import (
	"sync"
	"time"
)

type cardEntry struct {
	data    []byte
	fetched time.Time
}

// CardCache is an in-memory cache of rendered social cards keyed by title,
// with a TTL and an upper bound on entries.
type CardCache struct {
	mu      sync.RWMutex
	entries map[string]cardEntry
	ttl     time.Duration
	max     int
	now     func() time.Time
}

// NewCardCache creates a CardCache holding at most max cards for ttl each.
func NewCardCache(ttl time.Duration, max int) *CardCache {
	return &CardCache{
		entries: make(map[string]cardEntry),
		ttl:     ttl,
		max:     max,
		now:     time.Now,
	}
}

func (c *CardCache) valid(e cardEntry) bool {
	return c.now().Sub(e.fetched) < c.ttl
}

// Get returns the cached card for key if it is still fresh.
func (c *CardCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.valid(e) {
		return nil, false
	}
	return e.data, true
}

// Put stores a card. When the cache is full, expired entries are dropped
// first, then the oldest one.
func (c *CardCache) Put(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.max {
		c.evict()
	}
	c.entries[key] = cardEntry{data: data, fetched: c.now()}
}

func (c *CardCache) evict() {
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if !c.valid(e) {
			delete(c.entries, k)
			continue
		}
		if oldestKey == "" || e.fetched.Before(oldest) {
			oldestKey, oldest = k, e.fetched
		}
	}
	if len(c.entries) >= c.max && oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Invalidate clears the cache.
func (c *CardCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cardEntry)
	c.mu.Unlock()
}

// Len reports the number of cached cards, fresh or not.
func (c *CardCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
