package pubdocs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCardCacheGetPut(t *testing.T) {
	c := NewCardCache(time.Minute, 4)

	_, ok := c.Get("Intro")
	assert.False(t, ok)

	c.Put("Intro", []byte("png"))
	got, ok := c.Get("Intro")
	assert.True(t, ok)
	assert.Equal(t, []byte("png"), got)
}

func TestCardCacheExpires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCardCache(time.Minute, 4)
	c.now = func() time.Time { return now }

	c.Put("Intro", []byte("png"))
	now = now.Add(59 * time.Second)
	_, ok := c.Get("Intro")
	assert.True(t, ok, "fresh inside TTL")

	now = now.Add(2 * time.Second)
	_, ok = c.Get("Intro")
	assert.False(t, ok, "stale after TTL")
}

func TestCardCacheEvictsOldest(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCardCache(time.Hour, 2)
	c.now = func() time.Time { return now }

	c.Put("a", []byte("a"))
	now = now.Add(time.Second)
	c.Put("b", []byte("b"))
	now = now.Add(time.Second)
	c.Put("c", []byte("c"))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry evicted")
	_, ok = c.Get("c")
	assert.True(t, ok)

	c.Put("b", []byte("b2"))
	assert.Equal(t, 2, c.Len(), "overwriting does not evict")
}

func TestCardCacheInvalidate(t *testing.T) {
	c := NewCardCache(time.Hour, 2)
	c.Put("a", []byte("a"))
	c.Invalidate()
	assert.Equal(t, 0, c.Len())
}
