package themecolor

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/codr1/tintkit/internal/color"
)

type cacheKey struct {
	seed color.Color
	dark bool
}

// Cache memoizes schemes by exact seed channels and mode. It is safe for
// concurrent use.
type Cache struct {
	schemes *lru.Cache[cacheKey, Scheme]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// CacheStats is a point-in-time view of cache effectiveness.
type CacheStats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// NewCache creates a cache holding at most size schemes.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}
	schemes, err := lru.New[cacheKey, Scheme](size)
	if err != nil {
		return nil, fmt.Errorf("create scheme cache: %w", err)
	}
	return &Cache{schemes: schemes}, nil
}

// Get returns the cached scheme for (seed, isDark), building it on a miss.
// Concurrent misses for the same key may both build; the results are equal.
func (c *Cache) Get(seed color.Color, isDark bool) Scheme {
	key := cacheKey{seed: seed, dark: isDark}
	if s, ok := c.schemes.Get(key); ok {
		c.hits.Add(1)
		return s
	}
	c.misses.Add(1)
	s := Build(seed, isDark)
	c.schemes.Add(key, s)
	return s
}

// Warm builds and stores the scheme for (seed, isDark) without touching the
// hit/miss counters. It reports whether the entry was newly added.
func (c *Cache) Warm(seed color.Color, isDark bool) bool {
	key := cacheKey{seed: seed, dark: isDark}
	if c.schemes.Contains(key) {
		return false
	}
	c.schemes.Add(key, Build(seed, isDark))
	return true
}

func (c *Cache) Len() int {
	return c.schemes.Len()
}

func (c *Cache) Purge() {
	c.schemes.Purge()
}

func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.schemes.Len(),
	}
}
