package itemvalue

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the value cache. A zero Size disables caching.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: 4096, TTL: 10 * time.Minute}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cacheKey struct {
	strategy pricing.Strategy
	name     string
	area     string
}

type cachedValue struct {
	Version  string
	Category domain.Category
	Value    float64
	CachedAt time.Time
}

// valueCache memoizes classified item values. Entries are keyed by strategy so that
// routers derived with WithStrategy can share one cache.
type valueCache struct {
	lru    *expirable.LRU[cacheKey, *cachedValue]
	hits   atomic.Int64
	misses atomic.Int64
}

func newValueCache(cfg CacheConfig) *valueCache {
	if cfg.Size <= 0 {
		return nil
	}
	return &valueCache{
		lru: expirable.NewLRU[cacheKey, *cachedValue](cfg.Size, nil, cfg.TTL),
	}
}

func (c *valueCache) Get(key cacheKey) (*cachedValue, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	// Check version - auto-invalidate if mismatch
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry, true
}

func (c *valueCache) Set(key cacheKey, category domain.Category, value float64) {
	c.lru.Add(key, &cachedValue{
		Version:  CacheSchemaVersion,
		Category: category,
		Value:    value,
		CachedAt: time.Now(),
	})
}

func (c *valueCache) Clear() {
	c.lru.Purge()
}

func (c *valueCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
