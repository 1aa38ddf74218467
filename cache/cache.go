package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var IndicesCache = cache.New(1*time.Minute, 5*time.Minute)
var RateLimiterCache = cache.New(5*time.Minute, 10*time.Minute)

// NewSeriesCache builds the TTL store for delivered series. The TTL comes
// from config, so the store is constructed at wire-up time and injected
// rather than shared as a package global.
func NewSeriesCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, 2*ttl)
}
