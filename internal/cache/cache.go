package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	DefaultExpiration = 30 * time.Minute
	cleanupInterval   = 15 * time.Minute
)

// New returns an in-memory cache whose items expire after ttl of inactivity
// (callers refresh items by setting them again).
func New(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return cache.New(ttl, cleanupInterval)
}
