package badge

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pointmotion/engage-backend/internal/domain"
)

// catalogCache holds the active badge catalog with time-based expiration.
// The catalog is administrator-managed and changes rarely, so a short TTL
// keeps reads cheap without serving a retired badge for long.
type catalogCache struct {
	lru *expirable.LRU[string, []domain.Badge]
}

const catalogCacheKey = "active"

func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, []domain.Badge](CatalogCacheSize, nil, ttl),
	}
}

func (c *catalogCache) Get() ([]domain.Badge, bool) {
	return c.lru.Get(catalogCacheKey)
}

func (c *catalogCache) Set(badges []domain.Badge) {
	c.lru.Add(catalogCacheKey, badges)
}

func (c *catalogCache) Invalidate() {
	c.lru.Remove(catalogCacheKey)
}
