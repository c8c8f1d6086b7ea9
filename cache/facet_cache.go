package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

const (
	DefaultFacetTTL = 30 * time.Second
	facetKey        = "catalog:facets:v1"
)

// ── Global facet distribution cache ─────────────────────────────────────────
// Shared by every instance through Redis. Counts may lag the index by at most
// the TTL; any item write invalidates them immediately.

type FacetCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFacetCache(rdb *redis.Client, ttl time.Duration) *FacetCache {
	if ttl <= 0 {
		ttl = DefaultFacetTTL
	}
	return &FacetCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached distribution. Any Redis failure is a miss.
func (c *FacetCache) Get(ctx context.Context) (models.FacetDistribution, bool) {
	raw, err := c.rdb.Get(ctx, facetKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[facet-cache] read failed: %v", err)
		}
		return nil, false
	}

	var dist models.FacetDistribution
	if err := json.Unmarshal(raw, &dist); err != nil {
		log.Printf("[facet-cache] dropping corrupt entry: %v", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return dist, true
}

func (c *FacetCache) Set(ctx context.Context, dist models.FacetDistribution) {
	raw, err := json.Marshal(dist)
	if err != nil {
		log.Printf("[facet-cache] encode failed: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, facetKey, raw, c.ttl).Err(); err != nil {
		log.Printf("[facet-cache] write failed: %v", err)
	}
}

// Invalidate drops the cached distribution (call on any item create/update/delete).
func (c *FacetCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, facetKey).Err(); err != nil {
		log.Printf("[facet-cache] invalidate failed: %v", err)
	}
}
