package memcache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// RecommendationCache keeps recently computed recommendation rails in
// process memory. It satisfies the recommender's ResultCache contract
// for single-instance deployments where Redis is not worth running.
//
// The expirable LRU applies one TTL to every entry, fixed at
// construction; the per-call ttl argument is accepted for interface
// compatibility and ignored.
type RecommendationCache struct {
	lru *expirable.LRU[string, []uint64]
}

func NewRecommendationCache(size int, ttl time.Duration) *RecommendationCache {
	if size <= 0 {
		size = 1024
	}

	return &RecommendationCache{
		lru: expirable.NewLRU[string, []uint64](size, nil, ttl),
	}
}

func (c *RecommendationCache) Get(ctx context.Context, key string) ([]uint64, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	ids, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}

	return ids, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, key string, ids []uint64, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.lru.Add(key, ids)

	return nil
}
