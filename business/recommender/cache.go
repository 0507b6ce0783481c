package recommender

import (
	"context"
	"fmt"
	"myStyleShop/pkg/logger"
	"time"
)

// Recommender is the ranking contract the cache wraps.
type Recommender interface {
	Recommend(ctx context.Context, productID uint64, limit int) ([]uint64, error)
}

// ResultCache stores computed rails under a string key with a TTL.
// Implemented by the Redis and in-process backends.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]uint64, bool, error)
	Set(ctx context.Context, key string, ids []uint64, ttl time.Duration) error
}

// CachedRecommender wraps a Recommender with a TTL'd result cache.
// The TTL policy lives here, not in the recommender: scores stay an
// ephemeral computed value either way. Cache trouble always degrades
// to recomputation, never to a failed request.
type CachedRecommender struct {
	inner Recommender
	cache ResultCache
	ttl   time.Duration
}

func NewCachedRecommender(inner Recommender, cache ResultCache, ttl time.Duration) *CachedRecommender {
	return &CachedRecommender{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

func (c *CachedRecommender) Recommend(ctx context.Context, productID uint64, limit int) ([]uint64, error) {
	key := cacheKey(productID, limit)

	ids, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("recommendation cache read failed", err)
	}
	if ok {
		CacheLookupsTotal.WithLabelValues("hit").Inc()
		return ids, nil
	}
	CacheLookupsTotal.WithLabelValues("miss").Inc()

	ids, err = c.inner.Recommend(ctx, productID, limit)
	if err != nil {
		// Invalid-argument and not-found outcomes are never cached.
		return nil, err
	}

	if err := c.cache.Set(ctx, key, ids, c.ttl); err != nil {
		logger.Warn("recommendation cache write failed", err)
	}

	return ids, nil
}

func cacheKey(productID uint64, limit int) string {
	return fmt.Sprintf("reco:%d:%d", productID, limit)
}
