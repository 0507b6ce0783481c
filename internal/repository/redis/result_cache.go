package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache stores computed recommendation rails in Redis so
// concurrent storefront instances share one cache. Values are JSON
// arrays of product ids; expiry is left to Redis TTLs.
type RecommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{
		client: client,
	}
}

func (r *RecommendationCache) Get(ctx context.Context, key string) ([]uint64, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached rail from Redis: %w", err)
	}

	var ids []uint64
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached rail: %w", err)
	}

	return ids, true, nil
}

func (r *RecommendationCache) Set(ctx context.Context, key string, ids []uint64, ttl time.Duration) error {
	jsonData, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal rail: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store rail in Redis: %w", err)
	}

	return nil
}
