package recommender

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingRecommender struct {
	calls int
	ids   []uint64
	err   error
}

func (c *countingRecommender) Recommend(ctx context.Context, productID uint64, limit int) ([]uint64, error) {
	c.calls++
	return c.ids, c.err
}

type mapCache struct {
	entries  map[string][]uint64
	getErr   error
	setErr   error
	setCalls int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]uint64{}}
}

func (m *mapCache) Get(ctx context.Context, key string) ([]uint64, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	ids, ok := m.entries[key]
	return ids, ok, nil
}

func (m *mapCache) Set(ctx context.Context, key string, ids []uint64, ttl time.Duration) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = ids
	return nil
}

func TestCachedRecommender_HitSkipsInner(t *testing.T) {
	inner := &countingRecommender{ids: []uint64{2, 3}}
	cache := newMapCache()
	cached := NewCachedRecommender(inner, cache, time.Minute)

	first, err := cached.Recommend(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cached.Recommend(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("expected one inner call, got %d", inner.calls)
	}
	if len(first) != 2 || len(second) != 2 || second[0] != 2 || second[1] != 3 {
		t.Fatalf("unexpected rails: %v / %v", first, second)
	}
}

func TestCachedRecommender_DistinctLimitsDistinctKeys(t *testing.T) {
	inner := &countingRecommender{ids: []uint64{2}}
	cached := NewCachedRecommender(inner, newMapCache(), time.Minute)

	if _, err := cached.Recommend(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cached.Recommend(context.Background(), 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.calls != 2 {
		t.Fatalf("expected separate computations per limit, got %d calls", inner.calls)
	}
}

func TestCachedRecommender_CacheFailureFallsThrough(t *testing.T) {
	inner := &countingRecommender{ids: []uint64{7}}
	cache := newMapCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	cached := NewCachedRecommender(inner, cache, time.Minute)

	got, err := cached.Recommend(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("unexpected rail: %v", got)
	}
	if inner.calls != 1 {
		t.Fatalf("expected recomputation, got %d calls", inner.calls)
	}
}

func TestCachedRecommender_ErrorsAreNotCached(t *testing.T) {
	inner := &countingRecommender{err: ErrInvalidLimit}
	cache := newMapCache()
	cached := NewCachedRecommender(inner, cache, time.Minute)

	_, err := cached.Recommend(context.Background(), 1, 0)
	if !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
	if cache.setCalls != 0 {
		t.Fatalf("error outcome must not be written to the cache")
	}
}
