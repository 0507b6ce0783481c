//go:build !integration

package recommender

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"myStyleShop/domain"
)

// scenario params
const (
	stressNumProducts = 2000
	stressNumWorkers  = 32
	stressCallsPer    = 50
)

func TestRank_ParallelCallsStayConsistent(t *testing.T) {
	repo := &fakeProductRepo{products: map[uint64]domain.Product{}}
	for id := uint64(1); id <= stressNumProducts; id++ {
		repo.products[id] = domain.Product{
			ID:          id,
			CategoryID:  catShoes,
			IsVisible:   true,
			Price:       float64(10 + id%37),
			Collections: collections(id % 5),
			Attributes: map[string]interface{}{
				"color": []interface{}{fmt.Sprintf("c%d", id%7)},
			},
		}
	}

	svc := NewService(repo, DefaultConfig())

	want, err := svc.Recommend(context.Background(), 1, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The recommender holds no mutable state, so any interleaving of
	// concurrent calls over the same snapshot must agree.
	var wg sync.WaitGroup
	errs := make(chan error, stressNumWorkers)

	for w := 0; w < stressNumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < stressCallsPer; i++ {
				got, err := svc.Recommend(context.Background(), 1, 25)
				if err != nil {
					errs <- err
					return
				}
				if len(got) != len(want) {
					errs <- fmt.Errorf("length diverged: %d vs %d", len(got), len(want))
					return
				}
				for j := range want {
					if got[j] != want[j] {
						errs <- fmt.Errorf("position %d diverged: %d vs %d", j, got[j], want[j])
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		t.Fatal(err)
	}
}
