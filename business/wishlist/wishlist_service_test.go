package wishlist

import (
	"context"
	"errors"
	"testing"

	"myStyleShop/domain"

	"github.com/google/uuid"
)

type fakeWishlistRepo struct {
	lines []domain.WishlistLine
}

func (f *fakeWishlistRepo) AddLine(ctx context.Context, line *domain.WishlistLine) error {
	for _, existing := range f.lines {
		if existing.OwnerToken == line.OwnerToken && existing.ProductID == line.ProductID {
			return nil
		}
	}
	f.lines = append(f.lines, *line)
	return nil
}

func (f *fakeWishlistRepo) RemoveLine(ctx context.Context, ownerToken string, productID uint64) error {
	for i, existing := range f.lines {
		if existing.OwnerToken == ownerToken && existing.ProductID == productID {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return nil
		}
	}
	return domain.ErrWishlistLineNotFound
}

func (f *fakeWishlistRepo) FindByOwner(ctx context.Context, ownerToken string) ([]domain.WishlistLine, error) {
	var out []domain.WishlistLine
	for _, existing := range f.lines {
		if existing.OwnerToken == ownerToken {
			out = append(out, existing)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) CountByOwner(ctx context.Context, ownerToken string) (int64, error) {
	lines, _ := f.FindByOwner(ctx, ownerToken)
	return int64(len(lines)), nil
}

func (f *fakeWishlistRepo) ClearByOwner(ctx context.Context, ownerToken string) error {
	var kept []domain.WishlistLine
	for _, existing := range f.lines {
		if existing.OwnerToken != ownerToken {
			kept = append(kept, existing)
		}
	}
	f.lines = kept
	return nil
}

type fakeProductRepo struct {
	products map[uint64]domain.Product
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func newService() (*Service, *fakeWishlistRepo, *fakeProductRepo) {
	wlRepo := &fakeWishlistRepo{}
	prodRepo := &fakeProductRepo{products: map[uint64]domain.Product{
		1: {ID: 1, IsVisible: true},
		2: {ID: 2, IsVisible: true},
		3: {ID: 3, IsVisible: false},
	}}
	return NewService(wlRepo, prodRepo), wlRepo, prodRepo
}

func TestStartMintsDistinctTokens(t *testing.T) {
	svc, _, _ := newService()

	first, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Fatal("expected distinct tokens")
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("token is not a UUID: %v", err)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	svc, _, _ := newService()
	token, _ := svc.Start(context.Background())

	if err := svc.Add(context.Background(), token, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Add(context.Background(), token, 1); err != nil {
		t.Fatalf("repeated add must be a no-op: %v", err)
	}

	count, err := svc.Count(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 line, got %d", count)
	}
}

func TestAddRejectsMissingAndHiddenProducts(t *testing.T) {
	svc, _, _ := newService()
	token, _ := svc.Start(context.Background())

	if err := svc.Add(context.Background(), token, 999); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for missing product, got %v", err)
	}
	if err := svc.Add(context.Background(), token, 3); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for hidden product, got %v", err)
	}
}

func TestAddRejectsMalformedToken(t *testing.T) {
	svc, _, _ := newService()

	if err := svc.Add(context.Background(), "not-a-uuid", 1); !errors.Is(err, ErrInvalidOwnerToken) {
		t.Fatalf("expected ErrInvalidOwnerToken, got %v", err)
	}
}

func TestListDropsVanishedProducts(t *testing.T) {
	svc, _, prodRepo := newService()
	token, _ := svc.Start(context.Background())

	for _, id := range []uint64{1, 2} {
		if err := svc.Add(context.Background(), token, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Product 2 disappears from the catalog after being saved.
	delete(prodRepo.products, 2)

	products, err := svc.List(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("expected only product 1, got %v", products)
	}
}

func TestRemoveAndClear(t *testing.T) {
	svc, _, _ := newService()
	token, _ := svc.Start(context.Background())

	if err := svc.Remove(context.Background(), token, 1); !errors.Is(err, domain.ErrWishlistLineNotFound) {
		t.Fatalf("expected ErrWishlistLineNotFound, got %v", err)
	}

	for _, id := range []uint64{1, 2} {
		if err := svc.Add(context.Background(), token, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := svc.Remove(context.Background(), token, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Clear(context.Background(), token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := svc.Count(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty wishlist, got %d lines", count)
	}
}

func TestOwnersAreIsolated(t *testing.T) {
	svc, _, _ := newService()
	alice, _ := svc.Start(context.Background())
	bob, _ := svc.Start(context.Background())

	if err := svc.Add(context.Background(), alice, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := svc.Count(context.Background(), bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("bob sees alice's lines: %d", count)
	}
}
