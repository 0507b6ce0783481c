package sharelink

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"myStyleShop/domain"

	"github.com/pobyzaarif/goshortcute"
)

const testKey = "0123456789abcdef"

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

func newService(ttl time.Duration) *Service {
	repo := &fakeProductRepo{products: map[uint64]domain.Product{
		1: {ID: 1, IsVisible: true},
		2: {ID: 2, IsVisible: false},
	}}
	return NewService(repo, testKey, ttl, "https://shop.example.com/")
}

func TestCreateAndResolveRoundTrip(t *testing.T) {
	svc := newService(time.Hour)

	link, err := svc.Create(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if link.ProductID != 1 {
		t.Fatalf("unexpected product id: %d", link.ProductID)
	}
	if !strings.HasPrefix(link.URL, "https://shop.example.com/api/v1/share/") {
		t.Fatalf("unexpected url: %s", link.URL)
	}

	productID, err := svc.Resolve(context.Background(), link.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if productID != 1 {
		t.Fatalf("resolved wrong product: %d", productID)
	}
}

func TestCreateRejectsMissingAndHiddenProducts(t *testing.T) {
	svc := newService(time.Hour)

	if _, err := svc.Create(context.Background(), 999); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for missing product, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 2); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for hidden product, got %v", err)
	}
}

func TestResolveRejectsGarbageToken(t *testing.T) {
	svc := newService(time.Hour)

	for _, token := range []string{"", "garbage"} {
		if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, ErrLinkInvalid) {
			t.Fatalf("token %q: expected ErrLinkInvalid, got %v", token, err)
		}
	}
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	svc := newService(-time.Minute)

	link, err := svc.Create(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), link.Token); !errors.Is(err, ErrLinkExpired) {
		t.Fatalf("expected ErrLinkExpired, got %v", err)
	}
}

func TestResolveRejectsTamperedCiphertext(t *testing.T) {
	svc := newService(time.Hour)

	link, err := svc.Create(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Flip every ciphertext byte: still valid base64 of valid block
	// length, but the decrypted padding is garbage.
	raw := []byte(goshortcute.StringtoBase64Decode(link.Token))
	for i := range raw {
		raw[i] ^= 0xff
	}
	tampered := goshortcute.StringtoBase64Encode(string(raw))

	if _, err := svc.Resolve(context.Background(), tampered); !errors.Is(err, ErrLinkInvalid) {
		t.Fatalf("expected ErrLinkInvalid for tampered token, got %v", err)
	}
}

func TestResolveRejectsTokenFromOtherKey(t *testing.T) {
	svc := newService(time.Hour)
	other := NewService(&fakeProductRepo{products: map[uint64]domain.Product{
		1: {ID: 1, IsVisible: true},
	}}, "fedcba9876543210", time.Hour, "https://shop.example.com")

	link, err := other.Create(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), link.Token); !errors.Is(err, ErrLinkInvalid) {
		t.Fatalf("expected ErrLinkInvalid for foreign token, got %v", err)
	}
}
