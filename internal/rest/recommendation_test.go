package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"myStyleShop/business/recommender"
	"myStyleShop/domain"

	"github.com/labstack/echo/v4"
)

type fakeRecommendService struct {
	ids       []uint64
	err       error
	lastID    uint64
	lastLimit int
}

func (f *fakeRecommendService) Recommend(ctx context.Context, productID uint64, limit int) ([]uint64, error) {
	f.lastID = productID
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.ids, nil
}

func performRecommend(svc *fakeRecommendService, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id/recommendations")
	c.SetParamNames("id")
	c.SetParamValues(strings.Split(strings.TrimPrefix(target, "/products/"), "/")[0])

	handler := NewRecommendationHandler(svc)
	_ = handler.Recommend(c)

	return rec
}

func TestRecommendHandler_OK(t *testing.T) {
	svc := &fakeRecommendService{ids: []uint64{2, 3}}

	rec := performRecommend(svc, "/products/1/recommendations?n=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastID != 1 || svc.lastLimit != 2 {
		t.Fatalf("service called with (%d, %d)", svc.lastID, svc.lastLimit)
	}
	if !strings.Contains(rec.Body.String(), "product_ids") {
		t.Fatalf("missing product_ids in body: %s", rec.Body.String())
	}
}

func TestRecommendHandler_DefaultsAbsentN(t *testing.T) {
	svc := &fakeRecommendService{ids: []uint64{2}}

	rec := performRecommend(svc, "/products/1/recommendations")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastLimit != 10 {
		t.Fatalf("absent n should default to 10, got %d", svc.lastLimit)
	}
}

func TestRecommendHandler_ExplicitZeroIsBadRequest(t *testing.T) {
	svc := &fakeRecommendService{err: recommender.ErrInvalidLimit}

	rec := performRecommend(svc, "/products/1/recommendations?n=0")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for n=0, got %d", rec.Code)
	}
}

func TestRecommendHandler_UnknownProductIs404(t *testing.T) {
	svc := &fakeRecommendService{err: domain.ErrProductNotFound}

	rec := performRecommend(svc, "/products/999/recommendations?n=5")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRecommendHandler_GarbageIDIsBadRequest(t *testing.T) {
	svc := &fakeRecommendService{ids: []uint64{2}}

	rec := performRecommend(svc, "/products/abc/recommendations")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}
	if svc.lastID != 0 {
		t.Fatal("service must not be called for a malformed id")
	}
}
