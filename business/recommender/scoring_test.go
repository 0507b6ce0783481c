package recommender

import (
	"testing"

	"myStyleShop/domain"
)

func TestPriceProximity(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"equal prices", 50, 50, 1},
		{"both zero", 0, 0, 1},
		{"half price", 50, 100, 0.5},
		{"order independent", 100, 50, 0.5},
		{"one zero", 0, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := priceProximity(tc.a, tc.b)
			if got != tc.want {
				t.Fatalf("priceProximity(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got < 0 || got > 1 {
				t.Fatalf("proximity %v outside [0,1]", got)
			}
		})
	}
}

func TestScore_CountsSharedPairsNotNames(t *testing.T) {
	source := domain.Product{
		ID:    1,
		Price: 10,
		Attributes: map[string]interface{}{
			"color": []interface{}{"red", "blue"},
			"size":  "M",
		},
	}
	candidate := domain.Product{
		ID:    2,
		Price: 10,
		Attributes: map[string]interface{}{
			"color": []interface{}{"blue", "green"},
			"size":  "L",
		},
	}

	sc, err := newScoringProfile(source).score(candidate, Config{AttributeWeight: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only color=blue matches; size differs in value.
	if sc.SharedAttributes != 1 {
		t.Fatalf("expected 1 shared pair, got %d", sc.SharedAttributes)
	}
	if sc.Score != 1 {
		t.Fatalf("expected score 1, got %v", sc.Score)
	}
}

func TestScore_RepeatedCandidateValueCountsOnce(t *testing.T) {
	source := domain.Product{
		ID:         1,
		Price:      10,
		Attributes: map[string]interface{}{"color": []interface{}{"blue"}},
	}
	candidate := domain.Product{
		ID:         2,
		Price:      10,
		Attributes: map[string]interface{}{"color": []interface{}{"blue", "blue"}},
	}

	sc, err := newScoringProfile(source).score(candidate, Config{AttributeWeight: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sc.SharedAttributes != 1 {
		t.Fatalf("duplicate value inflated shared pairs: got %d, want 1", sc.SharedAttributes)
	}
}

func TestScore_WeightedSum(t *testing.T) {
	cfg := Config{CollectionWeight: 3, AttributeWeight: 1, PriceWeight: 0.5}
	source := domain.Product{
		ID:          1,
		Price:       100,
		Collections: collections(10, 11),
		Attributes:  map[string]interface{}{"color": "red"},
	}
	candidate := domain.Product{
		ID:          2,
		Price:       100,
		Collections: collections(11, 12),
		Attributes:  map[string]interface{}{"color": "red"},
	}

	sc, err := newScoringProfile(source).score(candidate, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3×1 shared collection + 1×1 shared pair + 0.5×1 price.
	if sc.Score != 4.5 {
		t.Fatalf("expected score 4.5, got %v", sc.Score)
	}
	if sc.Score < 0 {
		t.Fatalf("score must be non-negative, got %v", sc.Score)
	}
}

func TestScore_MalformedCandidateAttributes(t *testing.T) {
	source := domain.Product{ID: 1, Price: 10}
	candidate := domain.Product{
		ID:         2,
		Price:      10,
		Attributes: map[string]interface{}{"color": map[string]interface{}{"nested": true}},
	}

	_, err := newScoringProfile(source).score(candidate, DefaultConfig())
	if err == nil {
		t.Fatal("expected error for malformed attribute document")
	}
}

func TestConfigNormalize(t *testing.T) {
	// Negative weights clamp rather than producing negative scores.
	cfg := Config{CollectionWeight: -1, AttributeWeight: 2, PriceWeight: -3}.normalize()
	if cfg.CollectionWeight != 0 || cfg.PriceWeight != 0 || cfg.AttributeWeight != 2 {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}

	// An all-zero blend falls back to the defaults.
	cfg = Config{}.normalize()
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults for zero config, got %+v", cfg)
	}
}
