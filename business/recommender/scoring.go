package recommender

import (
	"fmt"
	"math"
	"myStyleShop/domain"
)

// scoringProfile is the source product flattened into the sets the
// similarity terms compare against, built once per ranking pass.
type scoringProfile struct {
	price       float64
	collections map[uint64]struct{}
	attributes  map[string]struct{}
}

func newScoringProfile(p domain.Product) scoringProfile {
	profile := scoringProfile{
		price:       p.Price,
		collections: make(map[uint64]struct{}, len(p.Collections)),
		attributes:  make(map[string]struct{}),
	}

	for _, c := range p.Collections {
		profile.collections[c.ID] = struct{}{}
	}

	// The source's own attributes are allowed to be malformed: a bad
	// pair just contributes nothing to any candidate.
	for _, pair := range attributePairs(p.Attributes) {
		profile.attributes[pair] = struct{}{}
	}

	return profile
}

// score computes the weighted similarity of one candidate against the
// profile. An unreadable attribute document fails the candidate so the
// caller can drop it.
func (sp scoringProfile) score(candidate domain.Product, cfg Config) (domain.SimilarityScore, error) {
	sharedCollections := 0
	for _, c := range candidate.Collections {
		if _, ok := sp.collections[c.ID]; ok {
			sharedCollections++
		}
	}

	// Distinct shared pairs: a candidate repeating a value must not
	// count the same pair twice.
	sharedAttributes := 0
	counted := make(map[string]struct{})
	for name, raw := range candidate.Attributes {
		values, err := attributeValues(raw)
		if err != nil {
			return domain.SimilarityScore{}, fmt.Errorf("attribute %q: %w", name, err)
		}
		for _, v := range values {
			pair := name + "=" + v
			if _, ok := sp.attributes[pair]; !ok {
				continue
			}
			if _, dup := counted[pair]; dup {
				continue
			}
			counted[pair] = struct{}{}
			sharedAttributes++
		}
	}

	proximity := priceProximity(sp.price, candidate.Price)

	return domain.SimilarityScore{
		ProductID:         candidate.ID,
		SharedCollections: sharedCollections,
		SharedAttributes:  sharedAttributes,
		PriceProximity:    proximity,
		Score: cfg.CollectionWeight*float64(sharedCollections) +
			cfg.AttributeWeight*float64(sharedAttributes) +
			cfg.PriceWeight*proximity,
	}, nil
}

// priceProximity maps a price pair to [0, 1]: 1 for equal prices
// (including both zero), falling toward 0 as the relative distance
// grows. Negative prices never reach the catalog but clamp anyway.
func priceProximity(a, b float64) float64 {
	if a == b {
		return 1
	}

	max := math.Max(math.Abs(a), math.Abs(b))
	if max == 0 {
		return 1
	}

	p := 1 - math.Abs(a-b)/max
	if p < 0 {
		return 0
	}

	return p
}

// attributePairs flattens a JSONB attribute document into "name=value"
// strings. Pairs that fail to decode are dropped; this is only used
// for the source side, where a bad pair cannot score anyway.
func attributePairs(doc map[string]interface{}) []string {
	var pairs []string
	for name, raw := range doc {
		values, err := attributeValues(raw)
		if err != nil {
			continue
		}
		for _, v := range values {
			pairs = append(pairs, name+"="+v)
		}
	}

	return pairs
}

// attributeValues decodes one attribute's value slot. The dashboard
// writes either a single string or an array of strings; anything else
// in the document is corrupt.
func attributeValues(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("non-string value %v", item)
			}
			values = append(values, s)
		}
		return values, nil
	case []string:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported value shape %T", raw)
	}
}
