package domain

// SimilarityScore is the ephemeral result of scoring one candidate
// against a source product. Never persisted; recomputed per request or
// cached externally with a TTL the recommender does not manage.
type SimilarityScore struct {
	ProductID         uint64  `json:"product_id"`
	SharedCollections int     `json:"shared_collections"`
	SharedAttributes  int     `json:"shared_attributes"`
	PriceProximity    float64 `json:"price_proximity"` // 0–1
	Score             float64 `json:"score"`           // weighted sum of the three terms
}
