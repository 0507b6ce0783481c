package recommender

// Config holds the similarity weights. The blend is deliberately plain
// configuration, not derived statistically: nothing in the catalog
// justifies one fixed mix, so operators tune it per shop through the
// RECO_* environment variables.
type Config struct {
	// CollectionWeight multiplies the shared-collection count.
	CollectionWeight float64
	// AttributeWeight multiplies the shared (attribute, value) pair count.
	AttributeWeight float64
	// PriceWeight multiplies the inverse normalized price distance.
	PriceWeight float64
}

const (
	defaultCollectionWeight = 3.0
	defaultAttributeWeight  = 1.0
	defaultPriceWeight      = 0.5
)

func DefaultConfig() Config {
	return Config{
		CollectionWeight: defaultCollectionWeight,
		AttributeWeight:  defaultAttributeWeight,
		PriceWeight:      defaultPriceWeight,
	}
}

// normalize keeps scores non-negative: negative weights clamp to zero,
// and an all-zero blend falls back to the defaults so a blank
// environment still ranks meaningfully.
func (c Config) normalize() Config {
	if c.CollectionWeight < 0 {
		c.CollectionWeight = 0
	}
	if c.AttributeWeight < 0 {
		c.AttributeWeight = 0
	}
	if c.PriceWeight < 0 {
		c.PriceWeight = 0
	}

	if c.CollectionWeight == 0 && c.AttributeWeight == 0 && c.PriceWeight == 0 {
		return DefaultConfig()
	}

	return c
}
