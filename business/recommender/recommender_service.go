package recommender

import (
	"context"
	"errors"
	"fmt"
	"myStyleShop/domain"
	"myStyleShop/pkg/logger"
	"sort"
)

// ErrInvalidLimit is returned when a caller asks for a non-positive
// number of recommendations. Never defaulted here: the HTTP layer owns
// the "n absent means 10" convenience.
var ErrInvalidLimit = errors.New("limit must be positive")

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindVisibleByCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error)
}

// Service ranks catalog products by attribute overlap with a source
// product. It is a pure function of its inputs and the current catalog
// snapshot: no writes, no hidden randomness, safe under any number of
// concurrent calls.
type Service struct {
	productRepo ProductRepository
	cfg         Config
}

func NewService(productRepo ProductRepository, cfg Config) *Service {
	return &Service{
		productRepo: productRepo,
		cfg:         cfg.normalize(),
	}
}

// Recommend returns up to limit product ids most similar to productID,
// best first. Candidates come from the source product's own category,
// which bounds the scoring pass to one list query.
func (s *Service) Recommend(ctx context.Context, productID uint64, limit int) ([]uint64, error) {
	scores, err := s.rank(ctx, productID, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(scores))
	for _, sc := range scores {
		ids = append(ids, sc.ProductID)
	}

	return ids, nil
}

// Explain is Recommend with the score breakdown kept, for the
// dashboard's ranking-inspection view.
func (s *Service) Explain(ctx context.Context, productID uint64, limit int) ([]domain.SimilarityScore, error) {
	return s.rank(ctx, productID, limit)
}

func (s *Service) rank(ctx context.Context, productID uint64, limit int) ([]domain.SimilarityScore, error) {
	if limit <= 0 {
		logger.Error("invalid recommendation limit", "limit", limit)
		return nil, ErrInvalidLimit
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	source, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		logger.Error("failed to load source product", err)
		return nil, fmt.Errorf("load source product: %w", err)
	}

	// A hidden product has no detail page, so it has no rail either.
	if !source.IsVisible {
		return nil, domain.ErrProductNotFound
	}

	candidates, err := s.productRepo.FindVisibleByCategory(ctx, source.CategoryID)
	if err != nil {
		logger.Error("failed to load candidate products", err)
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	src := newScoringProfile(source)

	scores := make([]domain.SimilarityScore, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == source.ID {
			continue
		}

		sc, err := src.score(candidate, s.cfg)
		if err != nil {
			// A broken candidate degrades the rail, never the page.
			logger.Warn("skipping unscorable candidate", "product_id", candidate.ID, "error", err)
			continue
		}

		scores = append(scores, sc)
	}

	// Descending score, ascending id on ties, so repeated calls with
	// the same catalog produce the same rail.
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].ProductID < scores[j].ProductID
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}

	return scores, nil
}
