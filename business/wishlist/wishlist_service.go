package wishlist

import (
	"context"
	"errors"
	"fmt"
	"myStyleShop/domain"
	"myStyleShop/pkg/logger"

	"github.com/google/uuid"
)

// ErrInvalidOwnerToken rejects owner tokens that are not UUIDs before
// they reach the database.
var ErrInvalidOwnerToken = errors.New("invalid wishlist token")

// WishlistRepository contract interface
type WishlistRepository interface {
	AddLine(ctx context.Context, line *domain.WishlistLine) error
	RemoveLine(ctx context.Context, ownerToken string, productID uint64) error
	FindByOwner(ctx context.Context, ownerToken string) ([]domain.WishlistLine, error)
	CountByOwner(ctx context.Context, ownerToken string) (int64, error)
	ClearByOwner(ctx context.Context, ownerToken string) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

// Service keeps per-owner saved-product sets. Ownership is an opaque
// token the caller presents on every call; nothing here is session or
// account state.
type Service struct {
	wishlistRepo WishlistRepository
	productRepo  ProductRepository
}

func NewService(wishlistRepo WishlistRepository, productRepo ProductRepository) *Service {
	return &Service{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Start mints a fresh owner token. No row is written until the first
// add, so abandoned tokens cost nothing.
func (s *Service) Start(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	return uuid.NewString(), nil
}

// Add saves a product on the owner's list. The product must exist and
// be visible; re-adding an already saved product is a no-op.
func (s *Service) Add(ctx context.Context, ownerToken string, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := validateOwnerToken(ownerToken); err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("failed to find product for wishlist add", err)
		return err
	}
	if !product.IsVisible {
		return domain.ErrProductNotFound
	}

	line := domain.WishlistLine{
		OwnerToken: ownerToken,
		ProductID:  productID,
	}

	if err := s.wishlistRepo.AddLine(ctx, &line); err != nil {
		logger.Error("failed to add wishlist line", err)
		return fmt.Errorf("failed to add wishlist line: %w", err)
	}

	WishlistOpsTotal.WithLabelValues("add").Inc()

	return nil
}

func (s *Service) Remove(ctx context.Context, ownerToken string, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := validateOwnerToken(ownerToken); err != nil {
		return err
	}

	if err := s.wishlistRepo.RemoveLine(ctx, ownerToken, productID); err != nil {
		if errors.Is(err, domain.ErrWishlistLineNotFound) {
			return err
		}
		logger.Error("failed to remove wishlist line", err)
		return fmt.Errorf("failed to remove wishlist line: %w", err)
	}

	WishlistOpsTotal.WithLabelValues("remove").Inc()

	return nil
}

// List resolves the owner's saved ids to products through the catalog
// read interface. A line whose product has since vanished or been
// hidden is silently dropped; the list keeps rendering.
func (s *Service) List(ctx context.Context, ownerToken string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateOwnerToken(ownerToken); err != nil {
		return nil, err
	}

	lines, err := s.wishlistRepo.FindByOwner(ctx, ownerToken)
	if err != nil {
		logger.Error("failed to load wishlist lines", err)
		return nil, fmt.Errorf("failed to load wishlist lines: %w", err)
	}

	products := make([]domain.Product, 0, len(lines))
	for _, line := range lines {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			logger.Warn("dropping wishlist line with unresolvable product", "product_id", line.ProductID)
			continue
		}
		if !product.IsVisible {
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// Count is the saved-line total shown on the wishlist badge. It counts
// stored lines, not resolvable products: the badge is a cheap query.
func (s *Service) Count(ctx context.Context, ownerToken string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	if err := validateOwnerToken(ownerToken); err != nil {
		return 0, err
	}

	count, err := s.wishlistRepo.CountByOwner(ctx, ownerToken)
	if err != nil {
		logger.Error("failed to count wishlist lines", err)
		return 0, fmt.Errorf("failed to count wishlist lines: %w", err)
	}

	return count, nil
}

func (s *Service) Clear(ctx context.Context, ownerToken string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := validateOwnerToken(ownerToken); err != nil {
		return err
	}

	if err := s.wishlistRepo.ClearByOwner(ctx, ownerToken); err != nil {
		logger.Error("failed to clear wishlist", err)
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}

	WishlistOpsTotal.WithLabelValues("clear").Inc()

	return nil
}

func validateOwnerToken(ownerToken string) error {
	if _, err := uuid.Parse(ownerToken); err != nil {
		logger.Error("invalid wishlist owner token")
		return ErrInvalidOwnerToken
	}

	return nil
}
