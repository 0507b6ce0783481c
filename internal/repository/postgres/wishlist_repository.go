package postgres

import (
	"context"
	"fmt"
	"myStyleShop/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistRepository struct {
	DB *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{
		DB: db,
	}
}

// AddLine inserts a wishlist line. Adds are idempotent: the
// (owner_token, product_id) unique index plus DO NOTHING makes a
// repeated add leave the original line untouched.
func (r *WishlistRepository) AddLine(ctx context.Context, line *domain.WishlistLine) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_token"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(line).Error; err != nil {
		return fmt.Errorf("failed to add wishlist line: %w", err)
	}

	return nil
}

func (r *WishlistRepository) RemoveLine(ctx context.Context, ownerToken string, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("owner_token = ? AND product_id = ?", ownerToken, productID).
		Delete(&domain.WishlistLine{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove wishlist line: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrWishlistLineNotFound
	}

	return nil
}

func (r *WishlistRepository) FindByOwner(ctx context.Context, ownerToken string) ([]domain.WishlistLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var lines []domain.WishlistLine
	err := r.DB.WithContext(ctx).
		Where("owner_token = ?", ownerToken).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find wishlist lines: %w", err)
	}

	return lines, nil
}

func (r *WishlistRepository) CountByOwner(ctx context.Context, ownerToken string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.WishlistLine{}).
		Where("owner_token = ?", ownerToken).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count wishlist lines: %w", err)
	}

	return count, nil
}

func (r *WishlistRepository) ClearByOwner(ctx context.Context, ownerToken string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).
		Where("owner_token = ?", ownerToken).
		Delete(&domain.WishlistLine{}).Error; err != nil {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}

	return nil
}
