package postgres

import (
	"context"
	"errors"
	"fmt"
	"myStyleShop/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CollectionRepository struct {
	DB *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{
		DB: db,
	}
}

func (r *CollectionRepository) Create(ctx context.Context, collection *domain.Collection) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(collection).Error; err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

func (r *CollectionRepository) FindByID(ctx context.Context, id uint64) (domain.Collection, error) {
	if err := ctx.Err(); err != nil {
		return domain.Collection{}, fmt.Errorf("context error: %w", err)
	}

	var collection domain.Collection

	err := r.DB.WithContext(ctx).First(&collection, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Collection{}, domain.ErrCollectionNotFound
		}
		return domain.Collection{}, fmt.Errorf("failed to find collection: %w", err)
	}

	return collection, nil
}

func (r *CollectionRepository) FindAll(ctx context.Context) ([]domain.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var collections []domain.Collection
	err := r.DB.WithContext(ctx).Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find collections: %w", err)
	}

	return collections, nil
}

func (r *CollectionRepository) Update(ctx context.Context, collection *domain.Collection) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"collection_name": collection.CollectionName,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Collection{}).Where("id = ?", collection.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCollectionNotFound
	}

	return nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	// Memberships go first, the collection row second.
	if err := r.DB.WithContext(ctx).
		Where("collection_id = ?", id).
		Delete(&domain.CollectionProduct{}).Error; err != nil {
		return fmt.Errorf("failed to delete collection memberships: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Collection{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCollectionNotFound
	}

	return nil
}

// AddProduct records membership. Re-adding an existing member is a
// no-op rather than an error.
func (r *CollectionRepository) AddProduct(ctx context.Context, collectionID, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	row := domain.CollectionProduct{
		CollectionID: collectionID,
		ProductID:    productID,
	}

	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add product to collection: %w", err)
	}

	return nil
}

func (r *CollectionRepository) RemoveProduct(ctx context.Context, collectionID, productID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("collection_id = ? AND product_id = ?", collectionID, productID).
		Delete(&domain.CollectionProduct{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove product from collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not in collection")
	}

	return nil
}
