package collection

import (
	"context"
	"errors"
	"fmt"
	"myStyleShop/domain"
	"myStyleShop/pkg/logger"
)

// CollectionRepository contract interface
type CollectionRepository interface {
	Create(ctx context.Context, collection *domain.Collection) error
	FindByID(ctx context.Context, id uint64) (domain.Collection, error)
	FindAll(ctx context.Context) ([]domain.Collection, error)
	Update(ctx context.Context, collection *domain.Collection) error
	Delete(ctx context.Context, id uint64) error
	AddProduct(ctx context.Context, collectionID, productID uint64) error
	RemoveProduct(ctx context.Context, collectionID, productID uint64) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type collectionService struct {
	collectionRepo CollectionRepository
	productRepo    ProductRepository
}

func NewCollectionService(collectionRepo CollectionRepository, productRepo ProductRepository) *collectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
	}
}

func (s *collectionService) GetAllCollections(ctx context.Context) ([]domain.Collection, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all collections")
		return nil, fmt.Errorf("context error: %w", err)
	}

	collections, err := s.collectionRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all collections", err)
		return nil, err
	}

	return collections, nil
}

func (s *collectionService) GetCollectionByID(ctx context.Context, id uint64) (domain.Collection, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get collection by id")
		return domain.Collection{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid collection id")
		return domain.Collection{}, errors.New("invalid collection id")
	}

	collection, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find collection", err)
		return domain.Collection{}, err
	}

	return collection, nil
}

func (s *collectionService) CreateCollection(ctx context.Context, collection *domain.Collection) (*domain.Collection, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create collection")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if collection.CollectionName == "" {
		logger.Error("Invalid collection data: collection name is required")
		return nil, errors.New("collection name is required")
	}

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		logger.Error("failed to create new collection", err)
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	logger.Info("collection created successfully")

	return collection, nil
}

func (s *collectionService) UpdateCollection(ctx context.Context, collection *domain.Collection) (*domain.Collection, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating collection")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if collection.ID == 0 {
		logger.Error("Invalid collection data: ID is required")
		return nil, errors.New("collection ID is required")
	}

	if collection.CollectionName == "" {
		logger.Error("Invalid collection data: collection name is required")
		return nil, errors.New("collection name is required")
	}

	if _, err := s.collectionRepo.FindByID(ctx, collection.ID); err != nil {
		logger.Error("collection not found", err)
		return nil, domain.ErrCollectionNotFound
	}

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		logger.Error("failed to update collection", err)
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	updatedCollection, err := s.collectionRepo.FindByID(ctx, collection.ID)
	if err != nil {
		logger.Error("failed to fetch updated collection", err)
		return nil, fmt.Errorf("failed to fetch updated collection: %w", err)
	}

	logger.Info("collection updated success")

	return &updatedCollection, nil
}

func (s *collectionService) DeleteCollection(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("Invalid collection id when deleting collection")
		return errors.New("invalid collection id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting collection")
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.collectionRepo.FindByID(ctx, id); err != nil {
		logger.Error("collection not found", err)
		return domain.ErrCollectionNotFound
	}

	if err := s.collectionRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete collection", err)
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	logger.Info("collection deleted success")

	return nil
}

// AddProduct puts a product into a collection. Both sides must exist;
// re-adding an existing member is a no-op.
func (s *collectionService) AddProduct(ctx context.Context, collectionID, productID uint64) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when adding product to collection")
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.collectionRepo.FindByID(ctx, collectionID); err != nil {
		logger.Error("collection not found", err)
		return domain.ErrCollectionNotFound
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		logger.Error("product not found", err)
		return domain.ErrProductNotFound
	}

	if err := s.collectionRepo.AddProduct(ctx, collectionID, productID); err != nil {
		logger.Error("failed to add product to collection", err)
		return fmt.Errorf("failed to add product to collection: %w", err)
	}

	logger.Info("product added to collection")

	return nil
}

func (s *collectionService) RemoveProduct(ctx context.Context, collectionID, productID uint64) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when removing product from collection")
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.collectionRepo.FindByID(ctx, collectionID); err != nil {
		logger.Error("collection not found", err)
		return domain.ErrCollectionNotFound
	}

	if err := s.collectionRepo.RemoveProduct(ctx, collectionID, productID); err != nil {
		logger.Error("failed to remove product from collection", err)
		return err
	}

	logger.Info("product removed from collection")

	return nil
}
