package product

import (
	"context"
	"errors"
	"fmt"
	"myStyleShop/domain"
	"myStyleShop/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindVisibleByCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Category, error)
}

type productService struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
}

func NewProductService(productRepo ProductRepository, categoryRepo CategoryRepository) *productService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

// GetProduct is the single-product half of the catalog read interface.
func (s *productService) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return nil, err
	}

	return &product, nil
}

// ListVisibleProductsInCategory is the listing half of the catalog
// read interface: every visible product in a category, id ascending.
func (s *productService) ListVisibleProductsInCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error) {
	if categoryID == 0 {
		logger.Error("invalid category id")
		return nil, errors.New("invalid category id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when list products in category")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindVisibleByCategory(ctx, categoryID)
	if err != nil {
		logger.Error("Failed to list products in category", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.ProductName == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.CategoryID == 0 {
		logger.Error("Invalid product data: category is required")
		return nil, errors.New("category is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	// Verify category exists
	if _, err := s.categoryRepo.FindByID(ctx, product.CategoryID); err != nil {
		logger.Error("category not found", err)
		return nil, errors.New("category not found")
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully")

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		logger.Error("Invalid product data: ID is required")
		return nil, errors.New("product ID is required")
	}

	// Validation
	if product.ProductName == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if product.CategoryID != 0 {
		if _, err := s.categoryRepo.FindByID(ctx, product.CategoryID); err != nil {
			logger.Error("category not found", err)
			return nil, errors.New("category not found")
		}
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, product.ID); err != nil {
		logger.Error("product not found", err)
		return nil, domain.ErrProductNotFound
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// Get updated product from database
	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated success")

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("Invalid product id when deleting product")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		logger.Error("product not found", err)
		return domain.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted success")

	return nil
}
