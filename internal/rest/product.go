package rest

import (
	"context"
	"errors"
	"myStyleShop/domain"
	"myStyleShop/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uint64) (*domain.Product, error)
	ListVisibleProductsInCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	ProductName string                 `json:"product_name" validate:"required"`
	CategoryID  uint64                 `json:"category_id" validate:"required"`
	Attributes  map[string]interface{} `json:"attributes"`
	Price       float64                `json:"price" validate:"required,gt=0"`
	IsVisible   *bool                  `json:"is_visible"`
}

type UpdateProductRequest struct {
	ProductName string                 `json:"product_name" validate:"required"`
	CategoryID  uint64                 `json:"category_id" validate:"required"`
	Attributes  map[string]interface{} `json:"attributes"`
	Price       float64                `json:"price" validate:"required,gt=0"`
	IsVisible   *bool                  `json:"is_visible"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	// ?category= narrows the listing to one category's visible
	// products, the storefront's listing-page query.
	if categoryStr := c.QueryParam("category"); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
		if err != nil {
			logger.Error("Invalid category id", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}

		products, err := h.productService.ListVisibleProductsInCategory(ctx, categoryID)
		if err != nil {
			logger.Error("Failed to list products in category", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":  "successfully get products in category",
			"products": products,
		})
	}

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProduct(ctx, productId)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	product := &domain.Product{
		ProductName: req.ProductName,
		CategoryID:  req.CategoryID,
		Attributes:  req.Attributes,
		Price:       req.Price,
		IsVisible:   isVisible,
	}

	newProduct, err := h.productService.CreateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to create Product", err)
		// Check if it's a validation error
		if err.Error() == "product name is required" ||
			err.Error() == "category is required" ||
			err.Error() == "category not found" ||
			err.Error() == "price must be greater than 0" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product successfully created",
		"product": newProduct,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	product := &domain.Product{
		ID:          productId,
		ProductName: req.ProductName,
		CategoryID:  req.CategoryID,
		Attributes:  req.Attributes,
		Price:       req.Price,
		IsVisible:   isVisible,
	}

	updateProduct, err := h.productService.UpdateProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to update Product", err)
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		// Check if it's a validation error
		if err.Error() == "product ID is required" ||
			err.Error() == "product name is required" ||
			err.Error() == "category not found" ||
			err.Error() == "price must be greater than 0" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": updateProduct,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.productService.DeleteProduct(ctx, productId)
	if err != nil {
		logger.Error("Failed to delete Product", err)
		if errors.Is(err, domain.ErrProductNotFound) || err.Error() == "invalid product id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "product successfully deleted",
		"product_id": productId,
	})
}
