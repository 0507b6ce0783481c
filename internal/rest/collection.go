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

type CollectionService interface {
	GetAllCollections(ctx context.Context) ([]domain.Collection, error)
	GetCollectionByID(ctx context.Context, id uint64) (domain.Collection, error)
	CreateCollection(ctx context.Context, collection *domain.Collection) (*domain.Collection, error)
	UpdateCollection(ctx context.Context, collection *domain.Collection) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, id uint64) error
	AddProduct(ctx context.Context, collectionID, productID uint64) error
	RemoveProduct(ctx context.Context, collectionID, productID uint64) error
}

type CollectionHandler struct {
	collectionService CollectionService
	validator         *validator.Validate
	timeout           time.Duration
}

func NewCollectionHandler(collectionService CollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
		validator:         validator.New(),
		timeout:           10 * time.Second,
	}
}

type CreateCollectionRequest struct {
	CollectionName string `json:"collection_name" validate:"required"`
}

type UpdateCollectionRequest struct {
	CollectionName string `json:"collection_name" validate:"required"`
}

func (h *CollectionHandler) GetAllCollections(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	collections, err := h.collectionService.GetAllCollections(ctx)
	if err != nil {
		logger.Error("Failed to find all collections", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "successfully get all collections",
		"collections": collections,
	})
}

func (h *CollectionHandler) GetCollectionByID(c echo.Context) error {
	collectionIDStr := c.Param("id")

	collectionID, err := strconv.ParseUint(collectionIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid collection id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid collection id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	collection, err := h.collectionService.GetCollectionByID(ctx, collectionID)
	if err != nil {
		logger.Error("Failed to find collection", err)
		if errors.Is(err, domain.ErrCollectionNotFound) || err.Error() == "invalid collection id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully get collection",
		"collection": collection,
	})
}

func (h *CollectionHandler) CreateCollection(c echo.Context) error {
	var req CreateCollectionRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate collection request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	collection := &domain.Collection{
		CollectionName: req.CollectionName,
	}

	newCollection, err := h.collectionService.CreateCollection(ctx, collection)
	if err != nil {
		logger.Error("Failed to create collection", err)
		if err.Error() == "collection name is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "collection successfully created",
		"collection": newCollection,
	})
}

func (h *CollectionHandler) UpdateCollection(c echo.Context) error {
	collectionIDStr := c.Param("id")

	collectionID, err := strconv.ParseUint(collectionIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid collection id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid collection id"})
	}

	var req UpdateCollectionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate collection request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	collection := &domain.Collection{
		ID:             collectionID,
		CollectionName: req.CollectionName,
	}

	updatedCollection, err := h.collectionService.UpdateCollection(ctx, collection)
	if err != nil {
		logger.Error("Failed to update collection", err)
		if errors.Is(err, domain.ErrCollectionNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "collection ID is required" || err.Error() == "collection name is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully update collection",
		"collection": updatedCollection,
	})
}

func (h *CollectionHandler) DeleteCollection(c echo.Context) error {
	collectionIDStr := c.Param("id")

	collectionID, err := strconv.ParseUint(collectionIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid collection id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid collection id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.collectionService.DeleteCollection(ctx, collectionID)
	if err != nil {
		logger.Error("Failed to delete collection", err)
		if errors.Is(err, domain.ErrCollectionNotFound) || err.Error() == "invalid collection id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "collection successfully deleted",
		"collection_id": collectionID,
	})
}

func (h *CollectionHandler) AddProduct(c echo.Context) error {
	collectionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid collection id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid collection id"})
	}

	productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.collectionService.AddProduct(ctx, collectionID, productID); err != nil {
		logger.Error("Failed to add product to collection", err)
		if errors.Is(err, domain.ErrCollectionNotFound) || errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":       "product added to collection",
		"collection_id": collectionID,
		"product_id":    productID,
	})
}

func (h *CollectionHandler) RemoveProduct(c echo.Context) error {
	collectionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid collection id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid collection id"})
	}

	productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.collectionService.RemoveProduct(ctx, collectionID, productID); err != nil {
		logger.Error("Failed to remove product from collection", err)
		if errors.Is(err, domain.ErrCollectionNotFound) || err.Error() == "product not in collection" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "product removed from collection",
		"collection_id": collectionID,
		"product_id":    productID,
	})
}
