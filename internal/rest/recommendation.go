package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"myStyleShop/business/recommender"
	"myStyleShop/domain"
	"myStyleShop/pkg/logger"
	"myStyleShop/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		recommendService RecommendationService
		timeout          time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, productID uint64, limit int) ([]uint64, error)
	}

	// RankingInspector is the uncached score-breakdown view for the
	// dashboard; the public rail never exposes score components.
	RankingInspector interface {
		Explain(ctx context.Context, productID uint64, limit int) ([]domain.SimilarityScore, error)
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendService: svc,
		timeout:          10 * time.Second,
	}
}

// GET /api/v1/products/:id/recommendations?n=10
//
// The related-products rail. An absent n means 10; an explicit n <= 0
// is the caller's bug and comes back 400. An unknown or hidden product
// is 404 so the storefront renders an empty rail, never a broken page.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	limit := 10
	if nStr := c.QueryParam("n"); nStr != "" {
		limit, err = strconv.Atoi(nStr)
		if err != nil {
			logger.Error("Invalid recommendation limit", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	ids, err := h.recommendService.Recommend(ctx, productID, limit)
	metrics.RecommendationLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, recommender.ErrInvalidLimit) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to compute recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendationsServed.Add(float64(len(ids)))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"product_id":  productID,
		"product_ids": ids,
	}))
}

// RecommendationDebugHandler serves the admin-only breakdown view,
// always against the uncached recommender so scores reflect the live
// catalog.
type RecommendationDebugHandler struct {
	inspector RankingInspector
	timeout   time.Duration
}

func NewRecommendationDebugHandler(inspector RankingInspector) *RecommendationDebugHandler {
	return &RecommendationDebugHandler{
		inspector: inspector,
		timeout:   10 * time.Second,
	}
}

// GET /api/v1/admin/products/:id/recommendations?n=10
func (h *RecommendationDebugHandler) Explain(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	limit := 10
	if nStr := c.QueryParam("n"); nStr != "" {
		limit, err = strconv.Atoi(nStr)
		if err != nil {
			logger.Error("Invalid recommendation limit", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	scores, err := h.inspector.Explain(ctx, productID, limit)
	if err != nil {
		if errors.Is(err, recommender.ErrInvalidLimit) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to explain recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(scores))
}
