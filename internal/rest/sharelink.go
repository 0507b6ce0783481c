package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"myStyleShop/business/sharelink"
	"myStyleShop/domain"
	"myStyleShop/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	ShareLinkHandler struct {
		shareLinkService ShareLinkService
		timeout          time.Duration
	}

	ShareLinkService interface {
		Create(ctx context.Context, productID uint64) (domain.ShareLink, error)
		Resolve(ctx context.Context, token string) (uint64, error)
	}
)

func NewShareLinkHandler(svc ShareLinkService) *ShareLinkHandler {
	return &ShareLinkHandler{
		shareLinkService: svc,
		timeout:          10 * time.Second,
	}
}

// POST /api/v1/products/:id/share-link
func (h *ShareLinkHandler) Create(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	link, err := h.shareLinkService.Create(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to create share link", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(link))
}

// GET /api/v1/share/:token
func (h *ShareLinkHandler) Resolve(c echo.Context) error {
	token := c.Param("token")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	productID, err := h.shareLinkService.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, sharelink.ErrLinkExpired) {
			return c.JSON(http.StatusGone, ResponseError{Message: err.Error()})
		}
		if errors.Is(err, sharelink.ErrLinkInvalid) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to resolve share link", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"product_id": productID,
	}))
}
