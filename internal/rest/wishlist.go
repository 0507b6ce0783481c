package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"myStyleShop/business/wishlist"
	"myStyleShop/domain"
	"myStyleShop/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HeaderWishlistToken carries the owner token on every wishlist call.
// The token is the whole identity: no cookie, no session, no account.
const HeaderWishlistToken = "X-Wishlist-Token"

type (
	WishlistHandler struct {
		validate        *validator.Validate
		wishlistService WishlistService
		timeout         time.Duration
	}

	WishlistService interface {
		Start(ctx context.Context) (string, error)
		Add(ctx context.Context, ownerToken string, productID uint64) error
		Remove(ctx context.Context, ownerToken string, productID uint64) error
		List(ctx context.Context, ownerToken string) ([]domain.Product, error)
		Count(ctx context.Context, ownerToken string) (int64, error)
		Clear(ctx context.Context, ownerToken string) error
	}

	AddWishlistItemRequest struct {
		ProductID uint64 `json:"product_id" validate:"required"`
	}
)

func NewWishlistHandler(svc WishlistService) *WishlistHandler {
	return &WishlistHandler{
		validate:        validator.New(),
		wishlistService: svc,
		timeout:         10 * time.Second,
	}
}

// POST /api/v1/wishlist/start
func (h *WishlistHandler) Start(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, err := h.wishlistService.Start(ctx)
	if err != nil {
		logger.Error("Failed to start wishlist", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]interface{}{
		"token": token,
	}))
}

// POST /api/v1/wishlist/items
func (h *WishlistHandler) AddItem(c echo.Context) error {
	token := c.Request().Header.Get(HeaderWishlistToken)
	if token == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing wishlist token"})
	}

	var req AddWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.wishlistService.Add(ctx, token, req.ProductID); err != nil {
		if errors.Is(err, wishlist.ErrInvalidOwnerToken) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to add wishlist item", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]interface{}{
		"product_id": req.ProductID,
	}))
}

// DELETE /api/v1/wishlist/items/:productID
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	token := c.Request().Header.Get(HeaderWishlistToken)
	if token == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing wishlist token"})
	}

	productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.wishlistService.Remove(ctx, token, productID); err != nil {
		if errors.Is(err, wishlist.ErrInvalidOwnerToken) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if errors.Is(err, domain.ErrWishlistLineNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to remove wishlist item", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"product_id": productID,
	}))
}

// GET /api/v1/wishlist
func (h *WishlistHandler) List(c echo.Context) error {
	token := c.Request().Header.Get(HeaderWishlistToken)
	if token == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing wishlist token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.wishlistService.List(ctx, token)
	if err != nil {
		if errors.Is(err, wishlist.ErrInvalidOwnerToken) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to list wishlist", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

// GET /api/v1/wishlist/count
func (h *WishlistHandler) Count(c echo.Context) error {
	token := c.Request().Header.Get(HeaderWishlistToken)
	if token == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing wishlist token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.wishlistService.Count(ctx, token)
	if err != nil {
		if errors.Is(err, wishlist.ErrInvalidOwnerToken) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to count wishlist", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"count": count,
	}))
}

// DELETE /api/v1/wishlist
func (h *WishlistHandler) Clear(c echo.Context) error {
	token := c.Request().Header.Get(HeaderWishlistToken)
	if token == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing wishlist token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.wishlistService.Clear(ctx, token); err != nil {
		if errors.Is(err, wishlist.ErrInvalidOwnerToken) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to clear wishlist", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("wishlist cleared"))
}
