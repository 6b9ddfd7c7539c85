package handler

import (
	"net/http"

	"rebooks/internal/usecase"
	"rebooks/pkg/errors"
	"rebooks/pkg/response"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type addToWishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// Add puts a product on the caller's wishlist. A repeated add answers the
// already-in-wishlist message without writing a duplicate.
func (h *WishlistHandler) Add(c echo.Context) error {
	var req addToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userEmail := c.Get("email").(string)

	item, err := h.wishlistUseCase.Add(c.Request().Context(), userEmail, req.ProductID)
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return c.JSON(http.StatusOK, map[string]string{"message": "Product Already In Wishlist"})
		}
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *WishlistHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.Error(c, errors.BadRequest("Email is required", nil))
	}
	if email != c.Get("email").(string) {
		return response.Error(c, errors.Forbidden("Access denied", nil))
	}

	items, err := h.wishlistUseCase.List(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	callerEmail := c.Get("email").(string)

	if err := h.wishlistUseCase.Remove(c.Request().Context(), c.Param("id"), callerEmail); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}
