package handler

import (
	"rebooks/internal/domain/entity"
	"rebooks/internal/usecase"
	"rebooks/pkg/errors"
	"rebooks/pkg/response"
	"rebooks/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	authUseCase    *usecase.AuthUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, authUseCase *usecase.AuthUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		authUseCase:    authUseCase,
	}
}

type createProductRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	CategoryID    string  `json:"category_id" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64 `json:"original_price"`
	Condition     string  `json:"condition" validate:"omitempty,oneof=excellent good fair"`
	Location      string  `json:"location"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerEmail := c.Get("email").(string)

	product, err := h.productUseCase.Create(c.Request().Context(), sellerEmail, usecase.CreateProductInput{
		Title:         req.Title,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Condition:     req.Condition,
		Location:      req.Location,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	products, _, err := h.productUseCase.List(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) ListAdvertised(c echo.Context) error {
	products, err := h.productUseCase.ListAdvertised(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) ListMine(c echo.Context) error {
	email, err := h.ownEmail(c)
	if err != nil {
		return response.Error(c, err)
	}

	products, err := h.productUseCase.ListBySeller(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) ListSold(c echo.Context) error {
	email, err := h.ownEmail(c)
	if err != nil {
		return response.Error(c, err)
	}

	products, err := h.productUseCase.ListSold(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

// Advertise promotes the product. Safe to repeat.
func (h *ProductHandler) Advertise(c echo.Context) error {
	sellerEmail := c.Get("email").(string)

	if err := h.productUseCase.Advertise(c.Request().Context(), c.Param("id"), sellerEmail); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"advertisement": true})
}

func (h *ProductHandler) Report(c echo.Context) error {
	if err := h.productUseCase.Report(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"reported": true})
}

func (h *ProductHandler) ListReported(c echo.Context) error {
	products, err := h.productUseCase.ListReported(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	callerEmail := c.Get("email").(string)

	isAdmin, err := h.authUseCase.HasRole(c.Request().Context(), callerEmail, entity.RoleAdmin)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.Delete(c.Request().Context(), c.Param("id"), callerEmail, isAdmin); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

// ownEmail returns the email query parameter after checking it matches
// the authenticated caller.
func (h *ProductHandler) ownEmail(c echo.Context) (string, error) {
	email := c.QueryParam("email")
	if email == "" {
		return "", errors.BadRequest("Email is required", nil)
	}
	if email != c.Get("email").(string) {
		return "", errors.Forbidden("Access denied", nil)
	}
	return email, nil
}
