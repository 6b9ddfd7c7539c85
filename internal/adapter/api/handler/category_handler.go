package handler

import (
	"rebooks/internal/usecase"
	"rebooks/pkg/response"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

// Products lists the available products filed under a category.
func (h *CategoryHandler) Products(c echo.Context) error {
	products, err := h.categoryUseCase.Products(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}
