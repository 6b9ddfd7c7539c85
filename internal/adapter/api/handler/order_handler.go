package handler

import (
	"rebooks/internal/usecase"
	"rebooks/pkg/errors"
	"rebooks/pkg/response"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type placeOrderRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	MeetingPoint string `json:"meeting_point"`
	Phone        string `json:"phone"`
}

func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerEmail := c.Get("email").(string)

	order, err := h.orderUseCase.Place(c.Request().Context(), buyerEmail, usecase.PlaceOrderInput{
		ProductID:    req.ProductID,
		MeetingPoint: req.MeetingPoint,
		Phone:        req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	email, err := h.ownEmail(c)
	if err != nil {
		return response.Error(c, err)
	}

	orders, err := h.orderUseCase.ListByBuyer(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

// ListBuyers answers a seller's my-buyers page: the orders placed on
// their products.
func (h *OrderHandler) ListBuyers(c echo.Context) error {
	email, err := h.ownEmail(c)
	if err != nil {
		return response.Error(c, err)
	}

	orders, err := h.orderUseCase.ListBySeller(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	callerEmail := c.Get("email").(string)

	order, err := h.orderUseCase.Get(c.Request().Context(), c.Param("id"), callerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	callerEmail := c.Get("email").(string)

	if err := h.orderUseCase.Cancel(c.Request().Context(), c.Param("id"), callerEmail); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

func (h *OrderHandler) ownEmail(c echo.Context) (string, error) {
	email := c.QueryParam("email")
	if email == "" {
		return "", errors.BadRequest("Email is required", nil)
	}
	if email != c.Get("email").(string) {
		return "", errors.Forbidden("Access denied", nil)
	}
	return email, nil
}
