package handler

import (
	"net/http"

	"rebooks/internal/usecase"
	"rebooks/pkg/errors"
	"rebooks/pkg/response"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type createIntentRequest struct {
	OrderID string  `json:"order_id"`
	Price   float64 `json:"price"`
}

// CreateIntent asks the processor for a payment intent and hands the
// client secret back to the frontend.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	callerEmail := c.Get("email").(string)

	intent, err := h.paymentUseCase.CreateIntent(c.Request().Context(), callerEmail, usecase.CreateIntentInput{
		OrderID: req.OrderID,
		Price:   req.Price,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"clientSecret": intent.ClientSecret})
}

type recordPaymentRequest struct {
	OrderID       string  `json:"order_id" validate:"required"`
	TransactionID string  `json:"transaction_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

// Record stores a completed payment and marks the order and product sold.
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	callerEmail := c.Get("email").(string)

	payment, err := h.paymentUseCase.Record(c.Request().Context(), callerEmail, usecase.RecordPaymentInput{
		OrderID:       req.OrderID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, payment)
}
