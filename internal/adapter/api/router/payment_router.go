package router

import (
	"rebooks/internal/adapter/api/handler"
	"rebooks/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, paymentHandler *handler.PaymentHandler, authMiddleware *middleware.AuthMiddleware) {
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, authMiddleware.Authenticate)
	e.POST("/payment", paymentHandler.Record, authMiddleware.Authenticate)
}
