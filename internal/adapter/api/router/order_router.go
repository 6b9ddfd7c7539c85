package router

import (
	"rebooks/internal/adapter/api/handler"
	"rebooks/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, orderHandler *handler.OrderHandler, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	orders := e.Group("/my-orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.Place)
	orders.GET("", orderHandler.ListMine)
	orders.GET("/:id", orderHandler.Get)
	orders.DELETE("/:id", orderHandler.Cancel)

	e.GET("/my-buyers", orderHandler.ListBuyers, authMiddleware.Authenticate, roleMiddleware.SellerOnly)
}
