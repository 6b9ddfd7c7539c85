package router

import (
	"rebooks/internal/adapter/api/handler"
	"rebooks/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	e.GET("/products", productHandler.List)
	e.GET("/advertise", productHandler.ListAdvertised)

	// Owner-or-admin check happens in the use case.
	e.DELETE("/products/:id", productHandler.Delete, authMiddleware.Authenticate)
	e.PUT("/reported-product/:id", productHandler.Report, authMiddleware.Authenticate)

	seller := e.Group("")
	seller.Use(authMiddleware.Authenticate, roleMiddleware.SellerOnly)
	seller.POST("/products", productHandler.Create)
	seller.PUT("/products/:id", productHandler.Advertise)
	seller.GET("/my-products", productHandler.ListMine)
	seller.GET("/sold-products", productHandler.ListSold)

	admin := e.Group("")
	admin.Use(authMiddleware.Authenticate, roleMiddleware.AdminOnly)
	admin.GET("/reported-product", productHandler.ListReported)
}
