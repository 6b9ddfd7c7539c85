package router

import (
	"rebooks/internal/adapter/api/handler"
	"rebooks/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupWishlistRouter(e *echo.Echo, wishlistHandler *handler.WishlistHandler, authMiddleware *middleware.AuthMiddleware) {
	wishlist := e.Group("/add-to-wishlist")
	wishlist.Use(authMiddleware.Authenticate)
	wishlist.POST("", wishlistHandler.Add)
	wishlist.GET("", wishlistHandler.List)
	wishlist.DELETE("/:id", wishlistHandler.Remove)
}
