package router

import (
	"rebooks/internal/adapter/api/handler"
	"rebooks/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Wishlist *handler.WishlistHandler
	Payment  *handler.PaymentHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, h.Auth, authMiddleware)
	SetupUserRouter(e, h.User, authMiddleware, roleMiddleware)
	SetupCategoryRouter(e, h.Category)
	SetupProductRouter(e, h.Product, authMiddleware, roleMiddleware)
	SetupOrderRouter(e, h.Order, authMiddleware, roleMiddleware)
	SetupWishlistRouter(e, h.Wishlist, authMiddleware)
	SetupPaymentRouter(e, h.Payment, authMiddleware)
}
