package router

import (
	"rebooks/internal/adapter/api/handler"
	"rebooks/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.GetUser, authMiddleware.Authenticate)

	admin := e.Group("")
	admin.Use(authMiddleware.Authenticate, roleMiddleware.AdminOnly)
	admin.PUT("/users/:email", userHandler.Verify)
	admin.DELETE("/users/:email", userHandler.Delete)
	admin.GET("/sellers", userHandler.ListSellers)
	admin.GET("/buyers", userHandler.ListBuyers)
}
