package router

import (
	"rebooks/internal/adapter/api/handler"
	"rebooks/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	// Token issuance is the entry point; everything else carries the token.
	e.GET("/jwt", authHandler.GetToken)

	roleChecks := e.Group("/users")
	roleChecks.Use(authMiddleware.Authenticate)
	roleChecks.GET("/admin/:email", authHandler.CheckAdmin)
	roleChecks.GET("/seller/:email", authHandler.CheckSeller)
	roleChecks.GET("/buyer/:email", authHandler.CheckBuyer)
}
