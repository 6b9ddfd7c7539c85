package router

import (
	"rebooks/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCategoryRouter(e *echo.Echo, categoryHandler *handler.CategoryHandler) {
	e.GET("/category", categoryHandler.List)
	e.GET("/category/:id", categoryHandler.Products)
}
