package middleware

import (
	"net/http"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// AdminOnly rejects callers whose stored role is not Admin. Rejection
// halts the chain; the handler never runs.
func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require((*entity.User).IsAdmin, "Admin privileges required", next)
}

// SellerOnly rejects callers whose stored role is not Seller.
func (m *RoleMiddleware) SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require((*entity.User).IsSeller, "Seller privileges required", next)
}

func (m *RoleMiddleware) require(allowed func(*entity.User) bool, message string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, ok := c.Get("email").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByEmail(c.Request().Context(), email)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, message)
		}

		if !allowed(user) {
			return echo.NewHTTPError(http.StatusForbidden, message)
		}

		return next(c)
	}
}
