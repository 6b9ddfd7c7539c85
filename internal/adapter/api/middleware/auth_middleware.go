package middleware

import (
	"net/http"
	"strings"

	"rebooks/internal/infrastructure/token"

	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	tokenManager *token.Manager
}

func NewAuthMiddleware(tokenManager *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		tokenManager: tokenManager,
	}
}

// Authenticate verifies the bearer token and attaches the caller's email
// to the request context. A missing header is unauthenticated (401); a
// present but invalid or expired token is forbidden (403).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := m.tokenManager.Verify(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Invalid or expired token")
		}

		c.Set("email", claims.Email)

		return next(c)
	}
}
