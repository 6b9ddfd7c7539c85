package handler

import (
	"net/http"

	"rebooks/internal/domain/entity"
	"rebooks/internal/usecase"
	"rebooks/pkg/errors"
	"rebooks/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// GetToken issues an access token for a registered email. Unknown emails
// get 403 with an empty token rather than an error envelope.
func (h *AuthHandler) GetToken(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.Error(c, errors.BadRequest("Email is required", nil))
	}

	tok, err := h.authUseCase.GenerateToken(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, "FORBIDDEN") {
			return c.JSON(http.StatusForbidden, map[string]string{"accessToken": ""})
		}
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"accessToken": tok})
}

func (h *AuthHandler) CheckAdmin(c echo.Context) error {
	return h.checkRole(c, entity.RoleAdmin, "isAdmin")
}

func (h *AuthHandler) CheckSeller(c echo.Context) error {
	return h.checkRole(c, entity.RoleSeller, "isSeller")
}

func (h *AuthHandler) CheckBuyer(c echo.Context) error {
	return h.checkRole(c, entity.RoleBuyer, "isBuyer")
}

func (h *AuthHandler) checkRole(c echo.Context, role, field string) error {
	email := c.Param("email")

	match, err := h.authUseCase.HasRole(c.Request().Context(), email, role)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{field: match})
}
