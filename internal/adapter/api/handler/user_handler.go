package handler

import (
	"net/http"

	"rebooks/internal/usecase"
	"rebooks/pkg/errors"
	"rebooks/pkg/response"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type registerRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role"`
}

// Register inserts a new user. Registering an email that already exists
// answers {acknowledged:false} and stores nothing.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return c.JSON(http.StatusOK, map[string]interface{}{"acknowledged": false})
		}
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"acknowledged": true,
		"insertedId":   user.Email,
	})
}

func (h *UserHandler) GetUser(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.Error(c, errors.BadRequest("Email is required", nil))
	}
	if email != c.Get("email").(string) {
		return response.Error(c, errors.Forbidden("Access denied", nil))
	}

	user, err := h.userUseCase.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// Verify marks a seller verified along with all of their products.
func (h *UserHandler) Verify(c echo.Context) error {
	email := c.Param("email")

	if err := h.userUseCase.Verify(c.Request().Context(), email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"verified": true})
}

func (h *UserHandler) Delete(c echo.Context) error {
	email := c.Param("email")

	if err := h.userUseCase.Delete(c.Request().Context(), email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

func (h *UserHandler) ListSellers(c echo.Context) error {
	sellers, err := h.userUseCase.ListSellers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, sellers)
}

func (h *UserHandler) ListBuyers(c echo.Context) error {
	buyers, err := h.userUseCase.ListBuyers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, buyers)
}
