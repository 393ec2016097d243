package handler

import (
	"net/http"

	"elegance/internal/delivery/http/response"
	domainerrors "elegance/internal/domain/errors"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupInput is the signup request body.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for session handlers.
type AuthHandler struct {
	uc usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Login successful")
}

// Signup handles the signup request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.Signup(c.Request().Context(), input.Name, input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Account created")
}

// Logout clears the session record.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Profile returns the current session record.
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return domainerrors.ErrNotAuthenticated
	}

	return response.Success(c, http.StatusOK, user, "")
}
