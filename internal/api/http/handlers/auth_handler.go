package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/auth"
	"github.com/Kevin6098/roomi-sub001/internal/service"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// AuthHandler exposes the login and identity endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.LoginRequest](c)
	if err != nil {
		return err
	}

	identity, token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{User: *identity, Token: token})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apierror.NewUnauthorized("Missing or invalid token")
	}
	return c.JSON(dto.MeResponse{User: *identity})
}
