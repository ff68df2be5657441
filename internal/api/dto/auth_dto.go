package dto

import (
	"strings"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims and lowercases the email before validation.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginResponse is the success shape of the login endpoint.
type LoginResponse struct {
	User  domain.Identity `json:"user"`
	Token string          `json:"token"`
}

// MeResponse is the shape of the identity endpoint.
type MeResponse struct {
	User domain.Identity `json:"user"`
}
