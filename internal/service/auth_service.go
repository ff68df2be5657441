package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Kevin6098/roomi-sub001/internal/auth"
	"github.com/Kevin6098/roomi-sub001/internal/config"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// invalidCredentials is returned for both an unknown email and a wrong
// password so the caller cannot tell which part failed.
const invalidCredentials = "Invalid email or password"

// AuthService coordinates login and token verification.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service from the immutable auth configuration.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
	}
}

// Login verifies credentials and issues a token. The email is trimmed and
// lowercased before lookup.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apierror.NewUnauthorized(invalidCredentials)
		}
		return nil, "", err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", apierror.NewUnauthorized(invalidCredentials)
	}

	identity := domain.IdentityOf(user)
	token, _, err := s.tokenMgr.Sign(identity)
	if err != nil {
		return nil, "", err
	}
	return &identity, token, nil
}

// VerifyToken decodes a token into an identity. Any decode, signature or
// expiry failure surfaces as auth.ErrTokenInvalid; the middleware maps it
// to the standard 401 shape.
func (s *AuthService) VerifyToken(token string) (*domain.Identity, error) {
	claims, err := s.tokenMgr.Verify(token)
	if err != nil {
		return nil, err
	}
	return &domain.Identity{ID: claims.ID, Email: claims.Email, Role: claims.Role}, nil
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
