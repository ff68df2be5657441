package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

const identityKey = "auth_identity"

// Exact literal prefix, case-sensitive.
const bearerPrefix = "Bearer "

// IdentityVerifier resolves a bearer token into an identity.
type IdentityVerifier interface {
	VerifyToken(token string) (*domain.Identity, error)
}

// Middleware validates bearer tokens and attaches the caller identity to
// the request. Identity is only ever attached after successful
// verification.
type Middleware struct {
	verifier IdentityVerifier
}

// NewMiddleware constructs middleware.
func NewMiddleware(verifier IdentityVerifier) *Middleware {
	return &Middleware{verifier: verifier}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return apierror.NewUnauthorized("Missing or invalid token")
	}

	identity, err := m.verifier.VerifyToken(authHeader[len(bearerPrefix):])
	if err != nil {
		return apierror.NewUnauthorized("Invalid or expired token")
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}
