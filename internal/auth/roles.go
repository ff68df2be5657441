package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

// RequireOwner restricts a route to OWNER callers. It must run after
// Middleware.Handle; a missing identity fails closed with the same
// response as a wrong role.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok || identity.Role != domain.RoleOwner {
			return apierror.NewUnauthorized("Admin only")
		}
		return c.Next()
	}
}
