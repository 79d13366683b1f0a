package middleware

import (
	"errors"

	"go-dealership-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ActorKey is the request-locals key holding the resolved *model.User.
// Every handler receives the session through this explicit object; there is
// no ambient session state.
const ActorKey = "actor"

// IdentityHeader carries the caller-supplied opaque identifier. It is
// trusted as presented, with no session, cookie or token verification.
const IdentityHeader = "X-User-ID"

// RequireIdentity resolves the caller from the identity header and stores
// the full user record in the request locals.
func RequireIdentity(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.Resolve(c.Get(IdentityHeader))
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
			}
			return c.Status(401).JSON(fiber.Map{"error": "Unknown identity"})
		}

		c.Locals(ActorKey, user)
		return c.Next()
	}
}
