package handler

import (
	"errors"

	"go-dealership-api/internal/access"
	"go-dealership-api/internal/middleware"
	"go-dealership-api/internal/model"
	"go-dealership-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actor pulls the resolved session user set by the identity middleware.
func actor(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(middleware.ActorKey).(*model.User)
	return user
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrUnknownIdentity):
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, access.ErrForbidden),
		errors.Is(err, access.ErrMissingStoreAssignment):
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrStoreNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})

	// Validation failures, duplicate chassis/email/tax-id and the other
	// caller mistakes surface as 400. Persistence failures propagate from
	// the read handlers as 500 directly.
	default:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
}
