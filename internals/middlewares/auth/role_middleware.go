package auth

import (
	"github.com/gofiber/fiber/v2"

	"reach_backend/internals/helpers"
)

// OnlyRoles lets the request through when the role set by AuthMiddleware is
// one of roles.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	if customMessage == "" {
		customMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helpers.LocRole).(string)
		if !ok || role == "" {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return helpers.JsonError(c, fiber.StatusForbidden, customMessage)
	}
}
