package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reach_backend/internals/helpers"
	"reach_backend/internals/services/token"
)

// TokenVerifier checks a raw bearer token.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, uuid.UUID, error)
}

// AuthMiddleware requires a valid bearer token and stores the admin id and
// role in Locals.
func AuthMiddleware(verifier TokenVerifier, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := token.FromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		claims, adminID, err := verifier.Verify(raw)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		c.Locals(helpers.LocAdminID, adminID)
		c.Locals(helpers.LocRole, claims.Role)
		return c.Next()
	}
}
