package helpers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth and request middlewares.
const (
	LocAdminID   = "admin_id"
	LocRole      = "role"
	LocRequestID = "reqid"
)

var validate = validator.New()

// BindJSON decodes the request body into dst and runs its validate tags.
func BindJSON(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return &AppError{Kind: KindBadRequest, Message: "Invalid request body", Err: err}
	}
	return Validate(dst)
}

// Validate runs the validate tags of v.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return &AppError{Kind: KindBadRequest, Message: "Validation failed", Err: err}
	}
	return nil
}

// GetAdminID returns the authenticated admin id stored by the auth middleware.
func GetAdminID(c *fiber.Ctx) (uuid.UUID, error) {
	switch v := c.Locals(LocAdminID).(type) {
	case uuid.UUID:
		if v != uuid.Nil {
			return v, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, Unauthorized("Unauthorized")
}
