package helpers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// JsonOK writes a 200 envelope of shape { message, data? }; data is omitted when nil.
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	body := fiber.Map{"message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonError writes an error envelope with the machine code of the status.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   statusToErrorCode(status),
	})
}

// JsonFail renders err as an error envelope. Internal causes are logged and
// replaced with a generic message; validator failures list the offending fields.
func JsonFail(c *fiber.Ctx, log zerolog.Logger, err error) error {
	appErr := AsAppError(err)
	if appErr.Kind == KindInternal {
		log.Error().Err(appErr.Err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
	}

	body := fiber.Map{
		"message": appErr.Message,
		"error":   string(appErr.Kind),
	}
	var ve validator.ValidationErrors
	if appErr.Kind == KindBadRequest && errors.As(appErr.Err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fieldErr := range ve {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		body["data"] = fields
	}
	return c.Status(appErr.Kind.Status()).JSON(body)
}

// ErrorHandler is the fiber.Config.ErrorHandler for errors that escape a handler.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return JsonError(c, fe.Code, fe.Message)
		}
		return JsonFail(c, log, err)
	}
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return string(KindBadRequest)
	case fiber.StatusUnauthorized:
		return string(KindUnauthorized)
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return string(KindNotFound)
	case fiber.StatusConflict:
		return string(KindConflict)
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return string(KindInternal)
		}
		return "ERROR"
	}
}
