package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the configured origins; an empty list allows any
// origin without credentials.
func CorsMiddleware(origins []string) fiber.Handler {
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}

	cfg := cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}
	if len(allowed) > 0 && !(len(allowed) == 1 && allowed[0] == "*") {
		cfg.AllowOrigins = strings.Join(allowed, ", ")
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
