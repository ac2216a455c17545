package route

import (
	"github.com/gofiber/fiber/v2"

	"reach_backend/internals/features/admins/auth/controller"
)

// AdminAuthPublicRoutes mounts login; limiters run before the handler.
func AdminAuthPublicRoutes(r fiber.Router, ctrl *controller.AuthController, limiter fiber.Handler) {
	r.Post("/login", limiter, ctrl.Login)
}

// AdminAuthRoutes mounts the routes that need an authenticated admin; guard
// runs before each handler.
func AdminAuthRoutes(r fiber.Router, ctrl *controller.AuthController, guard ...fiber.Handler) {
	r.Post("/add", withGuard(guard, ctrl.AddAdmin)...)
	r.Post("/change-password", withGuard(guard, ctrl.ChangePassword)...)
}

func withGuard(guard []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(guard)+1)
	out = append(out, guard...)
	return append(out, h)
}
