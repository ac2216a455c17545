package details

import (
	"github.com/gofiber/fiber/v2"

	authController "reach_backend/internals/features/admins/auth/controller"
	authRoute "reach_backend/internals/features/admins/auth/route"
	authService "reach_backend/internals/features/admins/auth/service"
	"reach_backend/internals/middlewares"
)

func newAuthController(d Deps) *authController.AuthController {
	svc := authService.NewAuthService(d.DB, d.Tokens, d.Mailer, authService.Options{
		AppName:    d.Config.AppName,
		BcryptCost: d.Config.Auth.BcryptCost,
	}, d.Logger)
	return authController.NewAuthController(svc, d.Logger)
}

// AdminPublicRoutes mounts login on /api/admin.
func AdminPublicRoutes(r fiber.Router, d Deps) {
	authRoute.AdminAuthPublicRoutes(r, newAuthController(d), middlewares.LoginRateLimiter())
}

// AdminRoutes mounts account management on /api/admin behind guard.
func AdminRoutes(r fiber.Router, d Deps, guard ...fiber.Handler) {
	authRoute.AdminAuthRoutes(r, newAuthController(d), guard...)
}
