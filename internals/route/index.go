package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"reach_backend/internals/constants"
	authModel "reach_backend/internals/features/admins/auth/model"
	"reach_backend/internals/middlewares/auth"
	routeDetails "reach_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, d routeDetails.Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB, d.Config.Environment)

	api := app.Group("/api/admin")

	routeDetails.AdminPublicRoutes(api, d)

	// The guard is attached per feature so unknown /api/admin paths still 404.
	d.Logger.Debug().Msg("mounting admin routes")
	guard := []fiber.Handler{
		auth.AuthMiddleware(d.Tokens, d.Logger),
		auth.OnlyRoles(constants.RoleErrorAdmin("the admin API"), authModel.RoleAdmin),
	}
	routeDetails.AdminRoutes(api, d, guard...)
	routeDetails.WorkshopRoutes(api, d, guard...)
	routeDetails.QueryRoutes(api, d, guard...)
}
