package details

import (
	"github.com/gofiber/fiber/v2"

	queryController "reach_backend/internals/features/queries/controller"
	queryRoute "reach_backend/internals/features/queries/route"
	queryService "reach_backend/internals/features/queries/service"
)

func QueryRoutes(r fiber.Router, d Deps, guard ...fiber.Handler) {
	svc := queryService.NewQueryService(d.DB, d.Logger)
	queryRoute.QueryRoutes(r.Group("/queries", guard...), queryController.NewQueryController(svc, d.Logger))
}
