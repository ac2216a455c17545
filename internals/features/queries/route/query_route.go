package route

import (
	"github.com/gofiber/fiber/v2"

	"reach_backend/internals/features/queries/controller"
)

func QueryRoutes(r fiber.Router, ctrl *controller.QueryController) {
	r.Get("/", ctrl.List)
	r.Post("/replied", ctrl.SetReplied)
}
