package details

import (
	"github.com/gofiber/fiber/v2"

	paymentController "reach_backend/internals/features/workshops/payments/controller"
	paymentRoute "reach_backend/internals/features/workshops/payments/route"
	paymentService "reach_backend/internals/features/workshops/payments/service"
)

// WorkshopRoutes mounts /workshops on /api/admin behind guard.
func WorkshopRoutes(r fiber.Router, d Deps, guard ...fiber.Handler) {
	svc := paymentService.NewPaymentService(d.DB, d.Catalog, d.Artifacts, d.Mailer, d.Config.AppName, d.Logger)
	ctrl := paymentController.NewPaymentController(svc, d.Logger)
	paymentRoute.WorkshopPaymentRoutes(r.Group("/workshops", guard...), ctrl)
}
