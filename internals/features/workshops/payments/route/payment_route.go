package route

import (
	"github.com/gofiber/fiber/v2"

	"reach_backend/internals/features/workshops/payments/controller"
)

// WorkshopPaymentRoutes mounts under /api/admin/workshops; every route needs an admin.
func WorkshopPaymentRoutes(r fiber.Router, ctrl *controller.PaymentController) {
	payments := r.Group("/payments")
	payments.Get("/pending", ctrl.Pending)
	payments.Post("/cash", ctrl.Cash)
	payments.Post("/success", ctrl.Success)
	payments.Post("/failure", ctrl.Failure)

	r.Get("/:workshop_id/unpaid", ctrl.Unpaid)
	r.Get("/:workshop_id/registrations", ctrl.Registrations)
	r.Get("/:workshop_id/payments", ctrl.Payments)
}
