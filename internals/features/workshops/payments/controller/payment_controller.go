package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reach_backend/internals/features/workshops/payments/dto"
	"reach_backend/internals/features/workshops/payments/service"
	"reach_backend/internals/helpers"
)

type PaymentController struct {
	svc    *service.PaymentService
	logger zerolog.Logger
}

func NewPaymentController(svc *service.PaymentService, logger zerolog.Logger) *PaymentController {
	return &PaymentController{svc: svc, logger: logger}
}

func workshopIDParam(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("workshop_id")
	if err != nil || id <= 0 {
		return 0, helpers.BadRequest("Invalid Workshop ID")
	}
	return id, nil
}

// GET /api/admin/workshops/payments/pending
func (ctrl *PaymentController) Pending(c *fiber.Ctx) error {
	rows, err := ctrl.svc.PendingPayments(c.UserContext())
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Pending Payment List fetched successfully", rows)
}

// GET /api/admin/workshops/:workshop_id/unpaid
func (ctrl *PaymentController) Unpaid(c *fiber.Ctx) error {
	workshopID, err := workshopIDParam(c)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	rows, err := ctrl.svc.UnpaidUsers(c.UserContext(), workshopID)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Users unpaid for the workshop", rows)
}

// GET /api/admin/workshops/:workshop_id/registrations
func (ctrl *PaymentController) Registrations(c *fiber.Ctx) error {
	workshopID, err := workshopIDParam(c)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	rows, err := ctrl.svc.Registrations(c.UserContext(), workshopID)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Workshop Registration List fetched successfully", rows)
}

// GET /api/admin/workshops/:workshop_id/payments
func (ctrl *PaymentController) Payments(c *fiber.Ctx) error {
	workshopID, err := workshopIDParam(c)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	rows, err := ctrl.svc.Payments(c.UserContext(), workshopID)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Workshop Payment List fetched successfully", rows)
}

// POST /api/admin/workshops/payments/cash
func (ctrl *PaymentController) Cash(c *fiber.Ctx) error {
	actor, err := helpers.GetAdminID(c)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	var body dto.CashPaymentRequest
	if err := helpers.BindJSON(c, &body); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, helpers.BadRequest("Invalid User ID"))
	}

	payment, err := ctrl.svc.CashPayment(c.UserContext(), actor, userID, body.WorkshopID)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Cash Payment done successful and workshop registered", dto.FromModel(payment))
}

// POST /api/admin/workshops/payments/success
func (ctrl *PaymentController) Success(c *fiber.Ctx) error {
	actor, err := helpers.GetAdminID(c)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	var body dto.ResolvePaymentRequest
	if err := helpers.BindJSON(c, &body); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	payment, err := ctrl.svc.VerifySuccess(c.UserContext(), actor, body.TransactionID)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Payment done successful and workshop registered", dto.FromModel(payment))
}

// POST /api/admin/workshops/payments/failure
func (ctrl *PaymentController) Failure(c *fiber.Ctx) error {
	actor, err := helpers.GetAdminID(c)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	var body dto.ResolvePaymentRequest
	if err := helpers.BindJSON(c, &body); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	payment, err := ctrl.svc.VerifyFailure(c.UserContext(), actor, body.TransactionID)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Payment Failed", dto.FromModel(payment))
}
