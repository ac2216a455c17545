package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reach_backend/internals/features/queries/dto"
	"reach_backend/internals/features/queries/service"
	"reach_backend/internals/helpers"
)

type QueryController struct {
	svc    *service.QueryService
	logger zerolog.Logger
}

func NewQueryController(svc *service.QueryService, logger zerolog.Logger) *QueryController {
	return &QueryController{svc: svc, logger: logger}
}

// GET /api/admin/queries
func (ctrl *QueryController) List(c *fiber.Ctx) error {
	list, err := ctrl.svc.FetchUnreplied(c.UserContext())
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Queries fetched successfully", list)
}

// POST /api/admin/queries/replied
func (ctrl *QueryController) SetReplied(c *fiber.Ctx) error {
	var body dto.SetRepliedRequest
	if err := helpers.BindJSON(c, &body); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	id, err := uuid.Parse(body.ID)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, helpers.BadRequest("Invalid Query ID"))
	}

	if err := ctrl.svc.SetReplied(c.UserContext(), id); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Updated successfully", nil)
}
