package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"reach_backend/internals/features/admins/auth/dto"
	"reach_backend/internals/features/admins/auth/service"
	"reach_backend/internals/helpers"
)

type AuthController struct {
	svc    *service.AuthService
	logger zerolog.Logger
}

func NewAuthController(svc *service.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{svc: svc, logger: logger}
}

// POST /api/admin/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := helpers.BindJSON(c, &body); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	token, err := ctrl.svc.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Login successful", dto.LoginResponse{Token: token})
}

// POST /api/admin/add
func (ctrl *AuthController) AddAdmin(c *fiber.Ctx) error {
	var body dto.AddAdminRequest
	if err := helpers.BindJSON(c, &body); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	admin, err := ctrl.svc.AddAdmin(c.UserContext(), body)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Admin added successfully", dto.FromModel(admin))
}

// POST /api/admin/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	adminID, err := helpers.GetAdminID(c)
	if err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	var body dto.ChangePasswordRequest
	if err := helpers.BindJSON(c, &body); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}

	if err := ctrl.svc.ChangePassword(c.UserContext(), adminID, body.Password, body.NewPassword); err != nil {
		return helpers.JsonFail(c, ctrl.logger, err)
	}
	return helpers.JsonOK(c, "Password changed successfully", nil)
}
