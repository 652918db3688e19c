package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"ob-forms-backend/controllers"
	adminauthprovider "ob-forms-backend/lib/adminauth"
	"ob-forms-backend/models"
	apimodels "ob-forms-backend/models/api"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("/api/admin", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Get("check", controller.check)
		router.Post("change-password", controller.changePassword)
	})
}

// @Summary Admin login
// @Tags Admin
// @Description Sets the http-only session cookie on success
// @Param	body body	 apimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.SuccessResponse
// @Failure 401 {object} apimodels.AdminErrorResponse
// @Failure 500 {object} apimodels.AdminErrorResponse
// @router /api/admin/login [post]
func (c *adminApiController) login(ctx *fiber.Ctx) error {
	var payload apimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewAdminError(err.Error()))
	}

	token, ttl, err := adminauthprovider.Instance.Login(payload.Password)
	if err != nil {
		if models.KindOf(err) == models.KindAuth {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewAdminError(err.Error()))
		}
		log.WithError(err).Error("admin login failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewAdminError("Server error"))
	}
	ctx.Cookie(&fiber.Cookie{
		Name:     adminauthprovider.CookieName,
		Value:    token,
		HTTPOnly: true,
		Expires:  time.Now().Add(ttl),
	})
	return ctx.Status(fiber.StatusOK).JSON(apimodels.SuccessResponse{Success: true})
}

// @Summary Check the admin session
// @Tags Admin
// @Success 200 {object} apimodels.AdminCheckResponse
// @Failure 401 {object} apimodels.AdminCheckResponse
// @router /api/admin/check [get]
func (c *adminApiController) check(ctx *fiber.Ctx) error {
	token := ctx.Cookies(adminauthprovider.CookieName)
	if err := adminauthprovider.Instance.ValidateToken(token); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.AdminCheckResponse{Ok: false})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.AdminCheckResponse{Ok: true})
}

// @Summary Change the admin password
// @Tags Admin
// @Param	body body	 apimodels.ChangePasswordRequest	true	"request body"
// @Success 200 {object} apimodels.SuccessResponse
// @Failure 400 {object} apimodels.AdminErrorResponse
// @Failure 401 {object} apimodels.AdminErrorResponse
// @Failure 500 {object} apimodels.AdminErrorResponse
// @router /api/admin/change-password [post]
func (c *adminApiController) changePassword(ctx *fiber.Ctx) error {
	token := ctx.Cookies(adminauthprovider.CookieName)
	if err := adminauthprovider.Instance.ValidateToken(token); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewAdminError("Not authenticated"))
	}

	var payload apimodels.ChangePasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewAdminError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewAdminError(err.Error()))
	}

	if err := adminauthprovider.Instance.ChangePassword(payload.OldPassword, payload.NewPassword); err != nil {
		switch models.KindOf(err) {
		case models.KindAuth:
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewAdminError(err.Error()))
		case models.KindValidation:
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewAdminError(err.Error()))
		default:
			log.WithError(err).Error("password change failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewAdminError("Failed to update password: " + err.Error()))
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.SuccessResponse{Success: true, Message: "Password changed successfully"})
}
