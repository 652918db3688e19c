package v1

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ob-forms-backend/controllers"
	settingsprovider "ob-forms-backend/lib/settings"
	"ob-forms-backend/middleware"
	apimodels "ob-forms-backend/models/api"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("/api/settings", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.save)
	})
}

// @Summary Current division options
// @Tags Settings
// @Success 200 {object} apimodels.DivisionOptionsResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/settings [get]
func (c *settingsApiController) get(ctx *fiber.Ctx) error {
	rec, err := settingsprovider.Instance.GetCurrent()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.DivisionOptionsResponse{DivisionOptions: rec.DivisionOptions})
}

// @Summary Save division options
// @Tags Settings
// @Description Appends a new settings row, readers always pick the newest
// @Param	body body	 apimodels.SettingsData	true	"request body"
// @Success 200 {object} apimodels.SettingsSaveResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/settings [post]
func (c *settingsApiController) save(ctx *fiber.Ctx) error {
	var payload apimodels.SettingsData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := settingsprovider.Instance.SaveDivisionOptions(strings.TrimSpace(payload.DivisionOptions))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.SettingsSaveResponse{Success: true, ID: id})
}
