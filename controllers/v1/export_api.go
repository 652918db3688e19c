package v1

import (
	"github.com/gofiber/fiber/v2"

	"ob-forms-backend/controllers"
	exportprovider "ob-forms-backend/lib/exportdata"
	"ob-forms-backend/middleware"
	apimodels "ob-forms-backend/models/api"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("/api", func(router fiber.Router) {
		router.Get("export-data", controller.exportData)
		router.Get("export-xlsx", controller.exportXLSX)
		router.Post("import-data", middleware.AdminRequired(), controller.importData)
		router.Post("backup", middleware.AdminRequired(), controller.backup)
	})
}

// @Summary Export everything as a JSON bundle
// @Tags Export
// @Description Served as a file download
// @Success 200 {object} apimodels.ExportBundle
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/export-data [get]
func (c *exportApiController) exportData(ctx *fiber.Ctx) error {
	bundle, err := exportprovider.Instance.Export()
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=ob-data-export.json")
	return ctx.Status(fiber.StatusOK).JSON(bundle)
}

// @Summary Import a JSON bundle
// @Tags Export
// @Description Replaces all stored forms, employees and settings
// @Param	body body	 apimodels.ExportBundle	true	"request body"
// @Success 200 {object} apimodels.ImportResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/import-data [post]
func (c *exportApiController) importData(ctx *fiber.Ctx) error {
	var bundle apimodels.ExportBundle
	if err := c.BodyParser(ctx, &bundle); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := exportprovider.Instance.Import(bundle)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Release log as a spreadsheet
// @Tags Export
// @Param   ids	query	string	true	"comma separated record ids"
// @Param   period	query	string	false	"period label"
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} binary
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/export-xlsx [get]
func (c *exportApiController) exportXLSX(ctx *fiber.Ctx) error {
	ids := parseIDList(ctx.Query("ids"))
	buf, err := exportprovider.Instance.ExportReleaseXLSX(ids, ctx.Query("period"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=ob-release-log.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Upload a JSON backup to S3
// @Tags Export
// @Success 200 {object} apimodels.SuccessResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/backup [post]
func (c *exportApiController) backup(ctx *fiber.Ctx) error {
	objectName, err := exportprovider.Instance.Backup(ctx.Context())
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.SuccessResponse{Success: true, Message: "Backup uploaded: " + objectName})
}
