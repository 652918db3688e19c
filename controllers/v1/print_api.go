package v1

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ob-forms-backend/controllers"
	printprovider "ob-forms-backend/lib/printform"
	"ob-forms-backend/models"
)

type printApiController struct {
	controllers.BaseAPIController
}

func InitPrintRouters(app *fiber.App) {
	controller := printApiController{}
	app.Route("/print", func(router fiber.Router) {
		router.Get("release", controller.release)
		router.Get(":id", controller.form)
		router.Get(":id/pdf", controller.formPDF)
	})
}

// @Summary Printable OB form
// @Tags Print
// @Description One form block per employee, two blocks per printed page
// @Param   id	path	int	true	"rec ID"
// @Produce html
// @Success 200 {string} string
// @Failure 404 {string} string
// @router /print/{id} [get]
func (c *printApiController) form(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	html, err := printprovider.Instance.RenderForm(id)
	if err != nil {
		return sendPrintError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(fiber.StatusOK).SendString(html)
}

// @Summary OB form as PDF
// @Tags Print
// @Param   id	path	int	true	"rec ID"
// @Produce application/pdf
// @Success 200 {string} binary
// @Failure 404 {string} string
// @router /print/{id}/pdf [get]
func (c *printApiController) formPDF(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	pdfFile, err := printprovider.Instance.RenderFormPDF(id)
	if err != nil {
		return sendPrintError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="ob-form-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Printable release log
// @Tags Print
// @Description Numbered sign-off sheet for a batch of approved forms, padded to 20 rows
// @Param   ids	query	string	true	"comma separated record ids"
// @Param   period	query	string	false	"period label"
// @Produce html
// @Success 200 {string} string
// @router /print/release [get]
func (c *printApiController) release(ctx *fiber.Ctx) error {
	ids := parseIDList(ctx.Query("ids"))
	html, err := printprovider.Instance.RenderReleaseLog(ids, ctx.Query("period"))
	if err != nil {
		return sendPrintError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(fiber.StatusOK).SendString(html)
}

// print routes answer plain text, they are opened in browser tabs
func sendPrintError(ctx *fiber.Ctx, err error) error {
	if models.KindOf(err) == models.KindNotFound {
		return ctx.Status(fiber.StatusNotFound).SendString("Form not found")
	}
	return ctx.Status(fiber.StatusInternalServerError).SendString("Error generating form: " + err.Error())
}

func parseIDList(raw string) []int64 {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
