package v1

import (
	"github.com/gofiber/fiber/v2"

	"ob-forms-backend/controllers"
	obprovider "ob-forms-backend/lib/ob"
	"ob-forms-backend/middleware"
	apimodels "ob-forms-backend/models/api"
)

type obApiController struct {
	controllers.BaseAPIController
}

func InitOBApiRouters(app *fiber.App) {
	controller := obApiController{}
	app.Route("/api", func(router fiber.Router) {
		router.Post("submit", controller.submit)
		router.Get("retrieve/:id", controller.retrieve)
		router.Get("entries", controller.entries)
		router.Get("entries/:id", controller.entry)
		// the guard is attached per route, the /api prefix is shared with
		// groups that stay public
		router.Put("update/:id", middleware.AdminRequired(), controller.update)
		router.Delete("delete-all", middleware.AdminRequired(), controller.deleteAll)
		router.Delete("delete/:id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Submit a new OB form
// @Tags Official business
// @Description Stores the form with its employees and assigns a travel id
// @Param	body body	 apimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.SubmitResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/submit [post]
func (c *obApiController) submit(ctx *fiber.Ctx) error {
	var payload apimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, travelID, err := obprovider.Instance.Submit(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.SubmitResponse{Success: true, ID: id, TravelID: travelID})
}

// @Summary Retrieve a form with its employees
// @Tags Official business
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.RetrieveResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/retrieve/{id} [get]
func (c *obApiController) retrieve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := obprovider.Instance.GetOne(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary List entries with pagination and search
// @Tags Official business
// @Param   page	query	int	false	"page, 1-based"
// @Param   limit	query	int	false	"page size"
// @Param   search	query	string	false	"employee name or office filter"
// @Success 200 {object} apimodels.EntriesResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/entries [get]
func (c *obApiController) entries(ctx *fiber.Ctx) error {
	request := apimodels.PageRequest{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	resp, err := obprovider.Instance.List(request, ctx.Query("search"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Get one entry in the history shape
// @Tags Official business
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.HistoryEntry
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/entries/{id} [get]
func (c *obApiController) entry(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := obprovider.Instance.GetEntry(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Update a form and replace its employees
// @Tags Official business
// @Param   id	path	int	true	"rec ID"
// @Param	body body	 apimodels.UpdateRequest	true	"request body"
// @Success 200 {object} apimodels.SubmitResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/update/{id} [put]
func (c *obApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload apimodels.UpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = obprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.SubmitResponse{Success: true, ID: id})
}

// @Summary Delete one entry with its employees
// @Tags Official business
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.SuccessResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/delete/{id} [delete]
func (c *obApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = obprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.SuccessResponse{Success: true, Message: "Entry deleted successfully"})
}

// @Summary Delete all entries
// @Tags Official business
// @Success 200 {object} apimodels.SuccessResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/delete-all [delete]
func (c *obApiController) deleteAll(ctx *fiber.Ctx) error {
	if err := obprovider.Instance.DeleteAll(); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.SuccessResponse{Success: true, Message: "All data deleted successfully"})
}
