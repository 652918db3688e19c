package v1

import (
	"github.com/gofiber/fiber/v2"

	"ob-forms-backend/controllers"
	directoryprovider "ob-forms-backend/lib/directory"
	"ob-forms-backend/middleware"
	apimodels "ob-forms-backend/models/api"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("/api/employees", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Get(":id/history", controller.history)
		router.Use(middleware.AdminRequired())
		router.Post("initialize", controller.initialize)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary List roster employees
// @Tags Employee directory
// @Param   search	query	string	false	"name, position or unit filter"
// @Success 200 {object} apimodels.DirectoryListResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	list, err := directoryprovider.Instance.Find(ctx.Query("search"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.DirectoryListResponse{Employees: list})
}

// @Summary Get a roster employee
// @Tags Employee directory
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.DirectoryEmployeeResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	rec, err := directoryprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.DirectoryEmployeeResponse{Employee: rec})
}

// @Summary Travel history of a roster employee
// @Tags Employee directory
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.HistoryResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/employees/{id}/history [get]
func (c *employeeApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := directoryprovider.Instance.History(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Add a roster employee
// @Tags Employee directory
// @Param	body body	 apimodels.DirectoryEmployeeData	true	"request body"
// @Success 200 {object} apimodels.DirectoryMutationResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload apimodels.DirectoryEmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := directoryprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.DirectoryMutationResponse{
		Success: true,
		ID:      id,
		Message: "Employee added successfully",
	})
}

// @Summary Update a roster employee
// @Tags Employee directory
// @Param   id	path	int	true	"rec ID"
// @Param	body body	 apimodels.DirectoryEmployeeData	true	"request body"
// @Success 200 {object} apimodels.DirectoryMutationResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload apimodels.DirectoryEmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = directoryprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.DirectoryMutationResponse{
		Success: true,
		Message: "Employee updated successfully",
	})
}

// @Summary Delete a roster employee
// @Tags Employee directory
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.DirectoryMutationResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = directoryprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.DirectoryMutationResponse{
		Success: true,
		Message: "Employee deleted successfully",
	})
}

// @Summary Reset the roster to the initial staffing table
// @Tags Employee directory
// @Success 200 {object} apimodels.InitializeResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/employees/initialize [post]
func (c *employeeApiController) initialize(ctx *fiber.Ctx) error {
	count, err := directoryprovider.Instance.Initialize()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.InitializeResponse{
		Success: true,
		Message: "Employees initialized successfully",
		Count:   count,
	})
}
