package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	employerhandler "job-board-backend/lib/employer"
	"job-board-backend/lib/utils/schema"
	apimodels "job-board-backend/models/api"
	employerapimodels "job-board-backend/models/api/employer"
)

type employerApiController struct {
	controllers.BaseAPIController
	employers employerhandler.Provider
}

func InitEmployerApiRouters(app *fiber.App, employers employerhandler.Provider) {
	controller := employerApiController{employers: employers}
	app.Route("employers", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
	})
}

// @Summary Список работодателей
// @Tags Работодатели
// @Description Список работодателей
// @Success 200 {object} apimodels.Response{data=[]employerapimodels.EmployerView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employers [get]
func (c *employerApiController) list(ctx *fiber.Ctx) error {
	list, err := c.employers.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка работодателей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавление работодателя
// @Tags Работодатели
// @Description Добавление работодателя
// @Param	body body	 employerapimodels.EmployerData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employers [post]
func (c *employerApiController) create(ctx *fiber.Ctx) error {
	var payload employerapimodels.EmployerData
	if err := c.ParseBody(ctx, schema.Employer, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления работодателя")
	}

	msg, err := c.employers.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления работодателя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(msg))
}
