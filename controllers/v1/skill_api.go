package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	skillhandler "job-board-backend/lib/skill"
	"job-board-backend/lib/utils/schema"
	apimodels "job-board-backend/models/api"
	skillapimodels "job-board-backend/models/api/skill"
)

type skillApiController struct {
	controllers.BaseAPIController
	skills skillhandler.Provider
}

func InitSkillApiRouters(app *fiber.App, skills skillhandler.Provider) {
	controller := skillApiController{skills: skills}
	app.Route("skills", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":title/jobs", controller.jobList)
		router.Get(":title", controller.getByTitle)
	})
}

// @Summary Список навыков
// @Tags Навыки
// @Description Список навыков
// @Success 200 {object} apimodels.Response{data=[]skillapimodels.SkillView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/skills [get]
func (c *skillApiController) list(ctx *fiber.Ctx) error {
	list, err := c.skills.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка навыков")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавление навыка
// @Tags Навыки
// @Description Добавление навыка
// @Param	body body	 skillapimodels.SkillData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/skills [post]
func (c *skillApiController) create(ctx *fiber.Ctx) error {
	var payload skillapimodels.SkillData
	if err := c.ParseBody(ctx, schema.Skill, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления навыка")
	}

	msg, err := c.skills.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления навыка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(msg))
}

// @Summary Навык по названию
// @Tags Навыки
// @Description Навык по точному совпадению названия
// @Param   title          		path    string  				    	true         "название навыка"
// @Success 200 {object} apimodels.Response{data=skillapimodels.SkillView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/skills/{title} [get]
func (c *skillApiController) getByTitle(ctx *fiber.Ctx) error {
	title, err := c.GetParam(ctx, "title")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения навыка")
	}

	resp, err := c.skills.GetByTitle(ctx.UserContext(), title)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения навыка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансии навыка
// @Tags Навыки
// @Description Вакансии, к которым привязан навык
// @Param   title          		path    string  				    	true         "название навыка"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/skills/{title}/jobs [get]
func (c *skillApiController) jobList(ctx *fiber.Ctx) error {
	title, err := c.GetParam(ctx, "title")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансий навыка")
	}

	list, err := c.skills.JobList(ctx.UserContext(), title)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансий навыка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
