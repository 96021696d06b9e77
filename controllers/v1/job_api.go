package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	jobhandler "job-board-backend/lib/job"
	"job-board-backend/lib/utils/schema"
	apimodels "job-board-backend/models/api"
	jobapimodels "job-board-backend/models/api/job"
	skillapimodels "job-board-backend/models/api/skill"
)

type jobApiController struct {
	controllers.BaseAPIController
	jobs         jobhandler.Provider
	applications applicationhandler.Provider
}

func InitJobApiRouters(app *fiber.App, jobs jobhandler.Provider, applications applicationhandler.Provider) {
	controller := jobApiController{jobs: jobs, applications: applications}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Post("skills", controller.addSkill)
		router.Get("skills", controller.skillList)
		router.Get("applications/export", controller.applicationExport)
		router.Get("applications", controller.applicationList)
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Список вакансий
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	list, err := c.jobs.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавление вакансии
// @Tags Вакансии
// @Description Добавление вакансии работодателя
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.ParseBody(ctx, schema.Job, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления вакансии")
	}

	resp, err := c.jobs.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Привязка навыка к вакансии
// @Tags Вакансии
// @Description Привязка навыка к вакансии по названию навыка
// @Param   job_id          		query    int  				    	true         "ID вакансии"
// @Param   skill_title          		query    string  				    	true         "название навыка"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/skills [post]
func (c *jobApiController) addSkill(ctx *fiber.Ctx) error {
	jobID, err := c.GetQueryID(ctx, "job_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка привязки навыка к вакансии")
	}
	skillTitle, err := c.GetQueryString(ctx, "skill_title")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка привязки навыка к вакансии")
	}

	msg, err := c.jobs.AddSkill(ctx.UserContext(), jobID, skillTitle)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка привязки навыка к вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(msg))
}

// @Summary Навыки вакансии
// @Tags Вакансии
// @Description Навыки вакансии, текстом или списком (format=json)
// @Param   job_id          		query    int  				    	true         "ID вакансии"
// @Param   format          		query    string  				    	false         "json - вернуть список"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/skills [get]
func (c *jobApiController) skillList(ctx *fiber.Ctx) error {
	jobID, err := c.GetQueryID(ctx, "job_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения навыков вакансии")
	}

	job, list, err := c.jobs.SkillList(ctx.UserContext(), jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения навыков вакансии")
	}
	if c.IsJSONFormat(ctx) {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(skillapimodels.JobSkillsText(job.Title, list)))
}

// @Summary Отклики на вакансию
// @Tags Вакансии
// @Description Отклики на вакансию
// @Param   job_id          		query    int  				    	true         "ID вакансии"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/applications [get]
func (c *jobApiController) applicationList(ctx *fiber.Ctx) error {
	jobID, err := c.GetQueryID(ctx, "job_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов на вакансию")
	}

	list, err := c.applications.ListByJob(ctx.UserContext(), jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов на вакансию")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка откликов на вакансию
// @Tags Вакансии
// @Description Выгрузка откликов на вакансию в Excel
// @Param   job_id          		query    int  				    	true         "ID вакансии"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/applications/export [get]
func (c *jobApiController) applicationExport(ctx *fiber.Ctx) error {
	jobID, err := c.GetQueryID(ctx, "job_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки откликов в Excel")
	}

	data, err := c.applications.ExportByJob(ctx.UserContext(), jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки откликов в Excel")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="job_%d_applications.xlsx"`, jobID))
	return ctx.Status(fiber.StatusOK).SendStream(data)
}
