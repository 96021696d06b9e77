package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	candidatehandler "job-board-backend/lib/candidate"
	resumehandler "job-board-backend/lib/resume"
	"job-board-backend/lib/utils/schema"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"
	candidateapimodels "job-board-backend/models/api/candidate"
	skillapimodels "job-board-backend/models/api/skill"
)

type candidateApiController struct {
	controllers.BaseAPIController
	candidates   candidatehandler.Provider
	resumes      resumehandler.Provider
	applications applicationhandler.Provider
}

func InitCandidateApiRouters(app *fiber.App, candidates candidatehandler.Provider, resumes resumehandler.Provider,
	applications applicationhandler.Provider) {
	controller := candidateApiController{
		candidates:   candidates,
		resumes:      resumes,
		applications: applications,
	}
	app.Route("candidates", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.get)
		router.Route("resumes", func(resumeRouter fiber.Router) {
			resumeRouter.Post("", controller.resumeCreate)
			resumeRouter.Get("", controller.resumeList)
			resumeRouter.Post("skills", controller.resumeAddSkill)
			resumeRouter.Get("skills", controller.resumeSkillList)
			resumeRouter.Get("pdf", controller.resumePdf)
			resumeRouter.Post("file", controller.resumeUploadFile)
			resumeRouter.Get("file", controller.resumeGetFile)
		})
		router.Route("applications", func(applicationRouter fiber.Router) {
			applicationRouter.Post("", controller.applicationCreate)
			applicationRouter.Get("", controller.applicationList)
		})
	})
}

// @Summary Добавление кандидата
// @Tags Кандидаты
// @Description Добавление кандидата
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.ParseBody(ctx, schema.Candidate, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления кандидата")
	}

	msg, err := c.candidates.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(msg))
}

// @Summary Получение кандидата
// @Tags Кандидаты
// @Description Получение кандидата по ID
// @Param   id          		query    int  				    	true         "ID кандидата"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetQueryID(ctx, "id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидата")
	}

	resp, err := c.candidates.Get(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Добавление резюме
// @Tags Резюме
// @Description Добавление резюме кандидата, навыки указываются названиями
// @Param	body body	 candidateapimodels.ResumeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/resumes [post]
func (c *candidateApiController) resumeCreate(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ResumeData
	if err := c.ParseBody(ctx, schema.Resume, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления резюме")
	}

	msg, err := c.resumes.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(msg))
}

// @Summary Резюме кандидата
// @Tags Резюме
// @Description Резюме кандидата, текстом или списком (format=json)
// @Param   candidate_id          		query    int  				    	true         "ID кандидата"
// @Param   format          		query    string  				    	false         "json - вернуть список"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/resumes [get]
func (c *candidateApiController) resumeList(ctx *fiber.Ctx) error {
	candidateID, err := c.GetQueryID(ctx, "candidate_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка резюме")
	}

	candidate, list, err := c.resumes.ListByCandidate(ctx.UserContext(), candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка резюме")
	}
	if c.IsJSONFormat(ctx) {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.ResumeListText(candidate, list)))
}

// @Summary Привязка навыка к резюме
// @Tags Резюме
// @Description Привязка навыка к резюме по названию навыка
// @Param   resume_id          		query    int  				    	true         "ID резюме"
// @Param   skill_title          		query    string  				    	true         "название навыка"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/resumes/skills [post]
func (c *candidateApiController) resumeAddSkill(ctx *fiber.Ctx) error {
	resumeID, err := c.GetQueryID(ctx, "resume_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка привязки навыка к резюме")
	}
	skillTitle, err := c.GetQueryString(ctx, "skill_title")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка привязки навыка к резюме")
	}

	msg, err := c.resumes.AddSkill(ctx.UserContext(), resumeID, skillTitle)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка привязки навыка к резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(msg))
}

// @Summary Навыки резюме
// @Tags Резюме
// @Description Навыки резюме, текстом или списком (format=json)
// @Param   resume_id          		query    int  				    	true         "ID резюме"
// @Param   format          		query    string  				    	false         "json - вернуть список"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/resumes/skills [get]
func (c *candidateApiController) resumeSkillList(ctx *fiber.Ctx) error {
	resumeID, err := c.GetQueryID(ctx, "resume_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения навыков резюме")
	}

	resume, list, err := c.resumes.SkillList(ctx.UserContext(), resumeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения навыков резюме")
	}
	if c.IsJSONFormat(ctx) {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(skillapimodels.ResumeSkillsText(resume.GetTitle(), list)))
}

// @Summary Резюме в PDF
// @Tags Резюме
// @Description Выгрузка резюме в PDF
// @Param   resume_id          		query    int  				    	true         "ID резюме"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/resumes/pdf [get]
func (c *candidateApiController) resumePdf(ctx *fiber.Ctx) error {
	resumeID, err := c.GetQueryID(ctx, "resume_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки резюме в PDF")
	}

	body, err := c.resumes.ExportPdf(ctx.UserContext(), resumeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки резюме в PDF")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume_%d.pdf"`, resumeID))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Загрузка файла резюме
// @Tags Резюме
// @Description Загрузка файла резюме в хранилище
// @Accept  multipart/form-data
// @Param   resume_id          		query    int  				    	true         "ID резюме"
// @Param   file formData file true "файл резюме"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/resumes/file [post]
func (c *candidateApiController) resumeUploadFile(ctx *fiber.Ctx) error {
	resumeID, err := c.GetQueryID(ctx, "resume_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки файла резюме")
	}
	file, err := c.GetFormFile(ctx, "file")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки файла резюме")
	}

	err = c.resumes.UploadFile(ctx.UserContext(), resumeID, resumehandler.ResumeFile{
		FileName:    file.FileName,
		ContentType: file.ContentType,
		Body:        file.Body,
	})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки файла резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение файла резюме
// @Tags Резюме
// @Description Получение ранее загруженного файла резюме
// @Param   resume_id          		query    int  				    	true         "ID резюме"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/resumes/file [get]
func (c *candidateApiController) resumeGetFile(ctx *fiber.Ctx) error {
	resumeID, err := c.GetQueryID(ctx, "resume_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла резюме")
	}

	file, err := c.resumes.GetFile(ctx.UserContext(), resumeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла резюме")
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	return ctx.Status(fiber.StatusOK).Send(file.Body)
}

// @Summary Отклик на вакансию
// @Tags Отклики
// @Description Отклик кандидата на вакансию с резюме
// @Param	body body	 applicationapimodels.ApplicationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/applications [post]
func (c *candidateApiController) applicationCreate(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationData
	if err := c.ParseBody(ctx, schema.Application, &payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления отклика")
	}

	msg, err := c.applications.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(msg))
}

// @Summary Отклики кандидата
// @Tags Отклики
// @Description Отклики кандидата, текстом или списком (format=json)
// @Param   candidate_id          		query    int  				    	true         "ID кандидата"
// @Param   format          		query    string  				    	false         "json - вернуть список"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/applications [get]
func (c *candidateApiController) applicationList(ctx *fiber.Ctx) error {
	candidateID, err := c.GetQueryID(ctx, "candidate_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов кандидата")
	}

	candidate, list, err := c.applications.ListByCandidate(ctx.UserContext(), candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов кандидата")
	}
	if c.IsJSONFormat(ctx) {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationapimodels.CandidateApplicationsText(candidate.Name, list)))
}
