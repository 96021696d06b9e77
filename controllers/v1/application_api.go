package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
	applications applicationhandler.Provider
}

func InitApplicationApiRouters(app *fiber.App, applications applicationhandler.Provider) {
	controller := applicationApiController{applications: applications}
	app.Route("applications", func(router fiber.Router) {
		router.Put("", controller.updateStatus)
	})
}

// @Summary Изменение статуса отклика
// @Tags Отклики
// @Description Изменение статуса отклика, значение статуса произвольное
// @Param   application_id          		query    int  				    	true         "ID отклика"
// @Param   status          		query    string  				    	true         "новый статус"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [put]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	applicationID, err := c.GetQueryID(ctx, "application_id")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса отклика")
	}
	status, err := c.GetQueryString(ctx, "status")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса отклика")
	}

	resp, err := c.applications.UpdateStatus(ctx.UserContext(), applicationapimodels.StatusUpdate{
		ApplicationID: applicationID,
		Status:        status,
	})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
