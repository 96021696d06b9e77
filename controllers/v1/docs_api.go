package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	"job-board-backend/docs"
)

type docsApiController struct {
	controllers.BaseAPIController
}

// InitDocsApiRouters исходный swagger-документ, зарегистрированный в swag
func InitDocsApiRouters(app *fiber.App) {
	controller := docsApiController{}
	app.Get("docs/doc.json", controller.doc)
}

func (c *docsApiController) doc(ctx *fiber.Ctx) error {
	doc, err := docs.ReadDoc()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения описания API")
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return ctx.Status(fiber.StatusOK).SendString(doc)
}
