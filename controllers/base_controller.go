package controllers

import (
	"encoding/json"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/fiberlog"
	"job-board-backend/lib/utils/errs"
	"job-board-backend/lib/utils/helpers"
	"job-board-backend/lib/utils/schema"
	apimodels "job-board-backend/models/api"
)

type BaseAPIController struct{}

type validator interface {
	Validate() error
}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		// значение нужного JSON-типа, но не помещается в поле (30.0 или переполнение для int)
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errs.NewValidation("некорректное значение поля %s: %s", typeErr.Field, typeErr.Value)
		}
		log.WithError(err).Error("ошибка распознавания запроса")
		return &bodyParseError{errors.New("не удалось получить данные из запроса")}
	}
	return nil
}

// ParseBody проверяет тело по JSON-схеме сущности, разбирает его и вызывает Validate
func (c *BaseAPIController) ParseBody(ctx *fiber.Ctx, schemaName string, out validator) error {
	if err := schema.Validate(schemaName, ctx.Body()); err != nil {
		return err
	}
	if err := c.BodyParser(ctx, out); err != nil {
		return err
	}
	return out.Validate()
}

// GetQueryID обязательный числовой параметр запроса
func (c *BaseAPIController) GetQueryID(ctx *fiber.Ctx, name string) (uint, error) {
	value := ctx.Query(name)
	if value == "" {
		return 0, errs.NewValidation("не указан параметр %s", name)
	}
	id, err := helpers.ParseID(value)
	if err != nil {
		return 0, errs.NewValidation("некорректное значение параметра %s: %s", name, value)
	}
	return id, nil
}

// GetQueryString обязательный строковый параметр запроса
func (c *BaseAPIController) GetQueryString(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Query(name)
	if value == "" {
		return "", errs.NewValidation("не указан параметр %s", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value, err := url.PathUnescape(ctx.Params(name))
	if err != nil || value == "" {
		return "", errs.NewValidation("некорректное значение параметра %s", name)
	}
	return value, nil
}

type FormFile struct {
	FileName    string
	ContentType string
	Body        []byte
}

// GetFormFile читает файл из multipart-формы целиком
func (c *BaseAPIController) GetFormFile(ctx *fiber.Ctx, name string) (FormFile, error) {
	header, err := ctx.FormFile(name)
	if err != nil {
		return FormFile{}, errs.NewValidation("не передан файл %s", name)
	}
	file, err := header.Open()
	if err != nil {
		return FormFile{}, errors.Wrap(err, "ошибка открытия файла")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return FormFile{}, errors.Wrap(err, "ошибка чтения файла")
	}
	contentType := header.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	return FormFile{
		FileName:    header.Filename,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// IsJSONFormat текстовые ответы можно запросить списком: format=json
func (c *BaseAPIController) IsJSONFormat(ctx *fiber.Ctx) bool {
	return ctx.Query("format") == "json"
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	fields := log.Fields{
		"method": ctx.Method(),
		"path":   ctx.Path(),
	}
	if requestID, ok := ctx.Locals(fiberlog.RequestID).(string); ok && requestID != "" {
		fields[fiberlog.RequestID] = requestID
	}
	return log.WithFields(fields)
}

// SendError ответ по виду ошибки: 422 - данные запроса, 404 - запись не найдена, 400 - тело не разобрано,
// остальное логируется и отдается как 500 с сообщением msg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case errs.IsValidation(err):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
	case errs.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errs.IsForeignKeyViolation(err):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("связанная запись не найдена"))
	}
	var parseErr *bodyParseError
	if errors.As(err, &parseErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

type bodyParseError struct {
	error
}
