package api

import (
	"errors"

	"github.com/Pabloradio/yokedo/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) ListTemplates(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	templates, err := handler.templateService.ListTemplates(user.ID)
	if err != nil {
		handler.log.Error("list templates failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch templates")
	}
	return c.JSON(templates)
}

func (handler *Handler) CreateTemplate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := templateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	template, err := handler.templateService.CreateTemplate(user.ID, templateServiceInput(input))
	if err != nil {
		return handler.templateError(c, err, "create template failed")
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

func (handler *Handler) UpdateTemplate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	templateID, err := parseUUIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid template id")
	}

	input := templateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	template, err := handler.templateService.UpdateTemplate(user.ID, templateID, templateServiceInput(input))
	if err != nil {
		return handler.templateError(c, err, "update template failed")
	}
	return c.JSON(template)
}

func (handler *Handler) DeleteTemplate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	templateID, err := parseUUIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid template id")
	}

	if err := handler.templateService.DeleteTemplate(user.ID, templateID); err != nil {
		return handler.templateError(c, err, "delete template failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func templateServiceInput(input templateInput) services.TemplateInput {
	return services.TemplateInput{
		Weekday:      input.Weekday,
		StartMinute:  input.StartMinute,
		EndMinute:    input.EndMinute,
		Timezone:     input.Timezone,
		PlanText:     input.PlanText,
		LanguageCode: input.LanguageCode,
		CategoryID:   input.CategoryID,
	}
}

func (handler *Handler) templateError(c *fiber.Ctx, err error, logMessage string) error {
	switch {
	case errors.Is(err, services.ErrTemplateNotFound):
		return apiError(c, fiber.StatusNotFound, "template not found")
	case errors.Is(err, services.ErrCategoryNotFound):
		return apiError(c, fiber.StatusBadRequest, "unknown category")
	case errors.Is(err, services.ErrWeekdayOutOfRange),
		errors.Is(err, services.ErrMinuteRangeInvalid),
		errors.Is(err, services.ErrTimezoneInvalid),
		errors.Is(err, services.ErrLanguageCodeInvalid):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		handler.log.Error(logMessage, zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, logMessage)
	}
}
