package api

import (
	"errors"

	"github.com/Pabloradio/yokedo/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) ListSlots(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	slots, err := handler.slotService.ListSlots(user.ID, from, to)
	if err != nil {
		handler.log.Error("list slots failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch slots")
	}
	return c.JSON(slots)
}

func (handler *Handler) CreateSlot(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := slotInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	slot, err := handler.slotService.CreateSlot(user.ID, slotServiceInput(input))
	if err != nil {
		return handler.slotError(c, err, "create slot failed")
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

func (handler *Handler) UpdateSlot(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	slotID, err := parseUUIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid slot id")
	}

	input := slotInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	slot, err := handler.slotService.UpdateSlot(user.ID, slotID, slotServiceInput(input))
	if err != nil {
		return handler.slotError(c, err, "update slot failed")
	}
	return c.JSON(slot)
}

func (handler *Handler) DeleteSlot(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	slotID, err := parseUUIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid slot id")
	}

	if err := handler.slotService.DeleteSlot(user.ID, slotID); err != nil {
		return handler.slotError(c, err, "delete slot failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := handler.repositories.Categories.List()
	if err != nil {
		handler.log.Error("list categories failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch categories")
	}
	return c.JSON(categories)
}

func slotServiceInput(input slotInput) services.SlotInput {
	return services.SlotInput{
		StartTimeUTC: input.StartTimeUTC,
		EndTimeUTC:   input.EndTimeUTC,
		Timezone:     input.Timezone,
		PlanText:     input.PlanText,
		LanguageCode: input.LanguageCode,
		IsFlexible:   input.IsFlexible,
		IsRecurring:  input.IsRecurring,
		Source:       input.Source,
		CategoryID:   input.CategoryID,
	}
}

func (handler *Handler) slotError(c *fiber.Ctx, err error, logMessage string) error {
	switch {
	case errors.Is(err, services.ErrSlotNotFound):
		return apiError(c, fiber.StatusNotFound, "slot not found")
	case errors.Is(err, services.ErrCategoryNotFound):
		return apiError(c, fiber.StatusBadRequest, "unknown category")
	case errors.Is(err, services.ErrTimeRangeInvalid),
		errors.Is(err, services.ErrTimezoneInvalid),
		errors.Is(err, services.ErrLanguageCodeInvalid),
		errors.Is(err, services.ErrSourceInvalid):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		handler.log.Error(logMessage, zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, logMessage)
	}
}
