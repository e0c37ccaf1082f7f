package api

import (
	"errors"

	"github.com/Pabloradio/yokedo/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) ListOverrides(c *fiber.Ctx) error {
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

	overrides, err := handler.overrideService.ListOverrides(user.ID, from, to)
	if err != nil {
		handler.log.Error("list overrides failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch overrides")
	}
	return c.JSON(overrides)
}

func (handler *Handler) UpsertOverride(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := overrideInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	override, err := handler.overrideService.UpsertOverride(user.ID, date, input.Timezone, input.OverrideType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOverrideTypeInvalid),
			errors.Is(err, services.ErrTimezoneInvalid):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			handler.log.Error("upsert override failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "failed to save override")
		}
	}
	return c.JSON(override)
}

func (handler *Handler) DeleteOverride(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.overrideService.DeleteOverride(user.ID, date); err != nil {
		if errors.Is(err, services.ErrOverrideNotFound) {
			return apiError(c, fiber.StatusNotFound, "override not found")
		}
		handler.log.Error("delete override failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to delete override")
	}
	return c.JSON(fiber.Map{"ok": true})
}
