package api

import (
	"errors"

	"github.com/Pabloradio/yokedo/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// maxResolveRangeDays caps range resolution at a little over a month view.
const maxResolveRangeDays = 62

func (handler *Handler) ResolveDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	intervals, err := handler.resolver.Resolve(user.ID, date)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		handler.log.Error("resolve day failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve availability")
	}

	return c.JSON(services.DaySchedule{
		Date:      services.DateOnly(date).Format("2006-01-02"),
		Intervals: intervals,
	})
}

func (handler *Handler) ResolveRange(c *fiber.Ctx) error {
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
	if int(to.Sub(from).Hours()/24) >= maxResolveRangeDays {
		return apiError(c, fiber.StatusBadRequest, "range too wide")
	}

	schedule, err := handler.resolver.ResolveRange(user.ID, from, to)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		handler.log.Error("resolve range failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve availability")
	}
	return c.JSON(schedule)
}
