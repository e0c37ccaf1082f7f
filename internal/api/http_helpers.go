package api

import (
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(contextUserKey).(models.User)
	return user, ok
}

// parseDateParam reads a YYYY-MM-DD civil date, returned at UTC midnight.
func parseDateParam(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}

func parseUUIDParam(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
