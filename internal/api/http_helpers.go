package api

import (
	"strconv"
	"strings"

	"github.com/brightsteps/brightsteps/internal/models"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":        "validation failed",
		"field_errors": fieldErrors,
	})
}

func currentStaff(c *fiber.Ctx) (*models.StaffMember, bool) {
	staff, ok := c.Locals(contextStaffKey).(*models.StaffMember)
	return staff, ok
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(value), nil
}
