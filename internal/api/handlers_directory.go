package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListTherapists(c *fiber.Ctx) error {
	therapists, err := handler.repositories.Directory.ListTherapists()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load therapists")
	}
	return c.JSON(fiber.Map{"therapists": therapists})
}

func (handler *Handler) ListCaregivers(c *fiber.Ctx) error {
	caregivers, err := handler.repositories.Directory.ListCaregivers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load caregivers")
	}
	return c.JSON(fiber.Map{"caregivers": caregivers})
}
