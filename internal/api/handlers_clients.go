package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (handler *Handler) ListClients(c *fiber.Ctx) error {
	clients, err := handler.clientService.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load clients")
	}
	return c.JSON(fiber.Map{"clients": clients})
}

func (handler *Handler) GetClient(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	client, err := handler.clientService.FindByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "client not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load client")
	}

	therapistLinks, err := handler.clientService.TherapistLinks(clientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load client")
	}
	caregiverLinks, err := handler.clientService.CaregiverLinks(clientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load client")
	}

	return c.JSON(fiber.Map{
		"client":     client,
		"therapists": therapistLinks,
		"caregivers": caregiverLinks,
	})
}

func (handler *Handler) CreateClient(c *fiber.Ctx) error {
	payload := createClientInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	input, fieldErrors := buildNewClientInput(payload, time.Now())
	if len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	client, err := handler.clientService.CreateClient(input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create client")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"client": client})
}
