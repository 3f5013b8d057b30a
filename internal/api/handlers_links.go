package api

import (
	"errors"
	"strings"

	"github.com/brightsteps/brightsteps/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AssignTherapist(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	payload := assignTherapistInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.TherapistID == 0 {
		return apiError(c, fiber.StatusBadRequest, "therapist_id is required")
	}

	if err := handler.clientService.AssignTherapist(clientID, payload.TherapistID, payload.Primary); err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			return apiError(c, fiber.StatusNotFound, "client not found")
		case errors.Is(err, services.ErrTherapistNotFound):
			return apiError(c, fiber.StatusNotFound, "therapist not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to assign therapist")
		}
	}

	return c.JSON(fiber.Map{"ok": true})
}

// LinkCaregiver handles both branches of the intake wizard's caregiver step:
// link an existing directory entry when caregiver_id is set, otherwise create
// a new caregiver from the inline fields and link it.
func (handler *Handler) LinkCaregiver(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	payload := linkCaregiverInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if payload.CaregiverID != 0 {
		if err := handler.clientService.LinkExistingCaregiver(clientID, payload.CaregiverID, payload.Primary); err != nil {
			switch {
			case errors.Is(err, services.ErrClientNotFound):
				return apiError(c, fiber.StatusNotFound, "client not found")
			case errors.Is(err, services.ErrCaregiverNotFound):
				return apiError(c, fiber.StatusNotFound, "caregiver not found")
			default:
				return apiError(c, fiber.StatusInternalServerError, "failed to link caregiver")
			}
		}
		return c.JSON(fiber.Map{"ok": true, "caregiver_id": payload.CaregiverID})
	}

	if strings.TrimSpace(payload.FullName) == "" {
		return apiError(c, fiber.StatusBadRequest, "caregiver_id or full_name is required")
	}

	caregiver, err := handler.clientService.CreateAndLinkCaregiver(
		clientID,
		payload.FullName,
		payload.Relationship,
		payload.Phone,
		payload.Email,
		payload.Primary,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			return apiError(c, fiber.StatusNotFound, "client not found")
		case errors.Is(err, services.ErrCaregiverNameMissing), errors.Is(err, services.ErrRelationshipMissing):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create caregiver")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "caregiver": caregiver})
}
