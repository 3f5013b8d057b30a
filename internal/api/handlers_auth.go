package api

import (
	"errors"
	"time"

	"github.com/brightsteps/brightsteps/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Login exchanges a staff access code for the staff profile and a short-lived
// bearer token. The console keeps using the raw access code per request; the
// token exists for callers that prefer not to resend the shared code.
func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := loginInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	staff, err := handler.authService.VerifyAccessCode(payload.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStaffDisabled):
			return apiError(c, fiber.StatusForbidden, "staff member disabled")
		case errors.Is(err, services.ErrAccessCodeInvalid):
			return apiError(c, fiber.StatusUnauthorized, "invalid access code")
		default:
			return apiError(c, fiber.StatusInternalServerError, "login failed")
		}
	}

	token, expiresAt, err := handler.issueStaffToken(staff, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	return c.JSON(fiber.Map{
		"staff":      staff,
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// Me returns the staff profile behind the presented credential.
func (handler *Handler) Me(c *fiber.Ctx) error {
	staff, ok := currentStaff(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"staff": staff})
}
