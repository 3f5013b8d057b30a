package api

import (
	"errors"
	"time"

	"github.com/brightsteps/brightsteps/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}
	goals, err := handler.careService.ListGoals(clientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goals")
	}
	return c.JSON(fiber.Map{"goals": goals})
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	payload := createGoalInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	goal, err := handler.careService.CreateGoal(clientID, payload.Title, payload.Description, payload.TherapyType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGoalTitleMissing), errors.Is(err, services.ErrUnknownTherapyType):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create goal")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"goal": goal})
}

func (handler *Handler) UpdateGoalProgress(c *fiber.Ctx) error {
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}

	payload := updateProgressInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	goal, err := handler.careService.UpdateGoalProgress(goalID, payload.Progress)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "goal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update goal")
	}
	return c.JSON(fiber.Map{"goal": goal})
}

func (handler *Handler) ListSessionNotes(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}
	notes, err := handler.careService.ListSessionNotes(clientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load session notes")
	}
	return c.JSON(fiber.Map{"sessions": notes})
}

func (handler *Handler) CreateSessionNote(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	payload := createSessionNoteInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sessionDate, ok := parseDateField(payload.SessionDate)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid session_date, expected YYYY-MM-DD")
	}

	note, err := handler.careService.CreateSessionNote(
		clientID,
		payload.TherapistID,
		sessionDate,
		payload.TherapyType,
		payload.Zone,
		payload.Summary,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionSummaryMissing),
			errors.Is(err, services.ErrUnknownTherapyType),
			errors.Is(err, services.ErrUnknownZone):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create session note")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": note})
}

func (handler *Handler) ListHomework(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}
	assignments, err := handler.careService.ListHomework(clientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load homework")
	}
	return c.JSON(fiber.Map{"homework": assignments})
}

func (handler *Handler) CreateHomework(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid client id")
	}

	payload := createHomeworkInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	var dueDate *time.Time
	if payload.DueDate != "" {
		parsed, ok := parseDateField(payload.DueDate)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "invalid due_date, expected YYYY-MM-DD")
		}
		dueDate = &parsed
	}

	assignment, err := handler.careService.CreateHomework(clientID, payload.Title, payload.Instructions, dueDate)
	if err != nil {
		if errors.Is(err, services.ErrHomeworkTitleMissing) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create homework")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"homework": assignment})
}

func (handler *Handler) UpdateHomeworkStatus(c *fiber.Ctx) error {
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid homework id")
	}

	payload := updateStatusInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	assignment, err := handler.careService.UpdateHomeworkStatus(assignmentID, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownStatus):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apiError(c, fiber.StatusNotFound, "homework not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update homework")
		}
	}
	return c.JSON(fiber.Map{"homework": assignment})
}
