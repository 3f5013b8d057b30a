package services

import (
	"errors"
	"strings"
	"time"

	"github.com/brightsteps/brightsteps/internal/models"
)

var (
	ErrGoalTitleMissing      = errors.New("goal title is required")
	ErrSessionSummaryMissing = errors.New("session summary is required")
	ErrHomeworkTitleMissing  = errors.New("homework title is required")
	ErrUnknownTherapyType    = errors.New("unknown therapy type")
	ErrUnknownZone           = errors.New("unknown regulation zone")
	ErrUnknownStatus         = errors.New("unknown status")
)

type CareRecordRepository interface {
	CreateGoal(goal *models.Goal) error
	FindGoalByID(goalID uint) (models.Goal, error)
	SaveGoal(goal *models.Goal) error
	ListGoals(clientID uint) ([]models.Goal, error)
	CreateSessionNote(note *models.SessionNote) error
	ListSessionNotes(clientID uint) ([]models.SessionNote, error)
	CreateHomework(assignment *models.HomeworkAssignment) error
	FindHomeworkByID(assignmentID uint) (models.HomeworkAssignment, error)
	SaveHomework(assignment *models.HomeworkAssignment) error
	ListHomework(clientID uint) ([]models.HomeworkAssignment, error)
}

type CareService struct {
	care CareRecordRepository
}

func NewCareService(care CareRecordRepository) *CareService {
	return &CareService{care: care}
}

func (service *CareService) CreateGoal(clientID uint, title string, description string, therapyType string) (models.Goal, error) {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return models.Goal{}, ErrGoalTitleMissing
	}
	if !models.IsValidTherapyType(therapyType) {
		return models.Goal{}, ErrUnknownTherapyType
	}

	goal := models.Goal{
		ClientID:    clientID,
		Title:       trimmedTitle,
		Description: strings.TrimSpace(description),
		TherapyType: therapyType,
		Status:      models.GoalStatusActive,
	}
	if err := service.care.CreateGoal(&goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// UpdateGoalProgress clamps the value into [0, 100] and flips the goal to
// "met" at 100.
func (service *CareService) UpdateGoalProgress(goalID uint, progress int) (models.Goal, error) {
	goal, err := service.care.FindGoalByID(goalID)
	if err != nil {
		return models.Goal{}, err
	}

	goal.Progress = ClampGoalProgress(progress)
	if goal.Progress == 100 {
		goal.Status = models.GoalStatusMet
	}
	if err := service.care.SaveGoal(&goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (service *CareService) ListGoals(clientID uint) ([]models.Goal, error) {
	return service.care.ListGoals(clientID)
}

func (service *CareService) CreateSessionNote(clientID uint, therapistID uint, sessionDate time.Time, therapyType string, zone string, summary string) (models.SessionNote, error) {
	trimmedSummary := strings.TrimSpace(summary)
	if trimmedSummary == "" {
		return models.SessionNote{}, ErrSessionSummaryMissing
	}
	if !models.IsValidTherapyType(therapyType) {
		return models.SessionNote{}, ErrUnknownTherapyType
	}
	if zone != "" && !models.IsValidZone(zone) {
		return models.SessionNote{}, ErrUnknownZone
	}
	if sessionDate.IsZero() {
		sessionDate = time.Now()
	}

	note := models.SessionNote{
		ClientID:    clientID,
		TherapistID: therapistID,
		SessionDate: sessionDate,
		TherapyType: therapyType,
		Zone:        zone,
		Summary:     trimmedSummary,
	}
	if err := service.care.CreateSessionNote(&note); err != nil {
		return models.SessionNote{}, err
	}
	return note, nil
}

func (service *CareService) ListSessionNotes(clientID uint) ([]models.SessionNote, error) {
	return service.care.ListSessionNotes(clientID)
}

func (service *CareService) CreateHomework(clientID uint, title string, instructions string, dueDate *time.Time) (models.HomeworkAssignment, error) {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return models.HomeworkAssignment{}, ErrHomeworkTitleMissing
	}

	assignment := models.HomeworkAssignment{
		ClientID:     clientID,
		Title:        trimmedTitle,
		Instructions: strings.TrimSpace(instructions),
		DueDate:      dueDate,
		Status:       models.HomeworkStatusAssigned,
	}
	if err := service.care.CreateHomework(&assignment); err != nil {
		return models.HomeworkAssignment{}, err
	}
	return assignment, nil
}

func (service *CareService) UpdateHomeworkStatus(assignmentID uint, status string) (models.HomeworkAssignment, error) {
	if !models.IsValidHomeworkStatus(status) {
		return models.HomeworkAssignment{}, ErrUnknownStatus
	}

	assignment, err := service.care.FindHomeworkByID(assignmentID)
	if err != nil {
		return models.HomeworkAssignment{}, err
	}
	assignment.Status = status
	if err := service.care.SaveHomework(&assignment); err != nil {
		return models.HomeworkAssignment{}, err
	}
	return assignment, nil
}

func (service *CareService) ListHomework(clientID uint) ([]models.HomeworkAssignment, error) {
	return service.care.ListHomework(clientID)
}
