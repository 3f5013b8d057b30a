package services

import (
	"strings"
	"time"

	"github.com/brightsteps/brightsteps/internal/models"
)

// NewClientInput carries an intake payload after transport decoding but
// before policy validation.
type NewClientInput struct {
	FirstName    string
	LastName     string
	DateOfBirth  time.Time
	TherapyStart time.Time
	Status       string
	PhotoURL     string
	TherapyTypes []string

	SensoryVisual     string
	SensoryAuditory   string
	SensoryTactile    string
	SensoryVestibular string
	SensoryOral       string

	Preferences        []string
	Dislikes           []string
	CommunicationNotes string
}

// ValidateNewClient applies the same rules the intake wizard enforces
// client-side, so the API holds its own against callers other than the
// console. Returned map keys are field names; an empty map means valid.
func ValidateNewClient(input NewClientInput, now time.Time) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(input.FirstName) == "" {
		fieldErrors["first_name"] = "first name is required"
	}
	if strings.TrimSpace(input.LastName) == "" {
		fieldErrors["last_name"] = "last name is required"
	}
	if input.DateOfBirth.IsZero() {
		fieldErrors["date_of_birth"] = "date of birth is required"
	} else if input.DateOfBirth.After(now) {
		fieldErrors["date_of_birth"] = "date of birth cannot be in the future"
	}
	if input.TherapyStart.IsZero() {
		fieldErrors["therapy_start"] = "therapy start date is required"
	}

	if len(input.TherapyTypes) == 0 {
		fieldErrors["therapy_types"] = "select at least one therapy type"
	}
	for _, therapyType := range input.TherapyTypes {
		if !models.IsValidTherapyType(therapyType) {
			fieldErrors["therapy_types"] = "unknown therapy type: " + therapyType
			break
		}
	}

	if input.Status != "" && !models.IsValidClientStatus(input.Status) {
		fieldErrors["status"] = "unknown status: " + input.Status
	}

	return fieldErrors
}

// AgeInWholeYears computes a birthday-aware age, the value the console shows
// next to the date-of-birth field.
func AgeInWholeYears(dateOfBirth time.Time, today time.Time) int {
	age := today.Year() - dateOfBirth.Year()
	anniversary := time.Date(today.Year(), dateOfBirth.Month(), dateOfBirth.Day(), 0, 0, 0, 0, today.Location())
	if today.Before(anniversary) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func ClampGoalProgress(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
