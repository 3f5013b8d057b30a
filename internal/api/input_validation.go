package api

import (
	"time"

	"github.com/brightsteps/brightsteps/internal/services"
)

const dateLayout = "2006-01-02"

func parseDateField(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// buildNewClientInput decodes the transport payload into the service-level
// input. Date parse failures surface as field errors alongside the policy
// checks so the console can show everything at once.
func buildNewClientInput(payload createClientInput, now time.Time) (services.NewClientInput, map[string]string) {
	fieldErrors := make(map[string]string)

	dateOfBirth, ok := parseDateField(payload.DateOfBirth)
	if !ok {
		fieldErrors["date_of_birth"] = "invalid date, expected YYYY-MM-DD"
	}
	therapyStart, ok := parseDateField(payload.TherapyStart)
	if !ok {
		fieldErrors["therapy_start"] = "invalid date, expected YYYY-MM-DD"
	}

	input := services.NewClientInput{
		FirstName:          payload.FirstName,
		LastName:           payload.LastName,
		DateOfBirth:        dateOfBirth,
		TherapyStart:       therapyStart,
		Status:             payload.Status,
		PhotoURL:           payload.PhotoURL,
		TherapyTypes:       payload.TherapyTypes,
		Preferences:        payload.Preferences,
		Dislikes:           payload.Dislikes,
		CommunicationNotes: payload.CommunicationNotes,
	}
	if payload.SensoryProfile != nil {
		input.SensoryVisual = payload.SensoryProfile.Visual
		input.SensoryAuditory = payload.SensoryProfile.Auditory
		input.SensoryTactile = payload.SensoryProfile.Tactile
		input.SensoryVestibular = payload.SensoryProfile.Vestibular
		input.SensoryOral = payload.SensoryProfile.Oral
	}

	for field, message := range services.ValidateNewClient(input, now) {
		if _, exists := fieldErrors[field]; !exists {
			fieldErrors[field] = message
		}
	}

	return input, fieldErrors
}
