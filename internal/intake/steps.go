package intake

import (
	"strings"
	"time"
)

// The seven ordered wizard steps.
const (
	StepBasicInfo = iota + 1
	StepTherapyTypes
	StepTherapist
	StepCaregiver
	StepSensoryProfile
	StepPreferences
	StepCommunication

	FirstStep = StepBasicInfo
	LastStep  = StepCommunication
)

var stepTitles = map[int]string{
	StepBasicInfo:      "Basic Information",
	StepTherapyTypes:   "Therapy Types",
	StepTherapist:      "Therapist Assignment",
	StepCaregiver:      "Parent / Caregiver",
	StepSensoryProfile: "Sensory Profile",
	StepPreferences:    "Preferences & Dislikes",
	StepCommunication:  "Communication Styles",
}

func StepTitle(step int) string {
	return stepTitles[step]
}

// StepResult is the outcome of validating one step. Validators never return
// errors through any other channel; field messages are keyed by field name.
type StepResult struct {
	Valid       bool
	FieldErrors map[string]string
}

func validResult() StepResult {
	return StepResult{Valid: true, FieldErrors: map[string]string{}}
}

// ValidateStep runs the validator for one step against the draft. Validators
// are pure: they never mutate the draft and never talk to the network. The
// reference time is needed only by step 1's future-date check.
func ValidateStep(step int, draft *Draft, now time.Time) StepResult {
	switch step {
	case StepBasicInfo:
		return validateBasicInfo(draft, now)
	case StepTherapyTypes:
		return validateTherapyTypes(draft)
	case StepCaregiver:
		return validateCaregiver(draft)
	case StepTherapist, StepSensoryProfile, StepPreferences, StepCommunication:
		return validResult()
	default:
		return StepResult{Valid: false, FieldErrors: map[string]string{"step": "unknown step"}}
	}
}

func validateBasicInfo(draft *Draft, now time.Time) StepResult {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(draft.FirstName) == "" {
		fieldErrors["first_name"] = "first name is required"
	}
	if strings.TrimSpace(draft.LastName) == "" {
		fieldErrors["last_name"] = "last name is required"
	}
	if draft.DateOfBirth == nil {
		fieldErrors["date_of_birth"] = "date of birth is required"
	} else if draft.DateOfBirth.After(now) {
		fieldErrors["date_of_birth"] = "date of birth cannot be in the future"
	}
	if draft.TherapyStart == nil {
		fieldErrors["therapy_start"] = "therapy start date is required"
	}

	return StepResult{Valid: len(fieldErrors) == 0, FieldErrors: fieldErrors}
}

func validateTherapyTypes(draft *Draft) StepResult {
	if len(draft.TherapyTypes) == 0 {
		return StepResult{
			Valid:       false,
			FieldErrors: map[string]string{"therapy_types": "select at least one therapy type"},
		}
	}
	return validResult()
}

func validateCaregiver(draft *Draft) StepResult {
	fieldErrors := make(map[string]string)

	switch draft.CaregiverAction {
	case CaregiverExisting:
		if draft.ExistingCaregiverID == 0 {
			fieldErrors["existing_caregiver_id"] = "select a caregiver to link"
		}
	case CaregiverNew:
		if strings.TrimSpace(draft.CaregiverFullName) == "" {
			fieldErrors["caregiver_full_name"] = "caregiver full name is required"
		}
		if strings.TrimSpace(draft.CaregiverRelationship) == "" {
			fieldErrors["caregiver_relationship"] = "relationship is required"
		}
	case CaregiverSkip:
		// Always valid regardless of other caregiver fields.
	default:
		fieldErrors["caregiver_action"] = "choose how to handle the caregiver"
	}

	return StepResult{Valid: len(fieldErrors) == 0, FieldErrors: fieldErrors}
}
