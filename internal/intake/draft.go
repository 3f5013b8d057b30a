// Package intake implements the multi-step client intake flow: a draft
// record, a step cursor with per-step validation gates, and a submission
// pipeline in which only the client-creation call is fatal.
package intake

import (
	"strings"
	"time"

	"github.com/brightsteps/brightsteps/internal/apiclient"
)

type TherapyType string

const (
	TherapyABA    TherapyType = "aba"
	TherapySpeech TherapyType = "speech"
	TherapyOT     TherapyType = "ot"
)

// CaregiverAction selects the branch of the caregiver step.
type CaregiverAction string

const (
	CaregiverExisting CaregiverAction = "existing"
	CaregiverNew      CaregiverAction = "new"
	CaregiverSkip     CaregiverAction = "skip"
)

// SensoryProfile holds free-text observations per sensory channel. All five
// are optional.
type SensoryProfile struct {
	Visual     string
	Auditory   string
	Tactile    string
	Vestibular string
	Oral       string
}

func (p SensoryProfile) isEmpty() bool {
	return strings.TrimSpace(p.Visual) == "" &&
		strings.TrimSpace(p.Auditory) == "" &&
		strings.TrimSpace(p.Tactile) == "" &&
		strings.TrimSpace(p.Vestibular) == "" &&
		strings.TrimSpace(p.Oral) == ""
}

// Draft is the in-memory record a wizard run accumulates. It is created
// empty when the wizard opens and discarded whenever the wizard closes,
// successful submission included; it is never persisted.
type Draft struct {
	FirstName    string
	LastName     string
	DateOfBirth  *time.Time
	TherapyStart *time.Time
	Status       string
	PhotoURL     string

	TherapyTypes []TherapyType

	TherapistID      uint
	TherapistPrimary bool

	CaregiverAction       CaregiverAction
	ExistingCaregiverID   uint
	CaregiverFullName     string
	CaregiverRelationship string
	CaregiverPhone        string
	CaregiverEmail        string
	CaregiverPrimary      bool

	Sensory            SensoryProfile
	Preferences        string
	Dislikes           string
	CommunicationNotes string
}

func NewDraft() *Draft {
	return &Draft{
		Status:          "active",
		CaregiverAction: CaregiverSkip,
	}
}

// HasTherapyType reports set membership; ToggleTherapyType adds or removes
// while keeping the slice duplicate-free.
func (d *Draft) HasTherapyType(therapyType TherapyType) bool {
	for _, existing := range d.TherapyTypes {
		if existing == therapyType {
			return true
		}
	}
	return false
}

func (d *Draft) ToggleTherapyType(therapyType TherapyType) {
	for index, existing := range d.TherapyTypes {
		if existing == therapyType {
			d.TherapyTypes = append(d.TherapyTypes[:index], d.TherapyTypes[index+1:]...)
			return
		}
	}
	d.TherapyTypes = append(d.TherapyTypes, therapyType)
}

// AgeInYears computes the whole-year age shown next to the date-of-birth
// field, counting a year only once the birthday has passed.
func AgeInYears(dateOfBirth time.Time, today time.Time) int {
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

// SplitList turns comma-separated free text into a clean list: tokens are
// trimmed and empty ones dropped.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		values = append(values, trimmed)
	}
	return values
}

const wireDateLayout = "2006-01-02"

// BuildCreateClientInput assembles the creation payload from the draft. The
// sensory profile is omitted entirely when every channel is blank; otherwise
// only non-empty channels are carried.
func BuildCreateClientInput(draft *Draft) apiclient.CreateClientInput {
	input := apiclient.CreateClientInput{
		FirstName:          strings.TrimSpace(draft.FirstName),
		LastName:           strings.TrimSpace(draft.LastName),
		Status:             draft.Status,
		PhotoURL:           strings.TrimSpace(draft.PhotoURL),
		Preferences:        SplitList(draft.Preferences),
		Dislikes:           SplitList(draft.Dislikes),
		CommunicationNotes: strings.TrimSpace(draft.CommunicationNotes),
	}

	if draft.DateOfBirth != nil {
		input.DateOfBirth = draft.DateOfBirth.Format(wireDateLayout)
	}
	if draft.TherapyStart != nil {
		input.TherapyStart = draft.TherapyStart.Format(wireDateLayout)
	}

	input.TherapyTypes = make([]string, 0, len(draft.TherapyTypes))
	for _, therapyType := range draft.TherapyTypes {
		input.TherapyTypes = append(input.TherapyTypes, string(therapyType))
	}

	if !draft.Sensory.isEmpty() {
		input.SensoryProfile = &apiclient.SensoryProfileInput{
			Visual:     strings.TrimSpace(draft.Sensory.Visual),
			Auditory:   strings.TrimSpace(draft.Sensory.Auditory),
			Tactile:    strings.TrimSpace(draft.Sensory.Tactile),
			Vestibular: strings.TrimSpace(draft.Sensory.Vestibular),
			Oral:       strings.TrimSpace(draft.Sensory.Oral),
		}
	}

	return input
}
