package models

import (
	"strings"
	"time"
)

const (
	TherapyABA    = "aba"
	TherapySpeech = "speech"
	TherapyOT     = "ot"
)

const (
	ClientStatusActive   = "active"
	ClientStatusPaused   = "paused"
	ClientStatusArchived = "archived"
)

// Client is a child enrolled with the practice. Therapy types and the
// preference lists are stored as comma-joined columns; the five sensory
// channels are plain optional text columns.
type Client struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PublicID     string    `gorm:"uniqueIndex;not null" json:"public_id"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	DateOfBirth  time.Time `gorm:"not null" json:"date_of_birth"`
	TherapyStart time.Time `gorm:"not null" json:"therapy_start"`
	Status       string    `gorm:"not null;default:active" json:"status"`
	PhotoURL     string    `json:"photo_url"`
	TherapyTypes string    `gorm:"not null" json:"therapy_types"`

	SensoryVisual     string `json:"sensory_visual"`
	SensoryAuditory   string `json:"sensory_auditory"`
	SensoryTactile    string `json:"sensory_tactile"`
	SensoryVestibular string `json:"sensory_vestibular"`
	SensoryOral       string `json:"sensory_oral"`

	Preferences        string `json:"preferences"`
	Dislikes           string `json:"dislikes"`
	CommunicationNotes string `json:"communication_notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func IsValidTherapyType(value string) bool {
	switch value {
	case TherapyABA, TherapySpeech, TherapyOT:
		return true
	default:
		return false
	}
}

func IsValidClientStatus(value string) bool {
	switch value {
	case ClientStatusActive, ClientStatusPaused, ClientStatusArchived:
		return true
	default:
		return false
	}
}

// JoinList serializes a list column value; SplitList is its inverse and also
// tolerates hand-entered input with stray commas and whitespace.
func JoinList(values []string) string {
	return strings.Join(values, ",")
}

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
