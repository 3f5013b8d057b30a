package models

import "time"

const (
	GoalStatusActive   = "active"
	GoalStatusMet      = "met"
	GoalStatusArchived = "archived"
)

const (
	HomeworkStatusAssigned  = "assigned"
	HomeworkStatusCompleted = "completed"
	HomeworkStatusSkipped   = "skipped"
)

// Regulation zones used in session notes for mood tracking.
const (
	ZoneGreen  = "green"
	ZoneYellow = "yellow"
	ZoneOrange = "orange"
	ZoneRed    = "red"
	ZoneBlue   = "blue"
)

// Goal is a therapy goal for a client. Progress is a whole percentage in
// [0, 100].
type Goal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	TherapyType string    `gorm:"not null" json:"therapy_type"`
	Status      string    `gorm:"not null;default:active" json:"status"`
	Progress    int       `gorm:"not null;default:0" json:"progress"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// SessionNote records a single therapy session, including the regulation
// zone observed during the session.
type SessionNote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	TherapistID uint      `gorm:"index" json:"therapist_id"`
	SessionDate time.Time `gorm:"not null" json:"session_date"`
	TherapyType string    `gorm:"not null" json:"therapy_type"`
	Zone        string    `json:"zone"`
	Summary     string    `gorm:"not null" json:"summary"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// HomeworkAssignment is a take-home exercise assigned to a client's family.
type HomeworkAssignment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ClientID     uint       `gorm:"not null;index" json:"client_id"`
	Title        string     `gorm:"not null" json:"title"`
	Instructions string     `json:"instructions"`
	DueDate      *time.Time `json:"due_date"`
	Status       string     `gorm:"not null;default:assigned" json:"status"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

func IsValidZone(value string) bool {
	switch value {
	case ZoneGreen, ZoneYellow, ZoneOrange, ZoneRed, ZoneBlue:
		return true
	default:
		return false
	}
}

func IsValidGoalStatus(value string) bool {
	switch value {
	case GoalStatusActive, GoalStatusMet, GoalStatusArchived:
		return true
	default:
		return false
	}
}

func IsValidHomeworkStatus(value string) bool {
	switch value {
	case HomeworkStatusAssigned, HomeworkStatusCompleted, HomeworkStatusSkipped:
		return true
	default:
		return false
	}
}
