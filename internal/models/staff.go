package models

import "time"

const (
	StaffRoleAdmin     = "admin"
	StaffRoleTherapist = "therapist"
)

// StaffMember is an internal user of the practice console. Authentication is
// a shared access code: only the bcrypt hash is stored, the plaintext code is
// printed once at issue time.
type StaffMember struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FullName       string    `gorm:"not null" json:"full_name"`
	Role           string    `gorm:"not null;default:therapist" json:"role"`
	AccessCodeHash string    `gorm:"not null" json:"-"`
	Disabled       bool      `gorm:"not null;default:false" json:"disabled"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func IsValidStaffRole(role string) bool {
	return role == StaffRoleAdmin || role == StaffRoleTherapist
}
