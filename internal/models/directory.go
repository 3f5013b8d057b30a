package models

import "time"

// Therapist is a staff directory entry selectable during intake. Specialty is
// one of the therapy type constants.
type Therapist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"not null" json:"full_name"`
	Specialty string    `gorm:"not null" json:"specialty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// Caregiver is a parent or guardian in the directory. A caregiver may be
// linked to several clients (siblings).
type Caregiver struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Relationship string    `gorm:"not null" json:"relationship"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// ClientTherapist links a client to an assigned therapist. At most one link
// per client carries the primary flag.
type ClientTherapist struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	TherapistID uint      `gorm:"not null;index" json:"therapist_id"`
	Primary     bool      `gorm:"not null;default:false" json:"primary"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// ClientCaregiver links a client to a caregiver with the same primary
// semantics as therapist links.
type ClientCaregiver struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	CaregiverID uint      `gorm:"not null;index" json:"caregiver_id"`
	Primary     bool      `gorm:"not null;default:false" json:"primary"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
