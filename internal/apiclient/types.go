package apiclient

import "time"

// Wire types shared by the client and the intake wizard. Dates travel as
// YYYY-MM-DD strings.

type StaffProfile struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Disabled bool   `json:"disabled"`
}

type LoginResult struct {
	Staff     StaffProfile `json:"staff"`
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
}

type SensoryProfileInput struct {
	Visual     string `json:"visual,omitempty"`
	Auditory   string `json:"auditory,omitempty"`
	Tactile    string `json:"tactile,omitempty"`
	Vestibular string `json:"vestibular,omitempty"`
	Oral       string `json:"oral,omitempty"`
}

type CreateClientInput struct {
	FirstName          string               `json:"first_name"`
	LastName           string               `json:"last_name"`
	DateOfBirth        string               `json:"date_of_birth"`
	TherapyStart       string               `json:"therapy_start"`
	Status             string               `json:"status,omitempty"`
	PhotoURL           string               `json:"photo_url,omitempty"`
	TherapyTypes       []string             `json:"therapy_types"`
	SensoryProfile     *SensoryProfileInput `json:"sensory_profile,omitempty"`
	Preferences        []string             `json:"preferences,omitempty"`
	Dislikes           []string             `json:"dislikes,omitempty"`
	CommunicationNotes string               `json:"communication_notes,omitempty"`
}

type ClientRecord struct {
	ID           uint      `json:"id"`
	PublicID     string    `json:"public_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	TherapyStart time.Time `json:"therapy_start"`
	Status       string    `json:"status"`
	TherapyTypes string    `json:"therapy_types"`
}

type AssignTherapistInput struct {
	TherapistID uint `json:"therapist_id"`
	Primary     bool `json:"primary"`
}

type LinkCaregiverInput struct {
	CaregiverID  uint   `json:"caregiver_id,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Primary      bool   `json:"primary"`
}

type TherapistRecord struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type CaregiverRecord struct {
	ID           uint   `json:"id"`
	FullName     string `json:"full_name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}
