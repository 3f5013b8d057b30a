package api

type loginInput struct {
	AccessCode string `json:"access_code"`
}

type sensoryProfileInput struct {
	Visual     string `json:"visual,omitempty"`
	Auditory   string `json:"auditory,omitempty"`
	Tactile    string `json:"tactile,omitempty"`
	Vestibular string `json:"vestibular,omitempty"`
	Oral       string `json:"oral,omitempty"`
}

type createClientInput struct {
	FirstName          string               `json:"first_name"`
	LastName           string               `json:"last_name"`
	DateOfBirth        string               `json:"date_of_birth"`
	TherapyStart       string               `json:"therapy_start"`
	Status             string               `json:"status"`
	PhotoURL           string               `json:"photo_url"`
	TherapyTypes       []string             `json:"therapy_types"`
	SensoryProfile     *sensoryProfileInput `json:"sensory_profile,omitempty"`
	Preferences        []string             `json:"preferences,omitempty"`
	Dislikes           []string             `json:"dislikes,omitempty"`
	CommunicationNotes string               `json:"communication_notes,omitempty"`
}

type assignTherapistInput struct {
	TherapistID uint `json:"therapist_id"`
	Primary     bool `json:"primary"`
}

type linkCaregiverInput struct {
	CaregiverID  uint   `json:"caregiver_id,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Primary      bool   `json:"primary"`
}

type createGoalInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TherapyType string `json:"therapy_type"`
}

type updateProgressInput struct {
	Progress int `json:"progress"`
}

type createSessionNoteInput struct {
	TherapistID uint   `json:"therapist_id"`
	SessionDate string `json:"session_date"`
	TherapyType string `json:"therapy_type"`
	Zone        string `json:"zone"`
	Summary     string `json:"summary"`
}

type createHomeworkInput struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	DueDate      string `json:"due_date"`
}

type updateStatusInput struct {
	Status string `json:"status"`
}
