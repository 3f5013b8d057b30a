package services

import (
	"errors"
	"strings"
	"time"

	"github.com/brightsteps/brightsteps/internal/models"
	"github.com/google/uuid"
)

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrTherapistNotFound    = errors.New("therapist not found")
	ErrCaregiverNotFound    = errors.New("caregiver not found")
	ErrCaregiverNameMissing = errors.New("caregiver full name is required")
	ErrRelationshipMissing  = errors.New("caregiver relationship is required")
)

type ClientRecordRepository interface {
	Create(client *models.Client) error
	FindByID(clientID uint) (models.Client, error)
	List() ([]models.Client, error)
	Exists(clientID uint) (bool, error)
	AssignTherapist(clientID uint, therapistID uint, primary bool) error
	LinkCaregiver(clientID uint, caregiverID uint, primary bool) error
	TherapistLinks(clientID uint) ([]models.ClientTherapist, error)
	CaregiverLinks(clientID uint) ([]models.ClientCaregiver, error)
}

type ClientDirectoryRepository interface {
	TherapistExists(therapistID uint) (bool, error)
	CaregiverExists(caregiverID uint) (bool, error)
	CreateCaregiver(caregiver *models.Caregiver) error
}

type ClientService struct {
	clients   ClientRecordRepository
	directory ClientDirectoryRepository
}

func NewClientService(clients ClientRecordRepository, directory ClientDirectoryRepository) *ClientService {
	return &ClientService{clients: clients, directory: directory}
}

// CreateClient persists a validated intake payload. The caller is expected to
// have run ValidateNewClient first; the service only normalizes.
func (service *ClientService) CreateClient(input NewClientInput) (models.Client, error) {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = models.ClientStatusActive
	}

	client := models.Client{
		PublicID:     uuid.NewString(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		DateOfBirth:  input.DateOfBirth,
		TherapyStart: input.TherapyStart,
		Status:       status,
		PhotoURL:     strings.TrimSpace(input.PhotoURL),
		TherapyTypes: models.JoinList(input.TherapyTypes),

		SensoryVisual:     strings.TrimSpace(input.SensoryVisual),
		SensoryAuditory:   strings.TrimSpace(input.SensoryAuditory),
		SensoryTactile:    strings.TrimSpace(input.SensoryTactile),
		SensoryVestibular: strings.TrimSpace(input.SensoryVestibular),
		SensoryOral:       strings.TrimSpace(input.SensoryOral),

		Preferences:        models.JoinList(input.Preferences),
		Dislikes:           models.JoinList(input.Dislikes),
		CommunicationNotes: strings.TrimSpace(input.CommunicationNotes),
	}

	if err := service.clients.Create(&client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (service *ClientService) FindByID(clientID uint) (models.Client, error) {
	return service.clients.FindByID(clientID)
}

func (service *ClientService) List() ([]models.Client, error) {
	return service.clients.List()
}

func (service *ClientService) AssignTherapist(clientID uint, therapistID uint, primary bool) error {
	clientExists, err := service.clients.Exists(clientID)
	if err != nil {
		return err
	}
	if !clientExists {
		return ErrClientNotFound
	}

	therapistExists, err := service.directory.TherapistExists(therapistID)
	if err != nil {
		return err
	}
	if !therapistExists {
		return ErrTherapistNotFound
	}

	return service.clients.AssignTherapist(clientID, therapistID, primary)
}

// LinkExistingCaregiver attaches an already-known caregiver to a client.
func (service *ClientService) LinkExistingCaregiver(clientID uint, caregiverID uint, primary bool) error {
	clientExists, err := service.clients.Exists(clientID)
	if err != nil {
		return err
	}
	if !clientExists {
		return ErrClientNotFound
	}

	caregiverExists, err := service.directory.CaregiverExists(caregiverID)
	if err != nil {
		return err
	}
	if !caregiverExists {
		return ErrCaregiverNotFound
	}

	return service.clients.LinkCaregiver(clientID, caregiverID, primary)
}

// CreateAndLinkCaregiver creates a new directory entry and links it in one
// operation, the create-new branch of the intake wizard.
func (service *ClientService) CreateAndLinkCaregiver(clientID uint, fullName string, relationship string, phone string, email string, primary bool) (models.Caregiver, error) {
	clientExists, err := service.clients.Exists(clientID)
	if err != nil {
		return models.Caregiver{}, err
	}
	if !clientExists {
		return models.Caregiver{}, ErrClientNotFound
	}

	trimmedName := strings.TrimSpace(fullName)
	if trimmedName == "" {
		return models.Caregiver{}, ErrCaregiverNameMissing
	}
	trimmedRelationship := strings.TrimSpace(relationship)
	if trimmedRelationship == "" {
		return models.Caregiver{}, ErrRelationshipMissing
	}

	caregiver := models.Caregiver{
		FullName:     trimmedName,
		Relationship: trimmedRelationship,
		Phone:        strings.TrimSpace(phone),
		Email:        strings.TrimSpace(email),
		CreatedAt:    time.Now(),
	}
	if err := service.directory.CreateCaregiver(&caregiver); err != nil {
		return models.Caregiver{}, err
	}

	if err := service.clients.LinkCaregiver(clientID, caregiver.ID, primary); err != nil {
		return models.Caregiver{}, err
	}
	return caregiver, nil
}

func (service *ClientService) TherapistLinks(clientID uint) ([]models.ClientTherapist, error) {
	return service.clients.TherapistLinks(clientID)
}

func (service *ClientService) CaregiverLinks(clientID uint) ([]models.ClientCaregiver, error) {
	return service.clients.CaregiverLinks(clientID)
}
