package db

import (
	"errors"

	"github.com/brightsteps/brightsteps/internal/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	database *gorm.DB
}

func NewClientRepository(database *gorm.DB) *ClientRepository {
	return &ClientRepository{database: database}
}

func (repo *ClientRepository) Create(client *models.Client) error {
	return repo.database.Create(client).Error
}

func (repo *ClientRepository) FindByID(clientID uint) (models.Client, error) {
	var client models.Client
	if err := repo.database.First(&client, clientID).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (repo *ClientRepository) List() ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := repo.database.Order("last_name, first_name").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (repo *ClientRepository) Exists(clientID uint) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AssignTherapist upserts the link row. A link created with the primary flag
// demotes any previous primary therapist for the client.
func (repo *ClientRepository) AssignTherapist(clientID uint, therapistID uint, primary bool) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if primary {
			if err := tx.Model(&models.ClientTherapist{}).
				Where("client_id = ?", clientID).
				Update("primary", false).Error; err != nil {
				return err
			}
		}

		var link models.ClientTherapist
		err := tx.Where("client_id = ? AND therapist_id = ?", clientID, therapistID).First(&link).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			link = models.ClientTherapist{ClientID: clientID, TherapistID: therapistID, Primary: primary}
			return tx.Create(&link).Error
		case err != nil:
			return err
		default:
			link.Primary = primary
			return tx.Save(&link).Error
		}
	})
}

// LinkCaregiver mirrors AssignTherapist for caregiver links.
func (repo *ClientRepository) LinkCaregiver(clientID uint, caregiverID uint, primary bool) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if primary {
			if err := tx.Model(&models.ClientCaregiver{}).
				Where("client_id = ?", clientID).
				Update("primary", false).Error; err != nil {
				return err
			}
		}

		var link models.ClientCaregiver
		err := tx.Where("client_id = ? AND caregiver_id = ?", clientID, caregiverID).First(&link).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			link = models.ClientCaregiver{ClientID: clientID, CaregiverID: caregiverID, Primary: primary}
			return tx.Create(&link).Error
		case err != nil:
			return err
		default:
			link.Primary = primary
			return tx.Save(&link).Error
		}
	})
}

func (repo *ClientRepository) TherapistLinks(clientID uint) ([]models.ClientTherapist, error) {
	links := make([]models.ClientTherapist, 0)
	if err := repo.database.Where("client_id = ?", clientID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (repo *ClientRepository) CaregiverLinks(clientID uint) ([]models.ClientCaregiver, error) {
	links := make([]models.ClientCaregiver, 0)
	if err := repo.database.Where("client_id = ?", clientID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
