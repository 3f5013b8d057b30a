package db

import (
	"github.com/brightsteps/brightsteps/internal/models"
	"gorm.io/gorm"
)

type DirectoryRepository struct {
	database *gorm.DB
}

func NewDirectoryRepository(database *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{database: database}
}

func (repo *DirectoryRepository) ListTherapists() ([]models.Therapist, error) {
	therapists := make([]models.Therapist, 0)
	if err := repo.database.Order("full_name").Find(&therapists).Error; err != nil {
		return nil, err
	}
	return therapists, nil
}

func (repo *DirectoryRepository) TherapistExists(therapistID uint) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.Therapist{}).Where("id = ?", therapistID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *DirectoryRepository) CreateTherapist(therapist *models.Therapist) error {
	return repo.database.Create(therapist).Error
}

func (repo *DirectoryRepository) ListCaregivers() ([]models.Caregiver, error) {
	caregivers := make([]models.Caregiver, 0)
	if err := repo.database.Order("full_name").Find(&caregivers).Error; err != nil {
		return nil, err
	}
	return caregivers, nil
}

func (repo *DirectoryRepository) CaregiverExists(caregiverID uint) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.Caregiver{}).Where("id = ?", caregiverID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *DirectoryRepository) CreateCaregiver(caregiver *models.Caregiver) error {
	return repo.database.Create(caregiver).Error
}
