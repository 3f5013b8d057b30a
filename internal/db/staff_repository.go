package db

import (
	"github.com/brightsteps/brightsteps/internal/models"
	"gorm.io/gorm"
)

type StaffRepository struct {
	database *gorm.DB
}

func NewStaffRepository(database *gorm.DB) *StaffRepository {
	return &StaffRepository{database: database}
}

func (repo *StaffRepository) FindByID(staffID uint) (models.StaffMember, error) {
	var staff models.StaffMember
	if err := repo.database.First(&staff, staffID).Error; err != nil {
		return models.StaffMember{}, err
	}
	return staff, nil
}

// ListWithAccessCodeHash returns every staff member that has a stored hash,
// including disabled ones: a disabled member must still match their code so
// the login path can answer 403 instead of 401.
func (repo *StaffRepository) ListWithAccessCodeHash() ([]models.StaffMember, error) {
	staff := make([]models.StaffMember, 0)
	if err := repo.database.Where("access_code_hash <> ''").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (repo *StaffRepository) Create(staff *models.StaffMember) error {
	return repo.database.Create(staff).Error
}

func (repo *StaffRepository) Save(staff *models.StaffMember) error {
	return repo.database.Save(staff).Error
}
