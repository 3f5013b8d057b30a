package db

import (
	"github.com/brightsteps/brightsteps/internal/models"
	"gorm.io/gorm"
)

type CareRepository struct {
	database *gorm.DB
}

func NewCareRepository(database *gorm.DB) *CareRepository {
	return &CareRepository{database: database}
}

func (repo *CareRepository) CreateGoal(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *CareRepository) FindGoalByID(goalID uint) (models.Goal, error) {
	var goal models.Goal
	if err := repo.database.First(&goal, goalID).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (repo *CareRepository) SaveGoal(goal *models.Goal) error {
	return repo.database.Save(goal).Error
}

func (repo *CareRepository) ListGoals(clientID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.Where("client_id = ?", clientID).Order("created_at").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *CareRepository) CreateSessionNote(note *models.SessionNote) error {
	return repo.database.Create(note).Error
}

func (repo *CareRepository) ListSessionNotes(clientID uint) ([]models.SessionNote, error) {
	notes := make([]models.SessionNote, 0)
	if err := repo.database.Where("client_id = ?", clientID).Order("session_date DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *CareRepository) CreateHomework(assignment *models.HomeworkAssignment) error {
	return repo.database.Create(assignment).Error
}

func (repo *CareRepository) FindHomeworkByID(assignmentID uint) (models.HomeworkAssignment, error) {
	var assignment models.HomeworkAssignment
	if err := repo.database.First(&assignment, assignmentID).Error; err != nil {
		return models.HomeworkAssignment{}, err
	}
	return assignment, nil
}

func (repo *CareRepository) SaveHomework(assignment *models.HomeworkAssignment) error {
	return repo.database.Save(assignment).Error
}

func (repo *CareRepository) ListHomework(clientID uint) ([]models.HomeworkAssignment, error) {
	assignments := make([]models.HomeworkAssignment, 0)
	if err := repo.database.Where("client_id = ?", clientID).Order("created_at").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
