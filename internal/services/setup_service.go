package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brightsteps/brightsteps/internal/models"
	"github.com/brightsteps/brightsteps/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrStaffNameMissing = errors.New("staff full name is required")
	ErrUnknownStaffRole = errors.New("unknown staff role")
)

type SetupStaffRepository interface {
	Create(staff *models.StaffMember) error
}

type SetupService struct {
	staff SetupStaffRepository
}

func NewSetupService(staff SetupStaffRepository) *SetupService {
	return &SetupService{staff: staff}
}

// IssueAccessCode provisions a staff member and returns the plaintext code.
// The code is shown exactly once; only its bcrypt hash is persisted.
func (service *SetupService) IssueAccessCode(fullName string, role string) (models.StaffMember, string, error) {
	trimmedName := strings.TrimSpace(fullName)
	if trimmedName == "" {
		return models.StaffMember{}, "", ErrStaffNameMissing
	}
	if !models.IsValidStaffRole(role) {
		return models.StaffMember{}, "", ErrUnknownStaffRole
	}

	code, err := security.NewAccessCode()
	if err != nil {
		return models.StaffMember{}, "", fmt.Errorf("generate access code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return models.StaffMember{}, "", fmt.Errorf("hash access code: %w", err)
	}

	staff := models.StaffMember{
		FullName:       trimmedName,
		Role:           role,
		AccessCodeHash: string(hash),
		CreatedAt:      time.Now(),
	}
	if err := service.staff.Create(&staff); err != nil {
		return models.StaffMember{}, "", fmt.Errorf("create staff member: %w", err)
	}

	return staff, code, nil
}
