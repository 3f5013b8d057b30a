package services

import (
	"errors"
	"strings"

	"github.com/brightsteps/brightsteps/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccessCodeInvalid = errors.New("access code invalid")
	ErrStaffDisabled     = errors.New("staff member disabled")
)

type AuthStaffRepository interface {
	FindByID(staffID uint) (models.StaffMember, error)
	ListWithAccessCodeHash() ([]models.StaffMember, error)
}

type AuthService struct {
	staff AuthStaffRepository
}

func NewAuthService(staff AuthStaffRepository) *AuthService {
	return &AuthService{staff: staff}
}

// VerifyAccessCode resolves an access code to the staff member that owns it.
// Returns ErrAccessCodeInvalid when no hash matches and ErrStaffDisabled when
// the matching member has been disabled: the two outcomes map to 401 and 403
// at the HTTP layer, which are the only statuses allowed for credential
// rejection.
func (service *AuthService) VerifyAccessCode(code string) (models.StaffMember, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return models.StaffMember{}, ErrAccessCodeInvalid
	}

	members, err := service.staff.ListWithAccessCodeHash()
	if err != nil {
		return models.StaffMember{}, err
	}

	for index := range members {
		hash := strings.TrimSpace(members[index].AccessCodeHash)
		if hash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(trimmed)) != nil {
			continue
		}
		if members[index].Disabled {
			return models.StaffMember{}, ErrStaffDisabled
		}
		return members[index], nil
	}

	return models.StaffMember{}, ErrAccessCodeInvalid
}

func (service *AuthService) FindByID(staffID uint) (models.StaffMember, error) {
	return service.staff.FindByID(staffID)
}
