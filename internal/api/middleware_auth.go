package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brightsteps/brightsteps/internal/models"
	"github.com/brightsteps/brightsteps/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const accessCodeHeader = "X-Staff-Access-Code"

const staffTokenTTL = 12 * time.Hour

type staffClaims struct {
	StaffID uint   `json:"sid"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired accepts either the shared access code header or a bearer
// token issued by Login. 401 and 403 are reserved for credential rejection;
// nothing else on the server responds with those statuses.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	staff, err := handler.authenticateRequest(c)
	if err != nil {
		if errors.Is(err, services.ErrStaffDisabled) {
			return apiError(c, fiber.StatusForbidden, "staff member disabled")
		}
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextStaffKey, staff)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.StaffMember, error) {
	if code := strings.TrimSpace(c.Get(accessCodeHeader)); code != "" {
		staff, err := handler.authService.VerifyAccessCode(code)
		if err != nil {
			return nil, err
		}
		return &staff, nil
	}

	rawToken := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if after, found := strings.CutPrefix(rawToken, "Bearer "); found {
		return handler.authenticateToken(after)
	}

	return nil, errors.New("missing credentials")
}

func (handler *Handler) authenticateToken(rawToken string) (*models.StaffMember, error) {
	claims := &staffClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	staff, err := handler.authService.FindByID(claims.StaffID)
	if err != nil {
		return nil, err
	}
	if staff.Disabled {
		return nil, services.ErrStaffDisabled
	}
	return &staff, nil
}

func (handler *Handler) issueStaffToken(staff models.StaffMember, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(staffTokenTTL)
	claims := staffClaims{
		StaffID: staff.ID,
		Role:    staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(handler.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
