package api

import (
	"github.com/brightsteps/brightsteps/internal/db"
	"github.com/brightsteps/brightsteps/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const contextStaffKey = "current_staff"

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	repositories  *db.Repositories
	authService   *services.AuthService
	clientService *services.ClientService
	careService   *services.CareService
}

func NewHandler(database *gorm.DB, secretKey string) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:            database,
		secretKey:     []byte(secretKey),
		repositories:  repositories,
		authService:   services.NewAuthService(repositories.Staff),
		clientService: services.NewClientService(repositories.Clients, repositories.Directory),
		careService:   services.NewCareService(repositories.Care),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
