package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/brightsteps/brightsteps/internal/api"
	"github.com/brightsteps/brightsteps/internal/db"
	"github.com/brightsteps/brightsteps/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	issueName := flag.String("issue-code", "", "issue an access code for the named staff member and exit")
	issueRole := flag.String("role", "therapist", "staff role used with -issue-code (admin or therapist)")
	flag.Parse()

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "brightsteps.db"))
	port := getEnv("PORT", "8080")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if *issueName != "" {
		runIssueCode(database, *issueName, *issueRole)
		return
	}

	handler := api.NewHandler(database, secretKey)

	app := fiber.New(fiber.Config{
		AppName:               "BrightSteps",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("BrightSteps listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// runIssueCode provisions a staff member and prints the plaintext access
// code exactly once.
func runIssueCode(database *gorm.DB, fullName string, role string) {
	setup := services.NewSetupService(db.NewStaffRepository(database))
	staff, code, err := setup.IssueAccessCode(fullName, role)
	if err != nil {
		log.Fatalf("issue access code: %v", err)
	}
	fmt.Printf("✓ Access code issued for %s (%s)\n", staff.FullName, staff.Role)
	fmt.Printf("Access code: %s\n", code)
	fmt.Println("Store it safely, it will not be shown again.")
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
