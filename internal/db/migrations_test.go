package db

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/brightsteps/brightsteps/internal/models"
)

func TestOpenSQLiteAppliesMigrations(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "brightsteps-migrations-test.db")

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	defer sqlDB.Close()

	for _, table := range []string{
		"staff_members", "clients", "therapists", "caregivers",
		"client_therapists", "client_caregivers",
		"goals", "session_notes", "homework_assignments",
	} {
		var count int64
		err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error
		if err != nil {
			t.Fatalf("inspect schema for %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("table %s was not created", table)
		}
	}

	// Reopening must be a no-op: every migration is already recorded.
	reopened, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	reopenedDB, err := reopened.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	defer reopenedDB.Close()

	var applied int64
	if err := reopened.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("no migrations recorded in schema_migrations")
	}

	// The schema must accept a model round trip.
	client := models.Client{
		PublicID:     "test-public-id",
		FirstName:    "Mia",
		LastName:     "Torres",
		Status:       models.ClientStatusActive,
		TherapyTypes: "aba",
	}
	if err := reopened.Create(&client).Error; err != nil {
		t.Fatalf("insert client through migrated schema: %v", err)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	got := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\nCREATE INDEX idx ON a(id);\n;")
	want := []string{"CREATE TABLE a (id INTEGER)", "CREATE INDEX idx ON a(id)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitSQLStatements = %v, want %v", got, want)
	}
}
