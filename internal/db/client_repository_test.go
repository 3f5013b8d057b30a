package db

import (
	"path/filepath"
	"testing"

	"github.com/brightsteps/brightsteps/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "brightsteps-repo-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func seedClient(t *testing.T, repo *ClientRepository, publicID string) models.Client {
	t.Helper()

	client := models.Client{
		PublicID:     publicID,
		FirstName:    "Mia",
		LastName:     "Torres",
		Status:       models.ClientStatusActive,
		TherapyTypes: "aba",
	}
	if err := repo.Create(&client); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func TestAssignTherapistDemotesPreviousPrimary(t *testing.T) {
	database := newTestDatabase(t)
	clients := NewClientRepository(database)
	directory := NewDirectoryRepository(database)

	client := seedClient(t, clients, "client-1")
	first := models.Therapist{FullName: "Jordan Blake", Specialty: models.TherapyABA}
	second := models.Therapist{FullName: "Casey Lin", Specialty: models.TherapySpeech}
	if err := directory.CreateTherapist(&first); err != nil {
		t.Fatalf("seed therapist: %v", err)
	}
	if err := directory.CreateTherapist(&second); err != nil {
		t.Fatalf("seed therapist: %v", err)
	}

	if err := clients.AssignTherapist(client.ID, first.ID, true); err != nil {
		t.Fatalf("assign first: %v", err)
	}
	if err := clients.AssignTherapist(client.ID, second.ID, true); err != nil {
		t.Fatalf("assign second: %v", err)
	}

	links, err := clients.TherapistLinks(client.ID)
	if err != nil {
		t.Fatalf("load links: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("links = %d, want 2", len(links))
	}

	primaryCount := 0
	for _, link := range links {
		if link.Primary {
			primaryCount++
			if link.TherapistID != second.ID {
				t.Fatalf("primary therapist = %d, want the most recent %d", link.TherapistID, second.ID)
			}
		}
	}
	if primaryCount != 1 {
		t.Fatalf("primary links = %d, want exactly one", primaryCount)
	}
}

func TestAssignTherapistUpsertsExistingLink(t *testing.T) {
	database := newTestDatabase(t)
	clients := NewClientRepository(database)
	directory := NewDirectoryRepository(database)

	client := seedClient(t, clients, "client-1")
	therapist := models.Therapist{FullName: "Jordan Blake", Specialty: models.TherapyABA}
	if err := directory.CreateTherapist(&therapist); err != nil {
		t.Fatalf("seed therapist: %v", err)
	}

	if err := clients.AssignTherapist(client.ID, therapist.ID, false); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := clients.AssignTherapist(client.ID, therapist.ID, true); err != nil {
		t.Fatalf("reassign: %v", err)
	}

	links, err := clients.TherapistLinks(client.ID)
	if err != nil {
		t.Fatalf("load links: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("links = %d, want the single upserted row", len(links))
	}
	if !links[0].Primary {
		t.Fatal("reassignment did not flip the primary flag")
	}
}

func TestLinkCaregiverDemotesPreviousPrimary(t *testing.T) {
	database := newTestDatabase(t)
	clients := NewClientRepository(database)
	directory := NewDirectoryRepository(database)

	client := seedClient(t, clients, "client-1")
	mother := models.Caregiver{FullName: "Elena Torres", Relationship: "mother"}
	father := models.Caregiver{FullName: "Luis Torres", Relationship: "father"}
	if err := directory.CreateCaregiver(&mother); err != nil {
		t.Fatalf("seed caregiver: %v", err)
	}
	if err := directory.CreateCaregiver(&father); err != nil {
		t.Fatalf("seed caregiver: %v", err)
	}

	if err := clients.LinkCaregiver(client.ID, mother.ID, true); err != nil {
		t.Fatalf("link mother: %v", err)
	}
	if err := clients.LinkCaregiver(client.ID, father.ID, true); err != nil {
		t.Fatalf("link father: %v", err)
	}

	links, err := clients.CaregiverLinks(client.ID)
	if err != nil {
		t.Fatalf("load links: %v", err)
	}
	primaryCount := 0
	for _, link := range links {
		if link.Primary {
			primaryCount++
		}
	}
	if primaryCount != 1 {
		t.Fatalf("primary caregiver links = %d, want exactly one", primaryCount)
	}
}
