package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/brightsteps/brightsteps/internal/db"
	"github.com/brightsteps/brightsteps/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func seedTherapist(t *testing.T, database *gorm.DB, fullName string, specialty string) models.Therapist {
	t.Helper()

	therapist := models.Therapist{FullName: fullName, Specialty: specialty}
	if err := db.NewDirectoryRepository(database).CreateTherapist(&therapist); err != nil {
		t.Fatalf("seed therapist: %v", err)
	}
	return therapist
}

func createTestClient(t *testing.T, app *fiber.App, accessCode string) uint {
	t.Helper()

	body := doJSON(t, app,
		jsonRequest(t, http.MethodPost, "/api/clients", accessCode, validClientPayload()),
		http.StatusCreated)
	clientBody, ok := body["client"].(map[string]any)
	if !ok {
		t.Fatalf("client payload missing: %v", body)
	}
	id, ok := clientBody["id"].(float64)
	if !ok {
		t.Fatalf("client id missing: %v", clientBody)
	}
	return uint(id)
}

func TestCreateClientPersistsNormalizedRecord(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)

	body := doJSON(t, app,
		jsonRequest(t, http.MethodPost, "/api/clients", code, validClientPayload()),
		http.StatusCreated)

	clientBody, ok := body["client"].(map[string]any)
	if !ok {
		t.Fatalf("client payload missing: %v", body)
	}
	if clientBody["public_id"] == "" || clientBody["public_id"] == nil {
		t.Fatal("public id was not assigned")
	}
	if clientBody["status"] != models.ClientStatusActive {
		t.Fatalf("status = %v, want active default", clientBody["status"])
	}
	if clientBody["therapy_types"] != "aba,speech" {
		t.Fatalf("therapy types = %v", clientBody["therapy_types"])
	}
}

func TestCreateClientValidationErrors(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)

	cases := []struct {
		name   string
		mutate func(map[string]any)
		field  string
	}{
		{"missing first name", func(p map[string]any) { p["first_name"] = "  " }, "first_name"},
		{"future date of birth", func(p map[string]any) { p["date_of_birth"] = "2100-01-01" }, "date_of_birth"},
		{"malformed date", func(p map[string]any) { p["date_of_birth"] = "15/06/2019" }, "date_of_birth"},
		{"no therapy types", func(p map[string]any) { p["therapy_types"] = []string{} }, "therapy_types"},
		{"unknown therapy type", func(p map[string]any) { p["therapy_types"] = []string{"music"} }, "therapy_types"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			payload := validClientPayload()
			testCase.mutate(payload)

			body := doJSON(t, app,
				jsonRequest(t, http.MethodPost, "/api/clients", code, payload),
				http.StatusBadRequest)

			fieldErrors, ok := body["field_errors"].(map[string]any)
			if !ok {
				t.Fatalf("field_errors missing: %v", body)
			}
			if _, present := fieldErrors[testCase.field]; !present {
				t.Fatalf("expected error for %s, got %v", testCase.field, fieldErrors)
			}
		})
	}
}

func TestClientsEndpointsRequireCredential(t *testing.T) {
	app, _ := newTestApp(t)

	doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/clients", "", nil), http.StatusUnauthorized)
	doJSON(t, app,
		jsonRequest(t, http.MethodPost, "/api/clients", "BSTP-XXXX-YYYY-ZZZZ", validClientPayload()),
		http.StatusUnauthorized)
}

func TestAssignTherapistEndpoint(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)
	therapist := seedTherapist(t, database, "Jordan Blake", models.TherapyABA)
	clientID := createTestClient(t, app, code)

	doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/therapists", clientID), code,
			map[string]any{"therapist_id": therapist.ID, "primary": true}),
		http.StatusOK)

	doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/therapists", clientID), code,
			map[string]any{"therapist_id": 9999}),
		http.StatusNotFound)

	doJSON(t, app,
		jsonRequest(t, http.MethodPost, "/api/clients/9999/therapists", code,
			map[string]any{"therapist_id": therapist.ID}),
		http.StatusNotFound)

	body := doJSON(t, app,
		jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/clients/%d", clientID), code, nil),
		http.StatusOK)
	links, ok := body["therapists"].([]any)
	if !ok || len(links) != 1 {
		t.Fatalf("therapist links = %v, want one", body["therapists"])
	}
}

func TestLinkCaregiverCreateNewBranch(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)
	clientID := createTestClient(t, app, code)

	body := doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/caregivers", clientID), code,
			map[string]any{
				"full_name":    "Elena Torres",
				"relationship": "mother",
				"phone":        "555-0101",
				"primary":      true,
			}),
		http.StatusCreated)

	caregiverBody, ok := body["caregiver"].(map[string]any)
	if !ok {
		t.Fatalf("caregiver payload missing: %v", body)
	}
	if caregiverBody["full_name"] != "Elena Torres" {
		t.Fatalf("caregiver name = %v", caregiverBody["full_name"])
	}
}

func TestLinkCaregiverExistingBranch(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)
	clientID := createTestClient(t, app, code)

	caregiver := models.Caregiver{FullName: "Elena Torres", Relationship: "mother"}
	if err := db.NewDirectoryRepository(database).CreateCaregiver(&caregiver); err != nil {
		t.Fatalf("seed caregiver: %v", err)
	}

	doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/caregivers", clientID), code,
			map[string]any{"caregiver_id": caregiver.ID, "primary": true}),
		http.StatusOK)

	doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/caregivers", clientID), code,
			map[string]any{"caregiver_id": 9999}),
		http.StatusNotFound)

	// Neither caregiver_id nor full_name present.
	doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/caregivers", clientID), code,
			map[string]any{"primary": true}),
		http.StatusBadRequest)
}

func TestListDirectoryEndpoints(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)
	seedTherapist(t, database, "Jordan Blake", models.TherapyOT)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/therapists", code, nil), http.StatusOK)
	therapists, ok := body["therapists"].([]any)
	if !ok || len(therapists) != 1 {
		t.Fatalf("therapists = %v, want one", body["therapists"])
	}

	body = doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/caregivers", code, nil), http.StatusOK)
	if _, ok := body["caregivers"]; !ok {
		t.Fatalf("caregivers key missing: %v", body)
	}
}
