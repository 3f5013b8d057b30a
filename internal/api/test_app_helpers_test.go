package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/brightsteps/brightsteps/internal/db"
	"github.com/brightsteps/brightsteps/internal/models"
	"github.com/brightsteps/brightsteps/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "brightsteps-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler := NewHandler(database, "test-secret-key")
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

// issueTestAccessCode provisions a staff member and returns the plaintext
// code, the same path the -issue-code server flag takes.
func issueTestAccessCode(t *testing.T, database *gorm.DB, fullName string, role string) (models.StaffMember, string) {
	t.Helper()

	setup := services.NewSetupService(db.NewStaffRepository(database))
	staff, code, err := setup.IssueAccessCode(fullName, role)
	if err != nil {
		t.Fatalf("issue access code: %v", err)
	}
	return staff, code
}

func jsonRequest(t *testing.T, method string, path string, accessCode string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	if accessCode != "" {
		request.Header.Set("X-Staff-Access-Code", accessCode)
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, expectedStatus int) map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s status = %d, want %d (body: %s)",
			request.Method, request.URL.Path, response.StatusCode, expectedStatus, raw)
	}

	if len(raw) == 0 {
		return nil
	}
	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return decoded
}

func validClientPayload() map[string]any {
	return map[string]any{
		"first_name":    "Mia",
		"last_name":     "Torres",
		"date_of_birth": "2019-06-15",
		"therapy_start": "2025-01-10",
		"therapy_types": []string{"aba", "speech"},
		"preferences":   []string{"Dinosaurs", "Blocks"},
	}
}
