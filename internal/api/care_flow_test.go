package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/brightsteps/brightsteps/internal/models"
)

func TestGoalProgressFlow(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)
	clientID := createTestClient(t, app, code)

	body := doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/goals", clientID), code,
			map[string]any{"title": "Requests help", "therapy_type": "aba"}),
		http.StatusCreated)
	goalBody, ok := body["goal"].(map[string]any)
	if !ok {
		t.Fatalf("goal payload missing: %v", body)
	}
	goalID := uint(goalBody["id"].(float64))

	body = doJSON(t, app,
		jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/goals/%d/progress", goalID), code,
			map[string]any{"progress": 150}),
		http.StatusOK)
	goalBody = body["goal"].(map[string]any)
	if goalBody["progress"].(float64) != 100 {
		t.Fatalf("progress = %v, want clamped to 100", goalBody["progress"])
	}
	if goalBody["status"] != models.GoalStatusMet {
		t.Fatalf("status = %v, want met", goalBody["status"])
	}

	doJSON(t, app,
		jsonRequest(t, http.MethodPatch, "/api/goals/9999/progress", code, map[string]any{"progress": 10}),
		http.StatusNotFound)

	doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/goals", clientID), code,
			map[string]any{"title": "Off menu", "therapy_type": "music"}),
		http.StatusBadRequest)
}

func TestHomeworkStatusFlow(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)
	clientID := createTestClient(t, app, code)

	body := doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/homework", clientID), code,
			map[string]any{"title": "Practice requesting", "instructions": "ten trials a day", "due_date": "2026-09-05"}),
		http.StatusCreated)
	homeworkBody, ok := body["homework"].(map[string]any)
	if !ok {
		t.Fatalf("homework payload missing: %v", body)
	}
	if homeworkBody["status"] != models.HomeworkStatusAssigned {
		t.Fatalf("status = %v, want assigned", homeworkBody["status"])
	}
	assignmentID := uint(homeworkBody["id"].(float64))

	doJSON(t, app,
		jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/homework/%d/status", assignmentID), code,
			map[string]any{"status": "lost"}),
		http.StatusBadRequest)

	body = doJSON(t, app,
		jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/homework/%d/status", assignmentID), code,
			map[string]any{"status": "completed"}),
		http.StatusOK)
	if body["homework"].(map[string]any)["status"] != models.HomeworkStatusCompleted {
		t.Fatalf("status after update = %v", body["homework"])
	}
}

func TestSessionNotesFlow(t *testing.T) {
	app, database := newTestApp(t)
	_, code := issueTestAccessCode(t, database, "Dana Reeves", models.StaffRoleAdmin)
	therapist := seedTherapist(t, database, "Jordan Blake", models.TherapySpeech)
	clientID := createTestClient(t, app, code)

	doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/sessions", clientID), code,
			map[string]any{
				"therapist_id": therapist.ID,
				"session_date": "2026-08-27",
				"therapy_type": "speech",
				"zone":         "green",
				"summary":      "worked on /s/ blends",
			}),
		http.StatusCreated)

	doJSON(t, app,
		jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/clients/%d/sessions", clientID), code,
			map[string]any{"therapy_type": "speech", "zone": "purple", "summary": "x"}),
		http.StatusBadRequest)

	body := doJSON(t, app,
		jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/clients/%d/sessions", clientID), code, nil),
		http.StatusOK)
	sessions, ok := body["sessions"].([]any)
	if !ok || len(sessions) != 1 {
		t.Fatalf("sessions = %v, want one", body["sessions"])
	}
}
