package handlers_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"hackhub-api/internal/models"
	"hackhub-api/internal/store"
	"hackhub-api/internal/testutil"
)

const adminEmail = "admin@hackhub.dev"

func adminStore() *testutil.MemoryStore {
	return testutil.NewMemoryStore(adminEmail)
}

func TestAdminEndpointsRequireIdentity(t *testing.T) {
	mem := adminStore()
	r := newTestServer(mem)

	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/stats"},
		{"GET", "/api/admin/hackathons"},
		{"POST", "/api/admin/hackathons/1/approve"},
		{"PUT", "/api/admin/hackathons/1"},
		{"DELETE", "/api/admin/hackathons/1"},
	}

	for _, ep := range endpoints {
		t.Run("no identity "+ep.method+" "+ep.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, testutil.MakeRequest(ep.method, ep.path, nil, nil))
			testutil.AssertStatus(t, w, 401)
			testutil.AssertError(t, w, "Unauthorized")
		})

		t.Run("garbage token "+ep.method+" "+ep.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, testutil.MakeRequest(ep.method, ep.path, nil, testutil.AuthHeader("not-a-token")))
			testutil.AssertStatus(t, w, 401)
			testutil.AssertError(t, w, "Unauthorized")
		})

		t.Run("non-admin "+ep.method+" "+ep.path, func(t *testing.T) {
			token := testutil.IdentityToken(t, "visitor@example.com")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, testutil.MakeRequest(ep.method, ep.path, nil, testutil.AuthHeader(token)))
			testutil.AssertStatus(t, w, 403)
			testutil.AssertError(t, w, "Forbidden - Admin access required")
		})
	}
}

func TestGetStats(t *testing.T) {
	mem := adminStore()
	mem.Seed(approvedHackathon("Done Hack", "online", "completed", "2025-01-01"))
	mem.Seed(approvedHackathon("Live Hack", "offline", "ongoing", "2026-01-01"))
	mem.Seed(models.Hackathon{
		Name:      "Waiting Hack",
		StartDate: date("2026-06-01"),
		EndDate:   date("2026-06-03"),
		Mode:      "online",
		Status:    "upcoming",
	})

	r := newTestServer(mem)
	token := testutil.IdentityToken(t, adminEmail)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("GET", "/api/admin/stats", nil, testutil.AuthHeader(token)))

	testutil.AssertStatus(t, w, 200)
	var got store.Stats
	testutil.DecodeJSON(t, w, &got)

	want := store.Stats{Total: 3, Pending: 1, Approved: 2, Ongoing: 1, Completed: 1}
	if got != want {
		t.Errorf("Expected stats %+v, got %+v", want, got)
	}
}

func TestAdminGetHackathonsIncludesUnapproved(t *testing.T) {
	mem := adminStore()
	older := approvedHackathon("Older Hack", "online", "upcoming", "2026-01-01")
	older.CreatedAt = time.Now().Add(-time.Hour)
	mem.Seed(older)
	mem.Seed(models.Hackathon{
		Name:      "Newer Pending Hack",
		StartDate: date("2026-02-01"),
		EndDate:   date("2026-02-03"),
		Mode:      "offline",
		Status:    "upcoming",
	})

	r := newTestServer(mem)
	token := testutil.IdentityToken(t, adminEmail)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("GET", "/api/admin/hackathons", nil, testutil.AuthHeader(token)))

	testutil.AssertStatus(t, w, 200)
	var got []models.Hackathon
	testutil.DecodeJSON(t, w, &got)
	if len(got) != 2 {
		t.Fatalf("Expected 2 hackathons, got %d", len(got))
	}
	// Newest first.
	if got[0].Name != "Newer Pending Hack" || got[1].Name != "Older Hack" {
		t.Errorf("Expected created_at descending order, got %s then %s", got[0].Name, got[1].Name)
	}
}

func TestApprovalRoundTrip(t *testing.T) {
	mem := adminStore()
	h := mem.Seed(models.Hackathon{
		Name:      "Queue Hack",
		StartDate: date("2026-03-01"),
		EndDate:   date("2026-03-03"),
		Mode:      "online",
		Status:    "upcoming",
	})

	r := newTestServer(mem)
	token := testutil.IdentityToken(t, adminEmail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("POST", "/api/admin/hackathons/1/approve",
		map[string]bool{"approve": true}, testutil.AuthHeader(token)))
	testutil.AssertStatus(t, w, 200)

	var resp struct {
		Message   string           `json:"message"`
		Hackathon models.Hackathon `json:"hackathon"`
	}
	testutil.DecodeJSON(t, w, &resp)
	if resp.Message != "Hackathon approved successfully" {
		t.Errorf("Unexpected message %q", resp.Message)
	}
	if !resp.Hackathon.Approved || resp.Hackathon.ApprovedAt == nil || resp.Hackathon.ApprovedBy == nil {
		t.Fatal("Approval must set approved, approved_at and approved_by together")
	}
	if *resp.Hackathon.ApprovedBy != adminEmail {
		t.Errorf("Expected approved_by %q, got %q", adminEmail, *resp.Hackathon.ApprovedBy)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("POST", "/api/admin/hackathons/1/approve",
		map[string]bool{"approve": false}, testutil.AuthHeader(token)))
	testutil.AssertStatus(t, w, 200)
	testutil.DecodeJSON(t, w, &resp)
	if resp.Message != "Hackathon unapproved successfully" {
		t.Errorf("Unexpected message %q", resp.Message)
	}

	stored := mem.Get(t, h.ID)
	if stored.Approved || stored.ApprovedAt != nil || stored.ApprovedBy != nil {
		t.Error("Unapproval must clear approved, approved_at and approved_by")
	}
}

func TestApproveNotFound(t *testing.T) {
	mem := adminStore()
	r := newTestServer(mem)
	token := testutil.IdentityToken(t, adminEmail)

	for _, id := range []string{"999", "not-a-number"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, testutil.MakeRequest("POST", "/api/admin/hackathons/"+id+"/approve",
			map[string]bool{"approve": true}, testutil.AuthHeader(token)))
		testutil.AssertStatus(t, w, 404)
		testutil.AssertError(t, w, "Hackathon not found")
	}
}

func TestUpdateHackathon(t *testing.T) {
	mem := adminStore()
	h := mem.Seed(approvedHackathon("Old Name", "online", "upcoming", "2026-03-01"))

	r := newTestServer(mem)
	token := testutil.IdentityToken(t, adminEmail)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("PUT", "/api/admin/hackathons/1", map[string]interface{}{
		"name":        "New Name",
		"description": "Updated",
		"start_date":  "2026-03-05",
		"end_date":    "2026-03-07",
		"mode":        "offline",
		"location":    "Berlin",
		"themes":      []string{"AI"},
		"status":      "ongoing",
	}, testutil.AuthHeader(token)))

	testutil.AssertStatus(t, w, 200)
	var got models.Hackathon
	testutil.DecodeJSON(t, w, &got)
	if got.Name != "New Name" || got.Status != "ongoing" || got.Location != "Berlin" {
		t.Errorf("Update not applied: %+v", got)
	}
	// Falsy sizes fall back to defaults.
	if got.MinTeamSize != 1 || got.MaxTeamSize != 6 {
		t.Errorf("Expected team size defaults 1/6, got %d/%d", got.MinTeamSize, got.MaxTeamSize)
	}
	// Approval metadata is not editable through update.
	stored := mem.Get(t, h.ID)
	if !stored.Approved || stored.ApprovedBy == nil {
		t.Error("Update must not touch approval metadata")
	}
}

func TestUpdateHackathonNotFound(t *testing.T) {
	mem := adminStore()
	r := newTestServer(mem)
	token := testutil.IdentityToken(t, adminEmail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("PUT", "/api/admin/hackathons/42", map[string]interface{}{
		"name":       "Ghost",
		"start_date": "2026-03-05",
		"end_date":   "2026-03-07",
		"mode":       "online",
	}, testutil.AuthHeader(token)))

	testutil.AssertStatus(t, w, 404)
	testutil.AssertError(t, w, "Hackathon not found")
}

func TestDeleteHackathon(t *testing.T) {
	mem := adminStore()
	mem.Seed(approvedHackathon("Doomed Hack", "online", "upcoming", "2026-03-01"))

	r := newTestServer(mem)
	token := testutil.IdentityToken(t, adminEmail)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("DELETE", "/api/admin/hackathons/1", nil, testutil.AuthHeader(token)))

	testutil.AssertStatus(t, w, 200)
	if len(mem.Hackathons) != 0 {
		t.Error("Record must be removed permanently")
	}

	// Deleting again is a 404.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("DELETE", "/api/admin/hackathons/1", nil, testutil.AuthHeader(token)))
	testutil.AssertStatus(t, w, 404)
	testutil.AssertError(t, w, "Hackathon not found")
}

func TestAdminStoreFailure(t *testing.T) {
	mem := adminStore()
	r := newTestServer(mem)
	token := testutil.IdentityToken(t, adminEmail)

	// The allow-list lookup itself failing is a server fault, not a 403.
	mem.Err = errors.New("connection refused")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest("GET", "/api/admin/stats", nil, testutil.AuthHeader(token)))
	testutil.AssertStatus(t, w, 500)
}
