// Package testutil provides HTTP helpers and an in-memory store fake for
// handler tests, so they run without a live PostgreSQL.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"hackhub-api/internal/auth"
	"hackhub-api/internal/config"
	"hackhub-api/internal/models"
	"hackhub-api/internal/store"

	"github.com/lib/pq"
)

// TestConfig returns a configuration suitable for handler tests.
func TestConfig() *config.Config {
	return &config.Config{
		Env:            "test",
		Port:           "0",
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// IdentityToken mints a signed identity token for the given email using the
// test secret.
func IdentityToken(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.MintToken(email, []byte(TestConfig().JWTSecret), time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint identity token: %v", err)
	}
	return token
}

// MemoryStore implements store.HackathonStore and store.AdminStore in
// memory, mirroring the ordering and filtering semantics of the gorm store.
type MemoryStore struct {
	Hackathons []models.Hackathon
	Admins     map[string]bool
	nextID     uint

	// Err, when set, is returned by every method; used to exercise the
	// store-failure paths.
	Err error
}

// NewMemoryStore returns an empty store with the given admin emails.
func NewMemoryStore(adminEmails ...string) *MemoryStore {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[e] = true
	}
	return &MemoryStore{Admins: admins, nextID: 1}
}

func (m *MemoryStore) ListApproved(_ context.Context, f store.ListFilter) ([]models.Hackathon, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	var out []models.Hackathon
	for _, h := range m.Hackathons {
		if !h.Approved {
			continue
		}
		if f.Status != "" && f.Status != "all" && h.Status != f.Status {
			continue
		}
		if f.Mode != "" && f.Mode != "all" && h.Mode != f.Mode {
			continue
		}
		if f.Search != "" && !matchesSearch(h, f.Search) {
			continue
		}
		out = append(out, h)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})

	return paginate(out, f.Limit, f.Offset), nil
}

func (m *MemoryStore) ListAll(_ context.Context, limit, offset int) ([]models.Hackathon, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]models.Hackathon, len(m.Hackathons))
	copy(out, m.Hackathons)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return paginate(out, limit, offset), nil
}

func (m *MemoryStore) Create(_ context.Context, h *models.Hackathon) error {
	if m.Err != nil {
		return m.Err
	}

	h.ID = m.nextID
	m.nextID++
	now := time.Now()
	h.CreatedAt = now
	h.UpdatedAt = now
	if h.Themes == nil {
		h.Themes = pq.StringArray{}
	}
	m.Hackathons = append(m.Hackathons, *h)
	return nil
}

func (m *MemoryStore) SetApproval(_ context.Context, id uint, adminEmail string, approve bool) (*models.Hackathon, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	for i := range m.Hackathons {
		if m.Hackathons[i].ID != id {
			continue
		}
		h := &m.Hackathons[i]
		if approve {
			now := time.Now()
			email := adminEmail
			h.Approved = true
			h.ApprovedAt = &now
			h.ApprovedBy = &email
		} else {
			h.Approved = false
			h.ApprovedAt = nil
			h.ApprovedBy = nil
		}
		h.UpdatedAt = time.Now()
		out := *h
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (m *MemoryStore) Update(_ context.Context, id uint, updated *models.Hackathon) (*models.Hackathon, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	for i := range m.Hackathons {
		if m.Hackathons[i].ID != id {
			continue
		}
		h := &m.Hackathons[i]
		h.Name = updated.Name
		h.Description = updated.Description
		h.StartDate = updated.StartDate
		h.EndDate = updated.EndDate
		h.RegistrationDeadline = updated.RegistrationDeadline
		h.RegistrationURL = updated.RegistrationURL
		h.WebsiteURL = updated.WebsiteURL
		h.Mode = updated.Mode
		h.Location = updated.Location
		h.MinTeamSize = updated.MinTeamSize
		h.MaxTeamSize = updated.MaxTeamSize
		h.TotalPrizes = updated.TotalPrizes
		h.Themes = updated.Themes
		h.OrganizerName = updated.OrganizerName
		h.OrganizerEmail = updated.OrganizerEmail
		h.Status = updated.Status
		h.UpdatedAt = time.Now()
		out := *h
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (m *MemoryStore) Delete(_ context.Context, id uint) error {
	if m.Err != nil {
		return m.Err
	}

	for i := range m.Hackathons {
		if m.Hackathons[i].ID == id {
			m.Hackathons = append(m.Hackathons[:i], m.Hackathons[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *MemoryStore) ComputeStats(_ context.Context) (store.Stats, error) {
	if m.Err != nil {
		return store.Stats{}, m.Err
	}

	var stats store.Stats
	for _, h := range m.Hackathons {
		stats.Total++
		if h.Approved {
			stats.Approved++
		} else {
			stats.Pending++
		}
		switch h.Status {
		case "ongoing":
			stats.Ongoing++
		case "completed":
			stats.Completed++
		}
	}
	return stats, nil
}

func (m *MemoryStore) IsAdmin(_ context.Context, email string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Admins[email], nil
}

// Seed inserts a fully-formed record, assigning an id and timestamps when
// unset, and returns the stored copy.
func (m *MemoryStore) Seed(h models.Hackathon) models.Hackathon {
	if h.ID == 0 {
		h.ID = m.nextID
		m.nextID++
	} else if h.ID >= m.nextID {
		m.nextID = h.ID + 1
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	if h.UpdatedAt.IsZero() {
		h.UpdatedAt = h.CreatedAt
	}
	if h.Themes == nil {
		h.Themes = pq.StringArray{}
	}
	m.Hackathons = append(m.Hackathons, h)
	return h
}

// Get returns a copy of the stored record with the given id, for
// assertions on persisted state.
func (m *MemoryStore) Get(t *testing.T, id uint) models.Hackathon {
	t.Helper()
	for _, h := range m.Hackathons {
		if h.ID == id {
			return h
		}
	}
	t.Fatalf("Hackathon %d not in store", id)
	return models.Hackathon{}
}

func matchesSearch(h models.Hackathon, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(h.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(h.Description), needle) {
		return true
	}
	for _, theme := range h.Themes {
		if strings.Contains(strings.ToLower(theme), needle) {
			return true
		}
	}
	return false
}

func paginate(hs []models.Hackathon, limit, offset int) []models.Hackathon {
	if offset >= len(hs) {
		return []models.Hackathon{}
	}
	hs = hs[offset:]
	if limit > 0 && limit < len(hs) {
		hs = hs[:limit]
	}
	return hs
}

// MakeRequest creates an HTTP test request with an optional JSON body.
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AuthHeader builds the Authorization header map for the given token.
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// DecodeJSON decodes the response body into the provided struct.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks a JSON error body against the expected message.
func AssertError(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	DecodeJSON(t, w, &body)
	if body.Error != expected {
		t.Errorf("Expected error %q, got %q", expected, body.Error)
	}
}
