package dto

import (
	"testing"
	"time"

	"hackhub-api/internal/models"

	"github.com/lib/pq"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain date", "2025-01-01", false},
		{"rfc3339", "2025-01-01T10:00:00Z", false},
		{"date with time", "2025-01-01 10:00", false},
		{"date with seconds", "2025-01-01 10:00:30", false},
		{"garbage", "next tuesday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestToModelDefaults(t *testing.T) {
	p := HackathonPayload{
		Name:      "HackX",
		StartDate: "2025-01-01",
		EndDate:   "2025-01-03",
		Mode:      "online",
	}

	h, err := p.ToModel()
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}
	if h.MinTeamSize != 1 || h.MaxTeamSize != 6 || h.TotalPrizes != 0 {
		t.Errorf("Expected defaults 1/6/0, got %d/%d/%d", h.MinTeamSize, h.MaxTeamSize, h.TotalPrizes)
	}
	if h.Themes == nil || len(h.Themes) != 0 {
		t.Errorf("Expected empty non-nil themes, got %#v", h.Themes)
	}
	if h.RegistrationDeadline != nil {
		t.Error("Expected nil registration deadline when absent")
	}
}

func TestToModelKeepsExplicitValues(t *testing.T) {
	p := HackathonPayload{
		Name:                 "HackX",
		StartDate:            "2025-01-01",
		EndDate:              "2025-01-03",
		RegistrationDeadline: "2024-12-20",
		Mode:                 "offline",
		Location:             "Berlin",
		MinTeamSize:          2,
		MaxTeamSize:          4,
		TotalPrizes:          10000,
		Themes:               []string{"AI", "Health"},
	}

	h, err := p.ToModel()
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}
	if h.MinTeamSize != 2 || h.MaxTeamSize != 4 || h.TotalPrizes != 10000 {
		t.Errorf("Explicit values overwritten: %d/%d/%d", h.MinTeamSize, h.MaxTeamSize, h.TotalPrizes)
	}
	if h.RegistrationDeadline == nil {
		t.Fatal("Expected registration deadline to be set")
	}
	if len(h.Themes) != 2 {
		t.Errorf("Expected 2 themes preserved in order, got %v", h.Themes)
	}
}

func TestToModelBadDate(t *testing.T) {
	p := HackathonPayload{
		Name:      "HackX",
		StartDate: "soon",
		EndDate:   "2025-01-03",
		Mode:      "online",
	}
	if _, err := p.ToModel(); err == nil {
		t.Error("Expected error for unparsable date")
	}
}

func TestToPublicOmitsModerationFields(t *testing.T) {
	now := time.Now()
	by := "admin@hackhub.dev"
	h := models.Hackathon{
		ID:             7,
		Name:           "HackX",
		Mode:           "online",
		Themes:         pq.StringArray{"AI"},
		OrganizerEmail: "secret@example.com",
		Approved:       true,
		ApprovedAt:     &now,
		ApprovedBy:     &by,
	}

	pub := ToPublic(h)
	if pub.ID != 7 || pub.Name != "HackX" || len(pub.Themes) != 1 {
		t.Errorf("Public fields not carried over: %+v", pub)
	}
	// The projection type has no organizer_email or approval fields; what
	// matters at runtime is that nil themes still serialize as [].
	pub = ToPublic(models.Hackathon{})
	if pub.Themes == nil {
		t.Error("Expected non-nil themes slice for empty record")
	}
}
