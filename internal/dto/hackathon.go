// Package dto holds the request and response shapes of the HTTP API and
// their mapping onto the database models.
package dto

import (
	"fmt"
	"time"

	"hackhub-api/internal/models"

	"github.com/lib/pq"
)

// HackathonPayload is the request body for submitting or editing a listing.
// Dates arrive as strings so the frontend can send plain YYYY-MM-DD values.
type HackathonPayload struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	StartDate            string   `json:"start_date"`
	EndDate              string   `json:"end_date"`
	RegistrationDeadline string   `json:"registration_deadline"`
	RegistrationURL      string   `json:"registration_url"`
	WebsiteURL           string   `json:"website_url"`
	Mode                 string   `json:"mode"`
	Location             string   `json:"location"`
	MinTeamSize          int      `json:"min_team_size"`
	MaxTeamSize          int      `json:"max_team_size"`
	TotalPrizes          int64    `json:"total_prizes"`
	Themes               []string `json:"themes"`
	OrganizerName        string   `json:"organizer_name"`
	OrganizerEmail       string   `json:"organizer_email"`

	// Status is honored on moderation edits only; submissions always start
	// as upcoming.
	Status string `json:"status"`
}

// dateLayouts are tried in order when parsing incoming date fields.
var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}

// ParseDate parses an incoming date string, accepting RFC3339 or the plain
// date forms browsers submit.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", value)
}

// ToModel converts the payload into a Hackathon, parsing dates and applying
// the submission defaults (min 1, max 6, zero prizes, empty themes).
func (p *HackathonPayload) ToModel() (*models.Hackathon, error) {
	startDate, err := ParseDate(p.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := ParseDate(p.EndDate)
	if err != nil {
		return nil, err
	}

	var deadline *time.Time
	if p.RegistrationDeadline != "" {
		d, err := ParseDate(p.RegistrationDeadline)
		if err != nil {
			return nil, err
		}
		deadline = &d
	}

	h := &models.Hackathon{
		Name:                 p.Name,
		Description:          p.Description,
		StartDate:            startDate,
		EndDate:              endDate,
		RegistrationDeadline: deadline,
		RegistrationURL:      p.RegistrationURL,
		WebsiteURL:           p.WebsiteURL,
		Mode:                 p.Mode,
		Location:             p.Location,
		MinTeamSize:          p.MinTeamSize,
		MaxTeamSize:          p.MaxTeamSize,
		TotalPrizes:          p.TotalPrizes,
		Themes:               pq.StringArray(p.Themes),
		OrganizerName:        p.OrganizerName,
		OrganizerEmail:       p.OrganizerEmail,
		Status:               p.Status,
	}

	if h.MinTeamSize <= 0 {
		h.MinTeamSize = 1
	}
	if h.MaxTeamSize <= 0 {
		h.MaxTeamSize = 6
	}
	if h.TotalPrizes < 0 {
		h.TotalPrizes = 0
	}
	if h.Themes == nil {
		h.Themes = pq.StringArray{}
	}

	return h, nil
}

// PublicHackathon is the projection served to unauthenticated callers. It
// omits the organizer's email and all approval metadata.
type PublicHackathon struct {
	ID                   uint       `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	RegistrationURL      string     `json:"registration_url"`
	WebsiteURL           string     `json:"website_url"`
	Mode                 string     `json:"mode"`
	Location             string     `json:"location"`
	MinTeamSize          int        `json:"min_team_size"`
	MaxTeamSize          int        `json:"max_team_size"`
	TotalPrizes          int64      `json:"total_prizes"`
	Themes               []string   `json:"themes"`
	OrganizerName        string     `json:"organizer_name"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ToPublic maps a model onto its public projection.
func ToPublic(h models.Hackathon) PublicHackathon {
	themes := []string(h.Themes)
	if themes == nil {
		themes = []string{}
	}
	return PublicHackathon{
		ID:                   h.ID,
		Name:                 h.Name,
		Description:          h.Description,
		StartDate:            h.StartDate,
		EndDate:              h.EndDate,
		RegistrationDeadline: h.RegistrationDeadline,
		RegistrationURL:      h.RegistrationURL,
		WebsiteURL:           h.WebsiteURL,
		Mode:                 h.Mode,
		Location:             h.Location,
		MinTeamSize:          h.MinTeamSize,
		MaxTeamSize:          h.MaxTeamSize,
		TotalPrizes:          h.TotalPrizes,
		Themes:               themes,
		OrganizerName:        h.OrganizerName,
		Status:               h.Status,
		CreatedAt:            h.CreatedAt,
		UpdatedAt:            h.UpdatedAt,
	}
}

// ToPublicList maps a slice, always returning a non-nil slice so empty
// results serialize as [] rather than null.
func ToPublicList(hs []models.Hackathon) []PublicHackathon {
	out := make([]PublicHackathon, 0, len(hs))
	for _, h := range hs {
		out = append(out, ToPublic(h))
	}
	return out
}
