// Package store is the persistence boundary for hackathon listings and the
// admin allow-list. Handlers depend on the interfaces here, never on gorm
// directly, so tests can swap in a fake.
package store

import (
	"context"
	"errors"

	"hackhub-api/internal/models"
)

// ErrNotFound is returned when an id does not match any hackathon.
var ErrNotFound = errors.New("hackathon not found")

// ListFilter enumerates every optional predicate the public listing supports.
// Queries are composed only from these fields; raw input never reaches SQL.
type ListFilter struct {
	// Search is matched case-insensitively as a substring of the name,
	// the description, or any theme.
	Search string
	// Mode filters by "online" or "offline"; "all" or empty disables it.
	Mode string
	// Status filters by the moderator-set status; "all" disables it.
	Status string
	Limit  int
	Offset int
}

// Stats holds dashboard counts over the hackathons table. Pending/Approved
// and Ongoing/Completed count along independent dimensions, so the four do
// not sum to Total.
type Stats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
}

// HackathonStore is the persisted collection of hackathon listings.
type HackathonStore interface {
	// ListApproved returns approved listings matching the filter, ordered
	// by start date ascending.
	ListApproved(ctx context.Context, f ListFilter) ([]models.Hackathon, error)
	// ListAll returns every listing regardless of approval state, ordered
	// by creation time descending.
	ListAll(ctx context.Context, limit, offset int) ([]models.Hackathon, error)
	// Create inserts a new listing and fills its server-assigned fields.
	Create(ctx context.Context, h *models.Hackathon) error
	// SetApproval approves or unapproves a listing. Approving stamps the
	// approval time and the acting admin's email; unapproving clears both.
	SetApproval(ctx context.Context, id uint, adminEmail string, approve bool) (*models.Hackathon, error)
	// Update overwrites every editable field of a listing.
	Update(ctx context.Context, id uint, h *models.Hackathon) (*models.Hackathon, error)
	// Delete permanently removes a listing.
	Delete(ctx context.Context, id uint) error
	// ComputeStats counts listings for the admin dashboard.
	ComputeStats(ctx context.Context) (Stats, error)
}

// AdminStore answers allow-list membership checks.
type AdminStore interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}
