package models

import (
	"time"

	"github.com/lib/pq"
)

// Hackathon represents a hackathon listing in the database.
//
// Approved, ApprovedAt and ApprovedBy move together: an approved listing
// carries all three, an unapproved one carries none. Status is set by
// moderators and is never derived from the event dates.
type Hackathon struct {
	ID                   uint           `json:"id" gorm:"primaryKey"`
	Name                 string         `json:"name" gorm:"not null"`
	Description          string         `json:"description" gorm:"not null"`
	StartDate            time.Time      `json:"start_date" gorm:"type:date;not null"`
	EndDate              time.Time      `json:"end_date" gorm:"type:date;not null"`
	RegistrationDeadline *time.Time     `json:"registration_deadline" gorm:"type:date"`
	RegistrationURL      string         `json:"registration_url"`
	WebsiteURL           string         `json:"website_url"`
	Mode                 string         `json:"mode" gorm:"not null"`
	Location             string         `json:"location"`
	MinTeamSize          int            `json:"min_team_size" gorm:"not null;default:1"`
	MaxTeamSize          int            `json:"max_team_size" gorm:"not null;default:6"`
	TotalPrizes          int64          `json:"total_prizes" gorm:"not null;default:0"`
	Themes               pq.StringArray `json:"themes" gorm:"type:text[]"`
	OrganizerName        string         `json:"organizer_name"`
	OrganizerEmail       string         `json:"organizer_email"`
	Status               string         `json:"status" gorm:"not null;default:upcoming"`
	Approved             bool           `json:"approved" gorm:"not null;default:false;index"`
	ApprovedAt           *time.Time     `json:"approved_at"`
	ApprovedBy           *string        `json:"approved_by"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
