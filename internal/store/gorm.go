package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hackhub-api/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Gorm implements HackathonStore and AdminStore on a PostgreSQL database.
type Gorm struct {
	db *gorm.DB
}

// NewGorm wraps an open gorm connection.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) ListApproved(ctx context.Context, f ListFilter) ([]models.Hackathon, error) {
	q := g.db.WithContext(ctx).Where("approved = ?", true)

	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Mode != "" && f.Mode != "all" {
		q = q.Where("mode = ?", f.Mode)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			`LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR EXISTS (
				SELECT 1 FROM unnest(themes) AS theme WHERE LOWER(theme) LIKE ?
			)`,
			pattern, pattern, pattern,
		)
	}

	var hackathons []models.Hackathon
	err := q.Order("start_date ASC, id ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&hackathons).Error
	if err != nil {
		return nil, fmt.Errorf("list approved hackathons: %w", err)
	}
	return hackathons, nil
}

func (g *Gorm) ListAll(ctx context.Context, limit, offset int) ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	err := g.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&hackathons).Error
	if err != nil {
		return nil, fmt.Errorf("list all hackathons: %w", err)
	}
	return hackathons, nil
}

func (g *Gorm) Create(ctx context.Context, h *models.Hackathon) error {
	if h.Themes == nil {
		h.Themes = pq.StringArray{}
	}
	if err := g.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("create hackathon: %w", err)
	}
	return nil
}

func (g *Gorm) SetApproval(ctx context.Context, id uint, adminEmail string, approve bool) (*models.Hackathon, error) {
	values := map[string]any{
		"approved":    false,
		"approved_at": nil,
		"approved_by": nil,
	}
	if approve {
		values["approved"] = true
		values["approved_at"] = time.Now()
		values["approved_by"] = adminEmail
	}

	res := g.db.WithContext(ctx).
		Model(&models.Hackathon{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, fmt.Errorf("set approval: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return g.get(ctx, id)
}

func (g *Gorm) Update(ctx context.Context, id uint, h *models.Hackathon) (*models.Hackathon, error) {
	themes := h.Themes
	if themes == nil {
		themes = pq.StringArray{}
	}

	// Full-record update of the editable fields only; approval metadata and
	// created_at are never touched here.
	values := map[string]any{
		"name":                  h.Name,
		"description":           h.Description,
		"start_date":            h.StartDate,
		"end_date":              h.EndDate,
		"registration_deadline": h.RegistrationDeadline,
		"registration_url":      h.RegistrationURL,
		"website_url":           h.WebsiteURL,
		"mode":                  h.Mode,
		"location":              h.Location,
		"min_team_size":         h.MinTeamSize,
		"max_team_size":         h.MaxTeamSize,
		"total_prizes":          h.TotalPrizes,
		"themes":                themes,
		"organizer_name":        h.OrganizerName,
		"organizer_email":       h.OrganizerEmail,
		"status":                h.Status,
	}

	res := g.db.WithContext(ctx).
		Model(&models.Hackathon{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, fmt.Errorf("update hackathon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return g.get(ctx, id)
}

func (g *Gorm) Delete(ctx context.Context, id uint) error {
	res := g.db.WithContext(ctx).Delete(&models.Hackathon{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete hackathon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *Gorm) ComputeStats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := g.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE approved = false) AS pending,
			COUNT(*) FILTER (WHERE approved = true) AS approved,
			COUNT(*) FILTER (WHERE status = 'ongoing') AS ongoing,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed
		FROM hackathons
	`).Scan(&stats).Error
	if err != nil {
		return Stats{}, fmt.Errorf("compute stats: %w", err)
	}
	return stats, nil
}

func (g *Gorm) IsAdmin(ctx context.Context, email string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("admin lookup: %w", err)
	}
	return count > 0, nil
}

func (g *Gorm) get(ctx context.Context, id uint) (*models.Hackathon, error) {
	var h models.Hackathon
	if err := g.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, fmt.Errorf("fetch hackathon %d: %w", id, err)
	}
	return &h, nil
}
