package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"hackhub-api/internal/dto"
	"hackhub-api/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler contains injected dependencies for the public HTTP handlers
type Handler struct {
	Store store.HackathonStore
}

// New creates a new Handler backed by the given store
func New(s store.HackathonStore) *Handler {
	return &Handler{Store: s}
}

const (
	defaultPublicLimit = 50
	defaultAdminLimit  = 100
)

// GetHackathons handles GET /api/hackathons requests: approved listings,
// filtered by status/mode/search and paginated.
func (h *Handler) GetHackathons(c *gin.Context) {
	filter := store.ListFilter{
		Search: c.Query("search"),
		Mode:   c.Query("mode"),
		Status: c.DefaultQuery("status", "upcoming"),
		Limit:  intQuery(c, "limit", defaultPublicLimit),
		Offset: intQuery(c, "offset", 0),
	}

	hackathons, err := h.Store.ListApproved(c.Request.Context(), filter)
	if err != nil {
		slog.Error("Failed to fetch hackathons from database", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hackathons"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicList(hackathons))
}

// CreateHackathon handles POST /api/hackathons requests: a public
// submission that enters the moderation queue unapproved.
func (h *Handler) CreateHackathon(c *gin.Context) {
	var payload dto.HackathonPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if payload.Name == "" || payload.StartDate == "" || payload.EndDate == "" || payload.Mode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name, start_date, end_date, mode"})
		return
	}

	if payload.Mode != "online" && payload.Mode != "offline" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Mode must be either "online" or "offline"`})
		return
	}

	hackathon, err := payload.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !hackathon.EndDate.After(hackathon.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		return
	}

	// Submissions always start unapproved and upcoming, whatever the
	// payload claims.
	hackathon.Status = "upcoming"
	hackathon.Approved = false
	hackathon.ApprovedAt = nil
	hackathon.ApprovedBy = nil

	if err := h.Store.Create(c.Request.Context(), hackathon); err != nil {
		slog.Error("Failed to create hackathon", "error", err, "name", hackathon.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hackathon"})
		return
	}

	c.JSON(http.StatusCreated, hackathon)
}

// intQuery reads a numeric query param, falling back to def on anything
// malformed or negative.
func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// parseID reads the id path param. A non-numeric id cannot match any
// record, so callers treat a parse failure as not found.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// isNotFound reports whether a store error should map to a 404.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
