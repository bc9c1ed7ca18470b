package handlers

import (
	"log/slog"
	"net/http"

	"hackhub-api/internal/dto"
	"hackhub-api/internal/middleware"
	"hackhub-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GetStats handles GET /api/admin/stats requests.
//
// Pending/approved and ongoing/completed are independent dimensions over
// the same table; the counts do not partition the total.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Store.ComputeStats(c.Request.Context())
	if err != nil {
		slog.Error("Failed to fetch admin stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// AdminGetHackathons handles GET /api/admin/hackathons requests: every
// listing regardless of approval state, newest first.
func (h *Handler) AdminGetHackathons(c *gin.Context) {
	limit := intQuery(c, "limit", defaultAdminLimit)
	offset := intQuery(c, "offset", 0)

	hackathons, err := h.Store.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		slog.Error("Failed to fetch hackathons for admin view", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hackathons"})
		return
	}

	if hackathons == nil {
		hackathons = make([]models.Hackathon, 0)
	}
	c.JSON(http.StatusOK, hackathons)
}

// ApproveHackathon handles POST /api/admin/hackathons/:id/approve requests.
// The same body toggles both ways: {"approve": true} publishes a listing,
// {"approve": false} pulls it back into the pending queue.
func (h *Handler) ApproveHackathon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
		return
	}

	var body struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	email := middleware.IdentityEmail(c)
	hackathon, err := h.Store.SetApproval(c.Request.Context(), id, email, body.Approve)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
			return
		}
		slog.Error("Failed to update approval status", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update approval status"})
		return
	}

	verb := "unapproved"
	if body.Approve {
		verb = "approved"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Hackathon " + verb + " successfully",
		"hackathon": hackathon,
	})
}

// UpdateHackathon handles PUT /api/admin/hackathons/:id requests: a
// full-record update of the editable fields.
func (h *Handler) UpdateHackathon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
		return
	}

	var payload dto.HackathonPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	hackathon, err := payload.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Store.Update(c.Request.Context(), id, hackathon)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
			return
		}
		slog.Error("Failed to update hackathon", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hackathon"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteHackathon handles DELETE /api/admin/hackathons/:id requests.
// Deletion is permanent; there is no soft-delete.
func (h *Handler) DeleteHackathon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
			return
		}
		slog.Error("Failed to delete hackathon", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hackathon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hackathon deleted successfully"})
}
