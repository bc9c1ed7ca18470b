package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hackhub-api/internal/config"
	"hackhub-api/internal/models"
	"hackhub-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// SearchHandler answers free-form queries with an AI recommendation
// grounded on the approved listings in the store.
type SearchHandler struct {
	Store  store.HackathonStore
	Config *config.Config
}

func NewSearchHandler(s store.HackathonStore, cfg *config.Config) *SearchHandler {
	return &SearchHandler{Store: s, Config: cfg}
}

// searchContextLimit caps how many listings are fed into the prompt.
const searchContextLimit = 25

// Search handles GET /api/search requests.
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	if h.Config.GeminiAPIKey == "" {
		slog.Error("Missing GEMINI_API_KEY for AI search")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server misconfigured: missing API key"})
		return
	}

	hackathons, err := h.Store.ListApproved(c.Request.Context(), store.ListFilter{
		Status: "all",
		Limit:  searchContextLimit,
	})
	if err != nil {
		slog.Error("Failed to fetch hackathons for AI search", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hackathons"})
		return
	}

	if len(hackathons) == 0 {
		c.JSON(http.StatusOK, gin.H{"answer": "No hackathons are listed right now.", "count": 0})
		return
	}

	ctx := c.Request.Context()
	client, err := genai.NewClient(ctx, option.WithAPIKey(h.Config.GeminiAPIKey))
	if err != nil {
		slog.Error("Failed to initialize Gemini client", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize AI processor"})
		return
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash")
	model.SetTemperature(0.2)

	prompt := buildPrompt(query, hackathons)
	slog.Debug("Sending listings to Gemini", "query", query, "listings", len(hackathons))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.Error("Failed to generate content via Gemini", "error", err, "query", query)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process search via AI"})
		return
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		c.JSON(http.StatusOK, gin.H{"answer": "", "count": len(hackathons)})
		return
	}

	answer := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	c.JSON(http.StatusOK, gin.H{"answer": answer, "count": len(hackathons)})
}

// buildPrompt renders the approved listings into a grounding block for the
// model. Only already-public fields are included.
func buildPrompt(query string, hackathons []models.Hackathon) string {
	var b strings.Builder
	for i, h := range hackathons {
		fmt.Fprintf(&b, "\n--- LISTING %d ---\nName: %s\nDescription: %s\nDates: %s to %s\nMode: %s\nLocation: %s\nThemes: %s\nStatus: %s\n",
			i+1, h.Name, h.Description,
			h.StartDate.Format("2006-01-02"), h.EndDate.Format("2006-01-02"),
			h.Mode, h.Location, strings.Join([]string(h.Themes), ", "), h.Status)
	}

	return fmt.Sprintf(`Today's date is %s.
A visitor of a hackathon directory asked: %q

Here are the currently listed hackathons:
%s

Recommend the listings that best match the question, in plain text, with the
event names and dates. Mention only hackathons from the list above. If none
match, say so briefly.`, time.Now().Format("2006-01-02"), query, b.String())
}
