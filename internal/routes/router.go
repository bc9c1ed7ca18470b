package routes

import (
	"hackhub-api/internal/config"
	"hackhub-api/internal/handlers"
	"hackhub-api/internal/middleware"
	"hackhub-api/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup builds the gin engine with CORS, request logging and all routes.
// Admin routes run the identity check and the allow-list check on every
// request.
func Setup(cfg *config.Config, h *handlers.Handler, search *handlers.SearchHandler, admins store.AdminStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/hackathons", h.GetHackathons)
		api.POST("/hackathons", h.CreateHackathon)
		api.GET("/search", search.Search)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.Identity([]byte(cfg.JWTSecret)), middleware.AdminRequired(admins))
	{
		admin.GET("/stats", h.GetStats)
		admin.GET("/hackathons", h.AdminGetHackathons)
		admin.POST("/hackathons/:id/approve", h.ApproveHackathon)
		admin.PUT("/hackathons/:id", h.UpdateHackathon)
		admin.DELETE("/hackathons/:id", h.DeleteHackathon)
	}

	return r
}
