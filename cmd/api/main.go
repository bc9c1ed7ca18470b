package main

import (
	"log/slog"
	"net/http"

	"hackhub-api/internal/config"
	"hackhub-api/internal/database"
	"hackhub-api/internal/handlers"
	"hackhub-api/internal/logger"
	"hackhub-api/internal/routes"
	"hackhub-api/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Initialize Configuration
	cfg := config.Load()

	// 2. Initialize Structured Logger
	logger.Setup(cfg.Env)
	slog.Info("Starting HackHub API Server", "env", cfg.Env, "port", cfg.Port)

	// 3. Initialize Database
	db, err := database.Init(cfg)
	if err != nil {
		slog.Error("Critical error: unable to initialize database", "error", err)
		return
	}
	if err := database.SeedAdmins(db, cfg.AdminEmails); err != nil {
		slog.Error("Critical error: unable to seed admin allow-list", "error", err)
		return
	}

	// 4. Initialize Store and HTTP Handlers
	s := store.NewGorm(db)
	h := handlers.New(s)
	search := handlers.NewSearchHandler(s, cfg)

	// 5. Initialize Gin Router
	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := routes.Setup(cfg, h, search, s)

	// 6. Start the Server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "address", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("Critical server error", "error", err)
	}
}
