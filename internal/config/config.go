package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all the configuration variables for the application
type Config struct {
	Env            string
	Port           string
	DBHost         string
	DBUser         string
	DBPass         string
	DBName         string
	DBPort         string
	JWTSecret      string
	AllowedOrigins []string
	AdminEmails    []string
	GeminiAPIKey   string
}

// Load reads the application configuration from environment variables
// and the .env file if it exists.
func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Env:            getEnvOrDefault("ENV", "development"),
		Port:           getEnvOrDefault("PORT", "8080"),
		DBHost:         getEnvOrDefault("DB_HOST", "localhost"),
		DBUser:         getEnvOrDefault("DB_USER", "hackhub_user"),
		DBPass:         getEnvOrDefault("DB_PASSWORD", "supersecretpassword"),
		DBName:         getEnvOrDefault("DB_NAME", "hackhub"),
		DBPort:         getEnvOrDefault("DB_PORT", "5432"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "dev-only-secret"),
		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		AdminEmails:    splitList(os.Getenv("ADMIN_EMAILS")),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
	}

	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

// splitList parses a comma-separated env value into a trimmed slice,
// dropping empty entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
