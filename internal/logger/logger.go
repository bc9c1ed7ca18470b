package logger

import (
	"log/slog"
	"os"
)

// Setup initializes the global structured logger for the API.
// In production, it uses JSON format at info level; in development, text
// format at debug level. LOG_LEVEL overrides the level either way.
func Setup(env string) {
	production := env == "production" || env == "prod"

	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler).With("service", "hackhub-api"))
}
