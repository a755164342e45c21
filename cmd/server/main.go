package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/lessonhub/internal/config"
	"github.com/nfrund/lessonhub/internal/logging"
	"github.com/nfrund/lessonhub/internal/server"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register the routes that belong to no module.
	s.RegisterRoutes()

	// Start the server.
	s.Start()
}
