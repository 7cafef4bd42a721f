// Package main implements the entry point for the person API server, which
// validates and routes person, contact, login and image upload requests.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/person-api/internal/config"
	"github.com/phrazzld/person-api/internal/platform/logger"
	"github.com/phrazzld/person-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run a database migration command (up, down, reset, status, version) and exit",
	)
	flag.Parse()

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()

	if *migrateCmd != "" {
		if err := runMigrations(ctx, cfg, *migrateCmd); err != nil {
			slog.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	app, err := newApplication(ctx, cfg, slog.Default())
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}

// loadAppConfig loads configuration and installs the configured logger as
// the process default.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"upload_dir", cfg.Server.UploadDir)
	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}

	return cfg, nil
}

// runMigrations applies a goose command against the configured database.
func runMigrations(ctx context.Context, cfg *config.Config, command string) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("database.url must be set to run migrations")
	}

	db, err := postgres.Open(ctx, cfg.Database.URL, slog.Default())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Error("Error closing database connection", "error", cerr)
		}
	}()

	return postgres.Migrate(ctx, db, command, slog.Default())
}
