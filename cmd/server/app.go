package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/person-api/internal/api"
	"github.com/phrazzld/person-api/internal/api/router"
	"github.com/phrazzld/person-api/internal/config"
	"github.com/phrazzld/person-api/internal/platform/filestore"
	"github.com/phrazzld/person-api/internal/platform/metrics"
	"github.com/phrazzld/person-api/internal/platform/postgres"
	"github.com/phrazzld/person-api/internal/service"
	"github.com/phrazzld/person-api/internal/service/auth"
	"github.com/phrazzld/person-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the known-person registry lives in memory.
	db       *sql.DB
	registry store.PersonRegistry
	images   *filestore.ImageStore
	metrics  *metrics.Metrics

	jwtService     auth.JWTService
	personService  service.PersonService
	contactService service.ContactService
	uploadService  service.UploadService

	routes *router.Table
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	var err error
	app.registry, err = app.setupRegistry(ctx)
	if err != nil {
		return nil, err
	}

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.images, err = filestore.New(cfg.Server.UploadDir)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	app.personService, err = service.NewPersonService(app.registry, auth.NewBcryptHasher(bcrypt.DefaultCost), logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create person service: %w", err)
	}

	app.contactService = service.NewContactService(logger)

	app.uploadService, err = service.NewUploadService(app.images, app.metrics, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create upload service: %w", err)
	}

	app.routes, err = api.NewRouteTable(api.RouteDeps{
		Persons:        app.personService,
		Contacts:       app.contactService,
		Uploads:        app.uploadService,
		JWT:            app.jwtService,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	})
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to build route table: %w", err)
	}

	logger.Info("Application initialized successfully", "routes", len(app.routes.Routes()))
	return app, nil
}

// setupRegistry backs the known-person registry with Postgres when a
// database URL is configured, and with memory otherwise. Either way the
// registry holds exactly the configured ids.
func (app *application) setupRegistry(ctx context.Context) (store.PersonRegistry, error) {
	ids := app.config.Server.KnownPersonIDs

	if app.config.Database.URL == "" {
		app.logger.Info("Using in-memory person registry", "known_ids", len(ids))
		return store.NewMemoryRegistry(ids...), nil
	}

	db, err := postgres.Open(ctx, app.config.Database.URL, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := postgres.Migrate(ctx, db, "up", app.logger); err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	registry := postgres.NewPersonRegistry(db)
	if err := registry.Replace(ctx, ids...); err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to seed person registry: %w", err)
	}

	app.logger.Info("Using postgres person registry", "seeded_ids", len(ids))
	return registry, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("Application shutdown completed")
}
