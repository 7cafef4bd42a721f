package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/person-api/internal/api"
	apiMiddleware "github.com/phrazzld/person-api/internal/api/middleware"
	"github.com/phrazzld/person-api/internal/api/router"
	"github.com/phrazzld/person-api/internal/binding"
	"github.com/phrazzld/person-api/internal/validation"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	dispatcher := router.NewDispatcher(binding.NewBinder(validation.New()), api.HandleAPIError)
	dispatcher.Mount(r, app.routes)

	return r
}
