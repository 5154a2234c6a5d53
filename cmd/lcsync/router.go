package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/lcsync/internal/api"
	apiMiddleware "github.com/phrazzld/lcsync/internal/api/middleware"
)

// setupRouter creates the router of the serve command.
// It fails when no trigger credentials are configured.
func (app *application) setupRouter() (http.Handler, error) {
	authMiddleware, err := apiMiddleware.NewAuthMiddleware(app.config.Auth)
	if err != nil {
		return nil, fmt.Errorf("refusing to serve: %w", err)
	}

	syncHandler := api.NewSyncHandler(app.syncService, app.logger)

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	r.Get("/healthz", api.Health)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/", syncHandler.TriggerSync)
		r.Post("/api/sync", syncHandler.TriggerSync)
	})

	return r, nil
}
