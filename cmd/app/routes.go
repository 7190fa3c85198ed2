package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"dashboard/internal/api"
	"dashboard/internal/api/middleware"
	"dashboard/internal/service"
)

func (app *App) initHTTP(dashboard service.DashboardServiceInterface, notes service.NoteServiceInterface, conv api.Converter) error {
	tmpl, err := api.ParsePageTemplate()
	if err != nil {
		return fmt.Errorf("parse dashboard template: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/", api.HandleDashboardPage(dashboard, tmpl, app.cfg.Dashboard.NoteKey, app.logger))
	r.Route("/api", func(r chi.Router) {
		r.Get("/rates", api.HandleGetRates(dashboard))
		r.Get("/convert", api.HandleConvert(conv))
		r.Get("/notes/{key}", api.HandleGetNote(notes))
		r.Put("/notes/{key}", api.HandleSaveNote(notes))
	})
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.db, app.rdb))

	if app.cfg.Server.ServeMetrics {
		r.Handle("/metrics", app.metrics.Handler())
	}

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return nil
}
