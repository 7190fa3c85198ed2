// Package main is the entry point for the dashboard service.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dashboard/internal/config"
	"dashboard/internal/conversion"
	"dashboard/internal/metrics"
	"dashboard/internal/prayer"
	"dashboard/internal/provider"
	"dashboard/internal/rates"
	"dashboard/internal/repository"
	"dashboard/internal/service"
	"dashboard/internal/weather"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	db         *sql.DB
	rdb        *redis.Client
	rateStore  conversion.Store
	metrics    *metrics.Recorder
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.NewRecorder(),
	}

	if err := app.initStorage(); err != nil {
		_ = app.close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.close()
		return nil, err
	}

	return app, nil
}

// close releases database and Redis connections
func (app *App) close() error {
	var errs []error
	if app.rdb != nil {
		if err := app.rdb.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("db close: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (app *App) initStorage() error {
	db, err := repository.NewPostgresDB(context.Background(), &app.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to Postgres: %w", err)
	}
	app.db = db

	if err := repository.RunMigrations(app.db, app.logger); err != nil {
		return fmt.Errorf("run DB migrations: %w", err)
	}

	if app.cfg.Redis.Addr == "" {
		app.rateStore = conversion.NewMemoryStore()
		app.logger.Infow("Conversion rate kept in memory")
		return nil
	}

	app.rdb = redis.NewClient(&redis.Options{Addr: app.cfg.Redis.Addr})
	if err := app.rdb.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("connect to Redis (%s): %w", app.cfg.Redis.Addr, err)
	}
	app.rateStore = conversion.NewRedisStore(app.rdb, app.cfg.Redis.RateKey)
	app.logger.Infow("Connected to Redis", "addr", app.cfg.Redis.Addr, "key", app.cfg.Redis.RateKey)

	return nil
}

func (app *App) initServices() error {
	loc, err := app.cfg.Dashboard.Location()
	if err != nil {
		return fmt.Errorf("load time zone: %w", err)
	}

	source, err := provider.New(provider.Options{
		Mode:       provider.Mode(app.cfg.Rates.Mode),
		ProxyURL:   app.cfg.Rates.ProxyURL,
		TargetURL:  app.cfg.Rates.TargetURL,
		TimeoutSec: app.cfg.Rates.TimeoutSec,
	})
	if err != nil {
		return err
	}

	fetcher := rates.NewFetcher(source, app.rateStore, app.metrics, app.logger)
	weatherClient := weather.NewClient(
		app.cfg.Weather.BaseURL,
		app.cfg.Weather.Latitude,
		app.cfg.Weather.Longitude,
		app.cfg.Weather.TimeoutSec,
	)
	noteService := service.NewNoteService(repository.NewPostgresNoteRepository(app.db), app.logger)
	dashboardService := service.NewDashboardService(
		fetcher,
		weatherClient,
		prayer.NewCalculator(app.cfg.Prayer.Latitude, app.cfg.Prayer.Longitude, loc),
		noteService,
		app.cfg.Dashboard.NoteKey,
		loc,
		app.metrics,
		app.logger,
	)

	return app.initHTTP(dashboardService, noteService, conversion.NewConverter(app.rateStore))
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown performs ordered teardown: HTTP server -> connections.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 1. Stop accepting new HTTP requests, drain in-flight
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	// 2. Close connections (Redis, database)
	if err := app.close(); err != nil {
		app.logger.Errorw("Connection cleanup errors", "error", err)
		errs = append(errs, err)
	}

	app.logger.Infow("Shutdown complete")
	return errors.Join(errs...)
}
