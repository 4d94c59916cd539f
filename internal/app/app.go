package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sacandaga/calendarr/internal/config"
	"github.com/sacandaga/calendarr/internal/domain"
	"github.com/sacandaga/calendarr/internal/handler"
	"github.com/sacandaga/calendarr/internal/service"
	"github.com/sacandaga/calendarr/internal/storage"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
)

const (
	shutdownTimeout = 30 * time.Second
)

type App struct {
	cfg       *config.Config
	server    *http.Server
	store     *bolthold.Store
	eventRepo domain.EventRepository
}

func New() (*App, error) {
	cfg := config.Load()
	configureLogging(cfg)

	store, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	app := &App{
		cfg:   cfg,
		store: store,
	}
	app.wireServices()

	return app, nil
}

func configureLogging(cfg *config.Config) {
	log.SetOutput(os.Stdout)
	if cfg.DebugEnabled() {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	log.WithFields(log.Fields{
		"mode":            cfg.Mode,
		"debug":           cfg.DebugEnabled(),
		"allowed_origins": cfg.AllowedOrigins,
	}).Info("resolved runtime configuration")

	if cfg.AppEnv != "" && cfg.Mode != config.Production {
		log.WithField("APP_ENV", cfg.AppEnv).Warn("unrecognized APP_ENV value, falling back to development mode")
	}
}

func openStore(cfg *config.Config) (*bolthold.Store, error) {
	store, err := bolthold.Open(cfg.DBPath(), cfg.DBFilePermissions, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return store, nil
}

func (a *App) wireServices() {
	a.eventRepo = storage.NewEventRepository(a.store)
	eventSvc := service.NewEventService(a.eventRepo)

	httpHandler := handler.NewHTTPHandler(a.cfg, eventSvc)

	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)

	policy := a.cfg.CORSPolicy()
	a.server = &http.Server{
		Addr:    a.cfg.ServerPort,
		Handler: handler.CORS(policy, handler.Recover(policy.DebugEnabled, mux)),
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The store must be seeded before the first request is served.
	if err := storage.SeedEvents(ctx, a.eventRepo); err != nil {
		return fmt.Errorf("seeding events: %w", err)
	}

	go a.startServer()

	return a.waitForShutdown(ctx, cancel)
}

func (a *App) startServer() {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   a.cfg.ServerPort,
	}).Info("http server listening")

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Fatal("http server failed to start")
	}
}

func (a *App) waitForShutdown(ctx context.Context, cancel context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	}

	cancel()
	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
	}

	if err := a.store.Close(); err != nil {
		log.WithFields(log.Fields{
			"component": "database",
			"error":     err,
		}).Error("database connection close failed")
		return err
	}

	log.Info("graceful shutdown completed")
	return nil
}
