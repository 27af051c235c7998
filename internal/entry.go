// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/api"
	"github.com/aumai/kisanmitra/internal/feed"
	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/pests"
	"github.com/aumai/kisanmitra/internal/sse"
	"github.com/aumai/kisanmitra/internal/telegram"
)

// NewStore selects the price store implementation from configuration:
// a SQLite-backed store when a path is configured, in-memory otherwise.
func NewStore(cfg *Config) (market.Store, error) {
	if cfg.SQLite.Path != "" {
		return market.OpenSQLite(cfg.SQLite.Path)
	}
	return market.NewMemoryStore(), nil
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("feed_dir", cfg.Feed.Dir),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure feed directory exists.
	if err := os.MkdirAll(cfg.Feed.Dir, 0o755); err != nil {
		return fmt.Errorf("create feed dir: %w", err)
	}

	// Initialize the price store.
	store, err := NewStore(cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer store.Close()

	// Static engines.
	catalog := pests.NewCatalog()
	router := advisory.NewRouter(nil)

	// Initial feed load.
	loader := feed.NewLoader(store, logger)
	if added, err := loader.LoadDir(cfg.Feed.Dir); err != nil {
		logger.Warn("initial feed load failed", slog.String("error", err.Error()))
	} else {
		logger.Info("initial feed load complete", slog.Int("added", added))
	}

	// SSE broker.
	broker := sse.NewBroker()
	defer broker.Close()

	// Build API router.
	apiRouter := api.NewRouter(store, catalog, router, broker,
		cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start feed watcher with SSE callback.
	g.Go(func() error {
		return feed.Watch(gCtx, loader, cfg.Feed.Dir, logger, func(file string, added int) {
			broker.PublishFeedLoaded(file, added)
		})
	})

	// Scheduled full rescan of the feed directory.
	if cfg.Feed.RescanSchedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.Feed.RescanSchedule, func() {
			added, rescanErr := loader.LoadDir(cfg.Feed.Dir)
			if rescanErr != nil {
				logger.Warn("feed rescan failed", slog.String("error", rescanErr.Error()))
				return
			}
			if added > 0 {
				broker.PublishFeedLoaded(cfg.Feed.Dir, added)
			}
			logger.Info("feed rescan complete", slog.Int("added", added))
		}); err != nil {
			return fmt.Errorf("schedule feed rescan: %w", err)
		}
		c.Start()
		defer c.Stop()
		logger.Info("feed rescan scheduled", slog.String("schedule", cfg.Feed.RescanSchedule))
	}

	// Start Telegram bridge when configured.
	if cfg.Telegram.Enabled() {
		bot, botErr := telegram.New(cfg.Telegram.Token, store, catalog, router, logger)
		if botErr != nil {
			return fmt.Errorf("init telegram bridge: %w", botErr)
		}
		g.Go(func() error {
			return bot.Run(gCtx)
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
