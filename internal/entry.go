// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/starford/tubetrack/internal/api"
	"github.com/starford/tubetrack/internal/clock"
	"github.com/starford/tubetrack/internal/fixtures"
	"github.com/starford/tubetrack/internal/journal"
	"github.com/starford/tubetrack/internal/mcpserver"
	"github.com/starford/tubetrack/internal/sse"
	"github.com/starford/tubetrack/internal/tracker"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{clock: clock.System{}, version: "dev"}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	return app, nil
}

func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// core holds the pieces shared by the HTTP and MCP front ends.
type core struct {
	svc     *tracker.Service
	journal *journal.DB
}

func (app *application) buildCore(logger *slog.Logger, notifier tracker.Notifier) (*core, error) {
	cfg := app.config

	data, err := fixtures.Load(cfg.Fixtures.Path)
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	db, err := journal.Open(cfg.Journal.DSN)
	if err != nil {
		return nil, fmt.Errorf("init journal: %w", err)
	}

	opts := []tracker.Option{
		tracker.WithClock(app.clock),
		tracker.WithJournal(db),
		tracker.WithLogger(logger),
		tracker.WithRecentLimit(cfg.Journal.RecentLimit),
	}
	if notifier != nil {
		opts = append(opts, tracker.WithNotifier(notifier))
	}
	svc := tracker.New(data, opts...)

	logger.Info("Fixtures loaded",
		slog.String("path", cfg.Fixtures.Path),
		slog.Int("playlists", len(data.Playlists)),
		slog.Int("videos", len(data.Videos)),
		slog.Int("goals", len(data.Goals)),
		slog.Int("summaries", len(data.Summaries)))

	return &core{svc: svc, journal: db}, nil
}

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	logger := newLogger(cfg, os.Stdout)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("fixtures_path", cfg.Fixtures.Path),
		slog.Bool("fixtures_watch", cfg.Fixtures.Watch),
		slog.String("journal_dsn", cfg.Journal.DSN),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// SSE broker.
	broker := sse.NewBroker(cfg.Events.StatsThrottle, app.clock)
	defer broker.Close()

	c, err := app.buildCore(logger, broker)
	if err != nil {
		return err
	}
	defer c.journal.Close()

	var limiter *rate.Limiter
	if cfg.App.RateLimit.Enabled() {
		limiter = rate.NewLimiter(rate.Limit(cfg.App.RateLimit.PerSecond), cfg.App.RateLimit.Burst)
	}

	apiRouter := api.NewRouter(c.svc, api.RouterConfig{
		AuthEnabled: cfg.Auth.AuthEnabled(),
		Token:       cfg.Auth.Token,
		Events:      broker,
		Limiter:     limiter,
	})

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
		Addr:              cfg.App.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Reseed the stores when the fixture file changes.
	if cfg.Fixtures.Watch {
		g.Go(func() error {
			return fixtures.Watch(gCtx, cfg.Fixtures.Path, logger, func(data *fixtures.Dataset) {
				c.svc.Reseed(data)
				broker.Publish(sse.Event{Type: sse.EventDataReloaded, Data: map[string]any{"path": cfg.Fixtures.Path}})
			})
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
		defer signal.Stop(quit)

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

		return context.Canceled
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP serves the tracker as MCP tools on stdin/stdout. Logs go to stderr.
func RunMCP(_ context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	logger := newLogger(app.config, os.Stderr)

	c, err := app.buildCore(logger, nil)
	if err != nil {
		return err
	}
	defer c.journal.Close()

	logger.Info("MCP server starting on stdio", slog.String("version", app.version))
	return mcpserver.New(c.svc, app.version).ServeStdio()
}
