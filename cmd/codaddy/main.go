package main

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

	"github.com/use-agent/codaddy/api"
	"github.com/use-agent/codaddy/config"
	"github.com/use-agent/codaddy/imagefetch"
	"github.com/use-agent/codaddy/scraper"
)

func main() {
	if err := run(); err != nil {
		slog.Error("codaddy exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// ── 1. Load configuration ───────────────────────────────────────
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)
	slog.Info("codaddy starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"maxSessions", cfg.Browser.MaxSessions,
		"source", cfg.Scraper.SourceBaseURL,
	)

	// ── 3. Initialise scraper (launches browser) ────────────────────
	sc, err := scraper.NewScraper(cfg.Browser, cfg.Scraper)
	if err != nil {
		return fmt.Errorf("initialise scraper: %w", err)
	}
	defer sc.Close()

	// ── 4. Initialise image proxy client ────────────────────────────
	images := imagefetch.New(
		imagefetch.WithReferer(cfg.Image.Referer),
		imagefetch.WithUserAgent(cfg.Image.UserAgent),
		imagefetch.WithTimeout(cfg.Image.Timeout),
		imagefetch.WithMaxBytes(cfg.Image.MaxBytes),
	)

	// ── 5. Setup router ─────────────────────────────────────────────
	router := api.NewRouter(api.Deps{Scraper: sc, Images: images}, cfg, time.Now())

	// ── 6. Start HTTP server ────────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.WithCORS(router, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// ── 7. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	// sc.Close() runs via defer and kills Chrome.
	slog.Info("codaddy stopped")
	return nil
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
