package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/little-lemon/internal/config"
	"github.com/msomdec/little-lemon/internal/domain"
	"github.com/msomdec/little-lemon/internal/handler"
	"github.com/msomdec/little-lemon/internal/remote"
	"github.com/msomdec/little-lemon/internal/repository/redisstore"
	"github.com/msomdec/little-lemon/internal/repository/sqlite"
	"github.com/msomdec/little-lemon/internal/service"
)

func main() {
	cfg, err := config.Load(envOrDefault("CONFIG_PATH", "config.yaml"))
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logOpts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	var profiles domain.ProfileStore = db.Profiles()
	if cfg.ProfileBackend == config.BackendRedis {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		cancel()
		if err != nil {
			slog.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer client.Close()
		profiles = redisstore.NewProfileStore(client, domain.ProfileNamespace)
	}
	slog.Info("profile store ready", "backend", cfg.ProfileBackend)

	source := remote.NewHTTPMenuSource(cfg.MenuURL, cfg.FetchTimeout)
	catalog := service.NewMenuCatalog(db.Menu(), source)
	profileService := service.NewProfileService(profiles)

	// Warm the catalog in the background so the first request is fast.
	// Requests that arrive earlier join the same warm-up.
	go func() {
		if err := catalog.EnsureWarm(context.Background()); err != nil {
			slog.Error("menu warm-up failed", "error", err)
		}
	}()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, catalog, profileService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Middleware(mux, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "menu_url", cfg.MenuURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
