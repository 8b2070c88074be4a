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

	"github.com/Dosada05/league-media-system/config"
	"github.com/Dosada05/league-media-system/db"
	_ "github.com/Dosada05/league-media-system/docs"
	"github.com/Dosada05/league-media-system/handlers"
	"github.com/Dosada05/league-media-system/live"
	"github.com/Dosada05/league-media-system/repositories"
	api "github.com/Dosada05/league-media-system/routes"
	"github.com/Dosada05/league-media-system/services"
	"github.com/Dosada05/league-media-system/storage"
	"github.com/go-chi/chi/v5"
)

// @title League Media System API
// @version 1.0
// @description Video clips, standings, fixtures and settings for the league site.
// @BasePath /api
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("data_dir", cfg.DataDir))

	store, err := db.Open(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open data store", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("data store opened")

	var uploader storage.FileUploader
	switch cfg.StorageBackend {
	case config.StorageBackendR2:
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
	default:
		uploader, err = storage.NewLocalDiskUploader(cfg.UploadDir, "/uploads/videos")
	}
	if err != nil {
		logger.Error("failed to initialize file uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("file uploader initialized", slog.String("backend", cfg.StorageBackend))

	liveHub := live.NewHub()
	go liveHub.Run()
	logger.Info("live event hub started")

	clipRepo := repositories.NewFileClipRepository(store)
	standingRepo := repositories.NewFileStandingRepository(store)
	matchRepo := repositories.NewFileMatchRepository(store)
	settingsRepo := repositories.NewFileSettingsRepository(store)
	logger.Info("repositories initialized")

	authService, err := services.NewAuthService(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logger.Error("failed to initialize auth service", slog.Any("error", err))
		os.Exit(1)
	}
	clipService := services.NewClipService(clipRepo, uploader, liveHub)
	standingService := services.NewStandingService(standingRepo, liveHub)
	matchService := services.NewMatchService(matchRepo, liveHub)
	settingsService := services.NewSettingsService(settingsRepo, liveHub)
	statsService := services.NewStatsService(clipRepo, matchRepo)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	clipHandler := handlers.NewClipHandler(clipService)
	standingHandler := handlers.NewStandingHandler(standingService)
	matchHandler := handlers.NewMatchHandler(matchService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	statsHandler := handlers.NewStatsHandler(statsService)
	webSocketHandler := handlers.NewWebSocketHandler(liveHub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authHandler,
		clipHandler,
		standingHandler,
		matchHandler,
		settingsHandler,
		statsHandler,
		webSocketHandler,
		[]byte(cfg.JWTSecretKey),
		cfg.UploadDir,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
		// No Read/WriteTimeout: multi-megabyte video uploads and
		// downloads legitimately outlive any fixed deadline.
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
