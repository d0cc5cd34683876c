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

	"github.com/go-chi/chi/v5"

	"github.com/ffliq/ffliq-backend/config"
	"github.com/ffliq/ffliq-backend/db"
	"github.com/ffliq/ffliq-backend/handlers"
	"github.com/ffliq/ffliq-backend/newsfeed"
	"github.com/ffliq/ffliq-backend/repositories"
	api "github.com/ffliq/ffliq-backend/routes"
	"github.com/ffliq/ffliq-backend/services"
	"github.com/ffliq/ffliq-backend/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("api_prefix", cfg.APIPrefix))

	dbConn, err := db.Connect(cfg.DatabaseURL, cfg.DBConnectTimeout)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.StorageEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
			Endpoint:        cfg.R2Endpoint,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Warn("object storage not configured, uploads disabled")
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := newsfeed.NewHub(logger)
	go hub.Run(hubCtx)
	logger.Info("news hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	leagueRepo := repositories.NewPostgresLeagueRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	rosterRepo := repositories.NewPostgresRosterRepository(dbConn)
	statsRepo := repositories.NewPostgresStatsRepository(dbConn)
	projectionRepo := repositories.NewPostgresProjectionRepository(dbConn)
	pointsRepo := repositories.NewPostgresPointsRepository(dbConn)
	newsRepo := repositories.NewPostgresNewsRepository(dbConn)
	scheduleRepo := repositories.NewPostgresScheduleRepository(dbConn)

	authService := services.NewAuthService(userRepo, cfg.SecretKey, cfg.AccessTokenTTL())
	playerService := services.NewPlayerService(playerRepo, statsRepo, projectionRepo, newsRepo)
	statsService := services.NewStatsService(dbConn, playerRepo, statsRepo, projectionRepo, pointsRepo, logger)
	leagueService := services.NewLeagueService(dbConn, leagueRepo, teamRepo, pointsRepo, logger)
	teamService := services.NewTeamService(teamRepo, leagueRepo, rosterRepo)
	scheduleService := services.NewScheduleService(scheduleRepo)
	newsService := services.NewNewsService(newsRepo, playerRepo, hub)
	mediaService := services.NewMediaService(uploader, teamRepo, playerRepo, logger)

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Health:    handlers.NewHealthHandler(dbConn),
		Users:     handlers.NewUserHandler(authService, leagueService, teamService),
		Players:   handlers.NewPlayerHandler(playerService, statsService, newsService),
		Leagues:   handlers.NewLeagueHandler(leagueService),
		Teams:     handlers.NewTeamHandler(teamService),
		Schedules: handlers.NewScheduleHandler(scheduleService),
		Media:     handlers.NewMediaHandler(mediaService),
		WebSocket: handlers.NewWebSocketHandler(hub, playerService, cfg.CORSOrigins),
	}, api.Options{
		APIPrefix:   cfg.APIPrefix,
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      authService,
		Logger:      logger,
	})
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
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
		stopHub()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

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
