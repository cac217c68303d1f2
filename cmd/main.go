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

	"github.com/amateur-sports/league-system/config"
	"github.com/amateur-sports/league-system/db"
	"github.com/amateur-sports/league-system/fixtures"
	"github.com/amateur-sports/league-system/handlers"
	"github.com/amateur-sports/league-system/repositories"
	api "github.com/amateur-sports/league-system/routes"
	"github.com/amateur-sports/league-system/services"
	"github.com/amateur-sports/league-system/storage"
	"github.com/amateur-sports/league-system/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("store_backend", cfg.StoreBackend))

	var dataStore store.Store
	switch cfg.StoreBackend {
	case "postgres":
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()

		pgStore := store.NewPostgresStore(dbConn)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			logger.Error("failed to bootstrap store schema", slog.Any("error", err))
			os.Exit(1)
		}
		dataStore = pgStore
		logger.Info("postgres store ready")
	default:
		var opts []store.MemoryOption
		if cfg.StoreQuotaBytes > 0 {
			opts = append(opts, store.WithQuota(cfg.StoreQuotaBytes))
		}
		dataStore = store.NewMemoryStore(opts...)
		logger.Info("memory store ready")
	}

	uploader := storage.Disabled()
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("object storage not configured, media uploads disabled")
	}

	playerRepo := repositories.NewPlayerRepository(dataStore)
	teamRepo := repositories.NewTeamRepository(dataStore)
	tournamentRepo := repositories.NewTournamentRepository(dataStore)
	matchRepo := repositories.NewMatchRepository(dataStore)
	goalRepo := repositories.NewGoalRepository(dataStore)
	newsRepo := repositories.NewNewsRepository(dataStore)
	storyRepo := repositories.NewStoryRepository(dataStore)
	overrideRepo := repositories.NewOverrideRepository(dataStore)
	authRepo := repositories.NewAuthRepository(dataStore)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(authRepo, cfg.AdminPasswordHash)
	playerService := services.NewPlayerService(playerRepo)
	teamService := services.NewTeamService(teamRepo, playerRepo)
	tournamentService := services.NewTournamentService(tournamentRepo, teamRepo, matchRepo, overrideRepo, logger)
	matchService := services.NewMatchService(matchRepo, goalRepo, teamRepo, playerRepo, tournamentRepo, fixtures.NewRoundRobinGenerator(), logger)
	tableService := services.NewTableService(tournamentRepo, matchRepo, overrideRepo)
	scorerService := services.NewScorerService(goalRepo, playerRepo, teamRepo)
	newsService := services.NewNewsService(newsRepo)
	storyService := services.NewStoryService(storyRepo)
	importService := services.NewImportService(tournamentRepo, teamRepo, playerRepo, matchRepo, logger)
	dashboardService := services.NewDashboardService(playerRepo, teamRepo, tournamentRepo, matchRepo, goalRepo, newsRepo)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	playerHandler := handlers.NewPlayerHandler(playerService)
	teamHandler := handlers.NewTeamHandler(teamService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	matchHandler := handlers.NewMatchHandler(matchService)
	tableHandler := handlers.NewTableHandler(tableService, scorerService)
	newsHandler := handlers.NewNewsHandler(newsService)
	storyHandler := handlers.NewStoryHandler(storyService)
	importHandler := handlers.NewImportHandler(importService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	mediaHandler := handlers.NewMediaHandler(uploader)
	adminHandler := handlers.NewAdminHandler(dataStore, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		playerHandler,
		teamHandler,
		tournamentHandler,
		matchHandler,
		tableHandler,
		newsHandler,
		storyHandler,
		importHandler,
		dashboardHandler,
		mediaHandler,
		adminHandler,
	)
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
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
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
