package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simply-jobs-backend/config"
	_ "simply-jobs-backend/docs" // Important for Swagger
	v1 "simply-jobs-backend/internal/delivery/http/v1"
	"simply-jobs-backend/internal/repository/postgres"
	"simply-jobs-backend/internal/usecase"
	"simply-jobs-backend/pkg/auth"
	"simply-jobs-backend/pkg/database"
	"simply-jobs-backend/pkg/logger"
	"simply-jobs-backend/pkg/redis"
	"simply-jobs-backend/pkg/storage"
)

// @title           Simply Jobs API
// @version         1.0
// @description     Job board backend for job seekers and employers.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting simply-jobs backend", "port", cfg.Port)

	if err := database.MigrateUp(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	var blobs storage.BlobStore
	if cfg.S3Bucket != "" {
		blobs, err = storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to initialize blob storage", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Log.Warn("S3_BUCKET not configured - resume and picture uploads will be unavailable")
	}

	userRepo := postgres.NewUserRepository(dbPool)
	jobSeekerRepo := postgres.NewJobSeekerRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)

	tokens := auth.NewHMACService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authUC := usecase.NewAuthUsecase(userRepo, jobSeekerRepo, employerRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	profileUC := usecase.NewProfileUsecase(jobSeekerRepo, employerRepo, educationRepo, experienceRepo, blobs)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		ProfileUC:     profileUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
