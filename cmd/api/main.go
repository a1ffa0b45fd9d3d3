package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ats-backend/config"
	_ "go-ats-backend/docs" // Important for Swagger
	v1 "go-ats-backend/internal/delivery/http/v1"
	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/repository/gormstore"
	"go-ats-backend/internal/repository/postgres"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/audit"
	"go-ats-backend/pkg/database"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/redis"
	"go-ats-backend/pkg/storage"
	"go-ats-backend/pkg/validation"
)

// @title           ATS Candidate Intake API
// @version         1.0
// @description     Candidate intake for the applicant tracking system: validated submissions with educations, work experience and resume uploads.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting ATS backend", "port", cfg.Port, "env", cfg.AppEnv, "db_driver", cfg.DBDriver)

	auditLog := audit.New("ats-backend", cfg.AppEnv)
	defer auditLog.Sync()

	ctx := context.Background()

	// 3. Setup Database and Repositories
	var repos domain.IntakeRepositories
	var dbPing usecase.PingFunc
	switch cfg.DBDriver {
	case config.DriverMySQL:
		db, err := gormstore.NewMySQL(cfg.MySQLDSN, gormstore.Options{
			MaxOpenConns:    cfg.DBMaxConns,
			MaxIdleConns:    cfg.DBMinConns,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
			LogLevel:        cfg.LogLevel,
			AutoMigrate:     cfg.DBAutoMigrate,
		})
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer gormstore.Close(db)
		repos = gormstore.NewIntakeRepositories(db)
		dbPing = func(ctx context.Context) error { return gormstore.Ping(ctx, db) }
	default:
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{
			MaxConns: int32(cfg.DBMaxConns),
			MinConns: int32(cfg.DBMinConns),
		})
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		repos = postgres.NewIntakeRepositories(dbPool)
		dbPing = dbPool.Ping
	}

	health := map[string]usecase.Pinger{"database": dbPing}

	// 4. Setup Redis (optional, rate limits fall back to in-memory)
	health["redis"] = nil
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
			health["redis"] = usecase.PingFunc(redis.HealthCheck)
		}
	}

	// 5. Setup Resume Storage
	var fileStorage domain.FileStorage
	health["storage"] = nil
	if cfg.StorageConfigured() {
		s3Storage, err := storage.NewS3Storage(ctx, storage.Config{
			Provider:        storage.Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Warn("Resume storage not available - uploads disabled", "error", err)
		} else {
			fileStorage = s3Storage
			health["storage"] = s3Storage
		}
	} else {
		logger.Log.Warn("Resume storage not configured - uploads disabled")
	}

	// 6. Setup UseCases
	candidateValidator, err := usecase.NewCandidateValidator(validation.New())
	if err != nil {
		logger.Log.Error("Failed to register validation rules", "error", err)
		os.Exit(1)
	}
	candidateUC := usecase.NewCandidateUsecase(repos, candidateValidator, auditLog)
	uploadUC := usecase.NewResumeUploadUsecase(fileStorage, cfg.UploadMaxBytes, auditLog)
	healthUC := usecase.NewHealthUsecase(health)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		UploadUC:    uploadUC,
		HealthUC:    healthUC,
		Config:      cfg,
		Audit:       auditLog,
		Redis:       redis.Client(),
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
