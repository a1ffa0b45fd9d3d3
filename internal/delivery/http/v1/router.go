package v1

import (
	"time"

	"go-ats-backend/config"
	"go-ats-backend/internal/delivery/http/middleware"
	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/audit"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	UploadUC    domain.ResumeUploadUsecase
	HealthUC    usecase.HealthUsecase
	Config      *config.Config
	Audit       *audit.Logger
	Redis       *goredis.Client // optional; rate limits fall back to in-memory counters
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	intakeLimit := middleware.IntakeRateLimitConfig(cfg.RateLimitIntakeThreshold, window)
	intakeLimit.Redis = deps.Redis
	intakeLimit.Audit = deps.Audit
	NewCandidateHandler(v1, deps.CandidateUC, middleware.RateLimitMiddleware(intakeLimit))

	uploadLimit := middleware.UploadRateLimitConfig(cfg.RateLimitUploadThreshold, window)
	uploadLimit.Redis = deps.Redis
	uploadLimit.Audit = deps.Audit
	NewUploadHandler(v1, deps.UploadUC, cfg.UploadMaxBytes, middleware.RateLimitMiddleware(uploadLimit))

	return r
}
