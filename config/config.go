package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Port        string
	AppEnv      string
	LogLevel    string
	FrontendURL string
	// Database
	DBDriver      string
	DBUrl         string // Postgres connection string
	MySQLDSN      string
	DBMaxConns    int
	DBMinConns    int
	DBAutoMigrate bool // GORM store only
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitIntakeThreshold int
	RateLimitUploadThreshold int
	// Resume storage (S3-compatible)
	S3Provider        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3Endpoint        string
	UploadMaxBytes    int64
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; missing file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Database
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBUrl:         getEnv("DATABASE_URL", ""),
		MySQLDSN:      getEnv("MYSQL_DSN", ""),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 25),
		DBMinConns:    getEnvInt("DB_MIN_CONNS", 5),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitIntakeThreshold: getEnvInt("RATE_LIMIT_INTAKE_THRESHOLD", 30),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		// Resume storage
		S3Provider:        strings.ToLower(getEnv("S3_PROVIDER", "aws")),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Endpoint:        strings.TrimRight(getEnv("S3_ENDPOINT", ""), "/"),
		UploadMaxBytes:    getEnvInt64("UPLOAD_MAX_BYTES", 10<<20),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBUrl == "" {
			return nil, errors.New("config: DATABASE_URL is required when DB_DRIVER=postgres")
		}
	case DriverMySQL:
		if cfg.MySQLDSN == "" {
			return nil, errors.New("config: MYSQL_DSN is required when DB_DRIVER=mysql")
		}
	default:
		return nil, errors.New("config: unsupported DB_DRIVER " + cfg.DBDriver)
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}
	if cfg.S3Bucket == "" {
		log.Println("WARNING: S3_BUCKET not configured. Resume uploads will be unavailable.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// StorageConfigured reports whether resume uploads can be stored.
func (c *Config) StorageConfigured() bool {
	return c.S3Bucket != "" && c.S3AccessKeyID != "" && c.S3SecretAccessKey != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
