package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"go-ats-backend/internal/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType identifies an intake audit event
type EventType string

const (
	EventCandidateCreated   EventType = "candidate_created"
	EventCandidateRejected  EventType = "candidate_rejected"
	EventDuplicateEmail     EventType = "duplicate_email"
	EventPersistenceFailed  EventType = "persistence_failed"
	EventResumeUploaded     EventType = "resume_uploaded"
	EventUploadRejected     EventType = "upload_rejected"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// Logger writes intake audit events through zap. A nil *Logger discards events.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New builds a production zap logger writing JSON to stdout.
func New(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewWithZap(logger, serviceName, environment)
}

// NewWithZap wraps an existing zap logger.
func NewWithZap(logger *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

func (l *Logger) log(ctx context.Context, level zapcore.Level, event EventType, fields ...zap.Field) {
	if l == nil {
		return
	}
	base := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event)),
	}
	if reqID := requestID(ctx); reqID != "" {
		base = append(base, zap.String("request_id", reqID))
	}
	l.zapLogger.Log(level, string(event), append(base, fields...)...)
}

func (l *Logger) CandidateCreated(ctx context.Context, candidateID int64, email string, children int) {
	l.log(ctx, zapcore.InfoLevel, EventCandidateCreated,
		zap.Int64("candidate_id", candidateID),
		zap.String("email_hash", HashValue(email)),
		zap.Int("children", children),
	)
}

func (l *Logger) CandidateRejected(ctx context.Context, email string, err *domain.ValidationError) {
	l.log(ctx, zapcore.WarnLevel, EventCandidateRejected,
		zap.String("email_hash", HashValue(email)),
		zap.String("field", err.Field),
		zap.String("reason", err.Message),
	)
}

func (l *Logger) DuplicateEmail(ctx context.Context, email string) {
	l.log(ctx, zapcore.WarnLevel, EventDuplicateEmail, zap.String("email_hash", HashValue(email)))
}

// PersistenceFailed records a failed save; stage names the record type being saved.
func (l *Logger) PersistenceFailed(ctx context.Context, stage string, err error) {
	l.log(ctx, zapcore.ErrorLevel, EventPersistenceFailed, zap.String("stage", stage), zap.Error(err))
}

func (l *Logger) ResumeUploaded(ctx context.Context, path, fileType string, size int) {
	l.log(ctx, zapcore.InfoLevel, EventResumeUploaded,
		zap.String("path", path),
		zap.String("file_type", fileType),
		zap.Int("size", size),
	)
}

func (l *Logger) UploadRejected(ctx context.Context, filename, reason string) {
	l.log(ctx, zapcore.WarnLevel, EventUploadRejected,
		zap.String("filename", filename),
		zap.String("reason", reason),
	)
}

func (l *Logger) RateLimitTriggered(ctx context.Context, ip, endpoint string) {
	l.log(ctx, zapcore.WarnLevel, EventRateLimitTriggered,
		zap.String("ip", ip),
		zap.String("endpoint", endpoint),
	)
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func requestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}
