package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/audit"
	"go-ats-backend/pkg/security"

	"github.com/google/uuid"
)

const resumeKeyPrefix = "resumes/"

type resumeUploadUsecase struct {
	storage  domain.FileStorage
	maxBytes int64
	audit    *audit.Logger
	now      func() time.Time
}

// NewResumeUploadUsecase returns an uploader accepting PDF and DOCX files up to maxBytes.
// storage may be nil, in which case every upload fails with 503.
func NewResumeUploadUsecase(storage domain.FileStorage, maxBytes int64, auditLog *audit.Logger) domain.ResumeUploadUsecase {
	return &resumeUploadUsecase{
		storage:  storage,
		maxBytes: maxBytes,
		audit:    auditLog,
		now:      time.Now,
	}
}

func (u *resumeUploadUsecase) Upload(ctx context.Context, filename string, data []byte) (*domain.UploadedFile, error) {
	if u.storage == nil {
		return nil, apperror.Unavailable("Resume storage is not configured")
	}
	if len(data) == 0 {
		return nil, apperror.BadRequest("No file uploaded")
	}
	if u.maxBytes > 0 && int64(len(data)) > u.maxBytes {
		u.audit.UploadRejected(ctx, filename, "too_large")
		return nil, apperror.TooLarge(fmt.Sprintf("File exceeds the %d byte limit", u.maxBytes))
	}

	detected := http.DetectContentType(data)
	result := security.ValidateResumeFile(filename, data, detected)
	if !result.Valid {
		u.audit.UploadRejected(ctx, filename, result.Error)
		return nil, apperror.Wrap(http.StatusUnsupportedMediaType,
			"Invalid file type, allowed: "+strings.Join(security.AllowedResumeExtensions(), ", "),
			errors.New(result.Error))
	}

	key := resumeKeyPrefix + objectName(u.now(), filepath.Ext(filename))
	path, err := u.storage.Put(ctx, key, result.ContentType, data)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("store resume: %w", err))
	}

	u.audit.ResumeUploaded(ctx, path, result.ContentType, len(data))
	return &domain.UploadedFile{FilePath: path, FileType: result.ContentType}, nil
}

func objectName(now time.Time, ext string) string {
	return fmt.Sprintf("%d_%s%s", now.UnixNano(), uuid.NewString(), strings.ToLower(ext))
}
