package gormstore

import (
	"context"
	"errors"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"gorm.io/gorm"
)

// NewIntakeRepositories returns the GORM-backed intake store.
func NewIntakeRepositories(db *gorm.DB) domain.IntakeRepositories {
	return domain.IntakeRepositories{
		Candidates:      &candidateRepository{db: db},
		Educations:      &educationRepository{db: db},
		WorkExperiences: &workExperienceRepository{db: db},
		Resumes:         &resumeRepository{db: db, now: time.Now},
		Classifier:      NewErrorClassifier(),
	}
}

type candidateRepository struct {
	db *gorm.DB
}

// Create inserts a new candidate, or updates an existing one when the record carries an ID.
func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	m := toCandidateModel(c)
	db := r.db.WithContext(ctx)

	if m.ID == 0 {
		if err := db.Create(m).Error; err != nil {
			return nil, err
		}
		return m.toDomain(), nil
	}

	if updates := candidateUpdates(c); len(updates) > 0 {
		if err := db.Model(&candidateModel{ID: m.ID}).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	var saved candidateModel
	if err := db.First(&saved, m.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return saved.toDomain(), nil
}

// candidateUpdates lists the columns an edit-mode save writes: only the core
// fields the submission carries. updated_at is maintained by GORM.
func candidateUpdates(c *domain.Candidate) map[string]any {
	updates := map[string]any{}
	for column, value := range map[string]string{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"phone":      c.Phone,
		"address":    c.Address,
	} {
		if value != "" {
			updates[column] = value
		}
	}
	return updates
}

type educationRepository struct {
	db *gorm.DB
}

func (r *educationRepository) Create(ctx context.Context, e *domain.Education) (*domain.Education, error) {
	m, err := toEducationModel(e)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

type workExperienceRepository struct {
	db *gorm.DB
}

func (r *workExperienceRepository) Create(ctx context.Context, w *domain.WorkExperience) (*domain.WorkExperience, error) {
	m, err := toWorkExperienceModel(w)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

type resumeRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func (r *resumeRepository) Create(ctx context.Context, res *domain.Resume) (*domain.Resume, error) {
	m := &resumeModel{
		CandidateID: res.CandidateID,
		FilePath:    res.FilePath,
		FileType:    res.FileType,
		UploadDate:  r.now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}
