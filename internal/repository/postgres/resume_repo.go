package postgres

import (
	"context"

	"go-ats-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepository struct {
	db querier
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, res *domain.Resume) (*domain.Resume, error) {
	query := `
		INSERT INTO resumes (candidate_id, file_path, file_type, upload_date)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, upload_date`
	saved := *res
	err := r.db.QueryRow(ctx, query, res.CandidateID, res.FilePath, res.FileType).Scan(&saved.ID, &saved.UploadDate)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
