package postgres

import (
	"context"

	"go-ats-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type workExperienceRepository struct {
	db querier
}

func NewWorkExperienceRepository(db *pgxpool.Pool) domain.WorkExperienceRepository {
	return &workExperienceRepository{db: db}
}

func (r *workExperienceRepository) Create(ctx context.Context, w *domain.WorkExperience) (*domain.WorkExperience, error) {
	startDate, err := parseDate(w.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(w.EndDate)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO work_experiences (candidate_id, company, position, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	saved := *w
	err = r.db.QueryRow(ctx, query,
		w.CandidateID, w.Company, w.Position, nullString(w.Description), startDate, endDate,
	).Scan(&saved.ID)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
