package postgres

import (
	"context"

	"go-ats-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepository struct {
	db querier
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepository{db: db}
}

func (r *educationRepository) Create(ctx context.Context, e *domain.Education) (*domain.Education, error) {
	startDate, err := parseDate(e.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(e.EndDate)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO educations (candidate_id, institution, title, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	saved := *e
	if err := r.db.QueryRow(ctx, query, e.CandidateID, e.Institution, e.Title, startDate, endDate).Scan(&saved.ID); err != nil {
		return nil, err
	}
	return &saved, nil
}
