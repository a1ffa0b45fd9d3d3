package postgres

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the part of *pgxpool.Pool (and pgx.Tx) the repositories use.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ querier = (*pgxpool.Pool)(nil)

// NewIntakeRepositories returns the Postgres-backed intake store.
func NewIntakeRepositories(db *pgxpool.Pool) domain.IntakeRepositories {
	return domain.IntakeRepositories{
		Candidates:      NewCandidateRepository(db),
		Educations:      NewEducationRepository(db),
		WorkExperiences: NewWorkExperienceRepository(db),
		Resumes:         NewResumeRepository(db),
		Classifier:      NewErrorClassifier(),
	}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseDate converts a YYYY-MM-DD string into a DATE parameter.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, apperror.Wrap(http.StatusBadRequest, domain.MsgInvalidDate, fmt.Errorf("parse date %q: %w", s, err))
	}
	return t, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
