package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db querier
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// Create inserts a new candidate, or updates the core fields of an existing one
// when the record carries an ID. Children are never touched here.
func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	if c.ID != 0 {
		return r.update(ctx, c)
	}

	saved := *c

	query := `
		INSERT INTO candidates (first_name, last_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		c.FirstName, c.LastName, c.Email, nullString(c.Phone), nullString(c.Address),
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// update writes only the core fields the submission carries; omitted fields keep
// their stored values. The stored row is returned.
func (r *candidateRepository) update(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	for _, f := range []struct {
		column string
		value  string
	}{
		{"first_name", c.FirstName},
		{"last_name", c.LastName},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
	} {
		if f.value == "" {
			continue
		}
		args = append(args, f.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", f.column, len(args)))
	}
	args = append(args, c.ID)

	query := fmt.Sprintf(`
		UPDATE candidates
		SET %s
		WHERE id = $%d
		RETURNING id, first_name, last_name, email, phone, address, created_at, updated_at`,
		strings.Join(sets, ", "), len(args))

	var saved domain.Candidate
	var phone, address *string
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&saved.ID, &saved.FirstName, &saved.LastName, &saved.Email, &phone, &address,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	if phone != nil {
		saved.Phone = *phone
	}
	if address != nil {
		saved.Address = *address
	}
	return &saved, nil
}
