package postgres

import (
	"errors"

	"go-ats-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type errorClassifier struct{}

// NewErrorClassifier recognises unique violations raised through pgx or lib/pq.
func NewErrorClassifier() domain.ErrorClassifier {
	return errorClassifier{}
}

func (errorClassifier) Classify(err error) domain.StoreErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.StoreErrDuplicate
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return domain.StoreErrDuplicate
	}
	return domain.StoreErrOther
}
