package gormstore

import (
	"errors"

	"go-ats-backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL error numbers
const (
	mysqlDuplicateEntry = 1062
)

type errorClassifier struct{}

// NewErrorClassifier recognises duplicate-key errors, translated by GORM or raw from the driver.
func NewErrorClassifier() domain.ErrorClassifier {
	return errorClassifier{}
}

func (errorClassifier) Classify(err error) domain.StoreErrorKind {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.StoreErrDuplicate
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return domain.StoreErrDuplicate
	}
	return domain.StoreErrOther
}
