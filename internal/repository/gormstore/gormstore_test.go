package gormstore

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	t.Run("Should classify translated duplicate keys", func(t *testing.T) {
		assert.Equal(t, domain.StoreErrDuplicate, c.Classify(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)))
	})

	t.Run("Should classify raw MySQL 1062 errors", func(t *testing.T) {
		err := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.c' for key 'idx_candidates_email_unique'"}
		assert.Equal(t, domain.StoreErrDuplicate, c.Classify(err))
	})

	t.Run("Should classify other errors as other", func(t *testing.T) {
		assert.Equal(t, domain.StoreErrOther, c.Classify(&mysql.MySQLError{Number: 1452}))
		assert.Equal(t, domain.StoreErrOther, c.Classify(errors.New("bad connection")))
	})
}

func TestModelConversion(t *testing.T) {
	t.Run("Should round-trip education dates", func(t *testing.T) {
		end := "2022-06-30"
		m, err := toEducationModel(&domain.Education{CandidateID: 2, Institution: "Uni", Title: "CS", StartDate: "2018-09-01", EndDate: &end})
		require.NoError(t, err)

		back := m.toDomain()
		assert.Equal(t, "2018-09-01", back.StartDate)
		require.NotNil(t, back.EndDate)
		assert.Equal(t, "2022-06-30", *back.EndDate)
		assert.Equal(t, int64(2), back.CandidateID)
	})

	t.Run("Should store empty optional fields as NULL", func(t *testing.T) {
		m, err := toWorkExperienceModel(&domain.WorkExperience{Company: "Acme", Position: "Dev", StartDate: "2020-01-01"})
		require.NoError(t, err)
		assert.Nil(t, m.Description)
		assert.Nil(t, m.EndDate)

		c := toCandidateModel(&domain.Candidate{FirstName: "John", Email: "j@d.com"})
		assert.Nil(t, c.Phone)
		assert.Nil(t, c.Address)
		assert.Equal(t, "", c.toDomain().Phone)
	})

	t.Run("Should reject malformed dates", func(t *testing.T) {
		_, err := toEducationModel(&domain.Education{StartDate: "01/09/2018"})
		assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
	})
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLogLevel("silent"))
	assert.Equal(t, logger.Info, gormLogLevel("debug"))
	assert.Equal(t, logger.Warn, gormLogLevel(""))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "candidates", candidateModel{}.TableName())
	assert.Equal(t, "educations", educationModel{}.TableName())
	assert.Equal(t, "work_experiences", workExperienceModel{}.TableName())
	assert.Equal(t, "resumes", resumeModel{}.TableName())
}

func TestCandidateUpdates(t *testing.T) {
	t.Run("Should list only the fields an edit carries", func(t *testing.T) {
		updates := candidateUpdates(&domain.Candidate{ID: 5, Phone: "612345678"})
		assert.Equal(t, map[string]any{"phone": "612345678"}, updates)
	})

	t.Run("Should list nothing for an edit without core fields", func(t *testing.T) {
		assert.Empty(t, candidateUpdates(&domain.Candidate{ID: 5}))
	})

	t.Run("Should build an UPDATE that leaves omitted columns alone", func(t *testing.T) {
		db, err := gorm.Open(gormmysql.New(gormmysql.Config{
			DSN:                       "user:pass@tcp(127.0.0.1:3306)/ats?parseTime=true",
			SkipInitializeWithVersion: true,
		}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
		require.NoError(t, err)

		stmt := db.Model(&candidateModel{ID: 5}).
			Updates(candidateUpdates(&domain.Candidate{ID: 5, Phone: "612345678"})).Statement
		sql := stmt.SQL.String()

		assert.Contains(t, sql, "UPDATE `candidates` SET")
		assert.Contains(t, sql, "`phone`=?")
		for _, column := range []string{"`first_name`", "`last_name`", "`email`", "`address`"} {
			assert.NotContains(t, sql, column)
		}
	})
}
