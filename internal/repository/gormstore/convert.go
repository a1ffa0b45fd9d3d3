package gormstore

import (
	"fmt"
	"net/http"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"gorm.io/datatypes"
)

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return datatypes.Date{}, apperror.Wrap(http.StatusBadRequest, domain.MsgInvalidDate, fmt.Errorf("parse date %q: %w", s, err))
	}
	return datatypes.Date(t), nil
}

func parseOptionalDate(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(domain.DateLayout)
}

func formatOptionalDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := formatDate(*d)
	return &s
}
