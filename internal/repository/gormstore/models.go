package gormstore

import (
	"time"

	"go-ats-backend/internal/domain"

	"gorm.io/datatypes"
)

type candidateModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	FirstName string  `gorm:"type:varchar(100);not null"`
	LastName  string  `gorm:"type:varchar(100);not null"`
	Email     string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_candidates_email_unique"`
	Phone     *string `gorm:"type:varchar(15)"`
	Address   *string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (candidateModel) TableName() string {
	return "candidates"
}

type educationModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	CandidateID int64           `gorm:"not null;index"`
	Institution string          `gorm:"type:varchar(100);not null"`
	Title       string          `gorm:"type:varchar(250);not null"`
	StartDate   datatypes.Date  `gorm:"type:date;not null"`
	EndDate     *datatypes.Date `gorm:"type:date"`
}

func (educationModel) TableName() string {
	return "educations"
}

type workExperienceModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	CandidateID int64           `gorm:"not null;index"`
	Company     string          `gorm:"type:varchar(100);not null"`
	Position    string          `gorm:"type:varchar(100);not null"`
	Description *string         `gorm:"type:varchar(200)"`
	StartDate   datatypes.Date  `gorm:"type:date;not null"`
	EndDate     *datatypes.Date `gorm:"type:date"`
}

func (workExperienceModel) TableName() string {
	return "work_experiences"
}

type resumeModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CandidateID int64     `gorm:"not null;index"`
	FilePath    string    `gorm:"type:varchar(500);not null"`
	FileType    string    `gorm:"type:varchar(100);not null"`
	UploadDate  time.Time `gorm:"not null"`
}

func (resumeModel) TableName() string {
	return "resumes"
}

func toCandidateModel(c *domain.Candidate) *candidateModel {
	return &candidateModel{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     nullString(c.Phone),
		Address:   nullString(c.Address),
	}
}

func (m *candidateModel) toDomain() *domain.Candidate {
	return &domain.Candidate{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     derefString(m.Phone),
		Address:   derefString(m.Address),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toEducationModel(e *domain.Education) (*educationModel, error) {
	start, err := parseDate(e.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(e.EndDate)
	if err != nil {
		return nil, err
	}
	return &educationModel{
		CandidateID: e.CandidateID,
		Institution: e.Institution,
		Title:       e.Title,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

func (m *educationModel) toDomain() *domain.Education {
	return &domain.Education{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		Institution: m.Institution,
		Title:       m.Title,
		StartDate:   formatDate(m.StartDate),
		EndDate:     formatOptionalDate(m.EndDate),
	}
}

func toWorkExperienceModel(w *domain.WorkExperience) (*workExperienceModel, error) {
	start, err := parseDate(w.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(w.EndDate)
	if err != nil {
		return nil, err
	}
	return &workExperienceModel{
		CandidateID: w.CandidateID,
		Company:     w.Company,
		Position:    w.Position,
		Description: nullString(w.Description),
		StartDate:   start,
		EndDate:     end,
	}, nil
}

func (m *workExperienceModel) toDomain() *domain.WorkExperience {
	return &domain.WorkExperience{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		Company:     m.Company,
		Position:    m.Position,
		Description: derefString(m.Description),
		StartDate:   formatDate(m.StartDate),
		EndDate:     formatOptionalDate(m.EndDate),
	}
}

func (m *resumeModel) toDomain() *domain.Resume {
	return &domain.Resume{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		FilePath:    m.FilePath,
		FileType:    m.FileType,
		UploadDate:  m.UploadDate,
	}
}
