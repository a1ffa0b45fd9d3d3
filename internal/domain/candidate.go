package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for education and work dates.
const DateLayout = "2006-01-02"

// ErrEmailAlreadyExists is reported when the candidate email collides with an existing row.
var ErrEmailAlreadyExists = errors.New("The email already exists in the database")

// CandidateInput is a candidate submission as received from the caller.
// A non-empty ID marks edit mode.
type CandidateInput struct {
	ID              SubmissionID          `json:"id,omitempty"`
	FirstName       string                `json:"firstName"`
	LastName        string                `json:"lastName"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone,omitempty"`
	Address         string                `json:"address,omitempty"`
	Educations      []EducationInput      `json:"educations,omitempty"`
	WorkExperiences []WorkExperienceInput `json:"workExperiences,omitempty"`
	CV              *CVInput              `json:"cv,omitempty"`
}

// IsEditMode reports whether the submission targets an existing candidate.
func (in *CandidateInput) IsEditMode() bool {
	return strings.TrimSpace(string(in.ID)) != ""
}

// SubmissionID is the edit-mode marker. Clients may echo a stored id back as a
// JSON number or as a string; both decode to the same text.
type SubmissionID string

func (id *SubmissionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SubmissionID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(*id), Field: "id"}
	}
	*id = SubmissionID(n.String())
	return nil
}

type EducationInput struct {
	Institution string `json:"institution"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
}

type WorkExperienceInput struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
}

// CVInput references a previously uploaded resume file.
type CVInput struct {
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
}

// IsEmpty reports whether neither field is set. An empty CV is skipped entirely.
func (cv *CVInput) IsEmpty() bool {
	return cv == nil || (cv.FilePath == "" && cv.FileType == "")
}

// Candidate is the persisted root record together with the children saved for it.
type Candidate struct {
	ID              int64            `json:"id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Address         string           `json:"address,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	Educations      []Education      `json:"educations"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Resumes         []Resume         `json:"resumes"`
}

type Education struct {
	ID          int64   `json:"id"`
	CandidateID int64   `json:"candidateId"`
	Institution string  `json:"institution"`
	Title       string  `json:"title"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

type WorkExperience struct {
	ID          int64   `json:"id"`
	CandidateID int64   `json:"candidateId"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description string  `json:"description,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

type Resume struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	FilePath    string    `json:"filePath"`
	FileType    string    `json:"fileType"`
	UploadDate  time.Time `json:"uploadDate"`
}

// CandidateRepository saves root records. A record that already carries an ID is
// updated in place instead of inserted.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) (*Candidate, error)
}

type EducationRepository interface {
	Create(ctx context.Context, education *Education) (*Education, error)
}

type WorkExperienceRepository interface {
	Create(ctx context.Context, experience *WorkExperience) (*WorkExperience, error)
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) (*Resume, error)
}

// StoreErrorKind is the store-independent class of a persistence failure.
type StoreErrorKind int

const (
	StoreErrOther StoreErrorKind = iota
	StoreErrDuplicate
)

// ErrorClassifier maps driver errors onto StoreErrorKind.
type ErrorClassifier interface {
	Classify(err error) StoreErrorKind
}

// IntakeRepositories bundles everything a store backend provides for candidate intake.
type IntakeRepositories struct {
	Candidates      CandidateRepository
	Educations      EducationRepository
	WorkExperiences WorkExperienceRepository
	Resumes         ResumeRepository
	Classifier      ErrorClassifier
}

type CandidateValidator interface {
	Validate(input *CandidateInput) error
}

type CandidateUsecase interface {
	AddCandidate(ctx context.Context, input *CandidateInput) (*Candidate, error)
}
