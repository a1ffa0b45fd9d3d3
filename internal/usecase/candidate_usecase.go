package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/audit"
)

// validationPrefix marks errors raised by the validator before anything is saved.
const validationPrefix = "Error: "

type candidateUsecase struct {
	repos     domain.IntakeRepositories
	validator domain.CandidateValidator
	audit     *audit.Logger
}

func NewCandidateUsecase(repos domain.IntakeRepositories, validator domain.CandidateValidator, auditLog *audit.Logger) domain.CandidateUsecase {
	return &candidateUsecase{
		repos:     repos,
		validator: validator,
		audit:     auditLog,
	}
}

// AddCandidate validates the submission, saves the candidate and then each of its
// educations, work experiences and cv, one at a time and in that order. The first
// failing save aborts the call; records saved before it are left in place.
func (u *candidateUsecase) AddCandidate(ctx context.Context, input *domain.CandidateInput) (*domain.Candidate, error) {
	if input == nil {
		return nil, apperror.BadRequest(validationPrefix + domain.MsgInvalidName)
	}

	if err := u.validator.Validate(input); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			u.audit.CandidateRejected(ctx, input.Email, vErr)
		}
		return nil, apperror.Wrap(http.StatusBadRequest, validationPrefix+err.Error(), err)
	}

	record, err := newCandidateRecord(input)
	if err != nil {
		return nil, err
	}

	saved, err := u.repos.Candidates.Create(ctx, record)
	if err != nil {
		if u.repos.Classifier.Classify(err) == domain.StoreErrDuplicate {
			u.audit.DuplicateEmail(ctx, input.Email)
			return nil, apperror.Wrap(http.StatusConflict, domain.ErrEmailAlreadyExists.Error(), domain.ErrEmailAlreadyExists)
		}
		u.audit.PersistenceFailed(ctx, "candidate", err)
		return nil, err
	}

	candidate := *saved
	candidate.Educations = make([]domain.Education, 0, len(input.Educations))
	candidate.WorkExperiences = make([]domain.WorkExperience, 0, len(input.WorkExperiences))
	candidate.Resumes = make([]domain.Resume, 0, 1)

	for _, in := range input.Educations {
		edu, err := u.repos.Educations.Create(ctx, newEducationRecord(candidate.ID, in))
		if err != nil {
			u.audit.PersistenceFailed(ctx, "education", err)
			return nil, err
		}
		candidate.Educations = append(candidate.Educations, *edu)
	}

	for _, in := range input.WorkExperiences {
		exp, err := u.repos.WorkExperiences.Create(ctx, newWorkExperienceRecord(candidate.ID, in))
		if err != nil {
			u.audit.PersistenceFailed(ctx, "work_experience", err)
			return nil, err
		}
		candidate.WorkExperiences = append(candidate.WorkExperiences, *exp)
	}

	if !input.CV.IsEmpty() {
		resume, err := u.repos.Resumes.Create(ctx, &domain.Resume{
			CandidateID: candidate.ID,
			FilePath:    input.CV.FilePath,
			FileType:    input.CV.FileType,
		})
		if err != nil {
			u.audit.PersistenceFailed(ctx, "resume", err)
			return nil, err
		}
		candidate.Resumes = append(candidate.Resumes, *resume)
	}

	u.audit.CandidateCreated(ctx, candidate.ID, candidate.Email,
		len(candidate.Educations)+len(candidate.WorkExperiences)+len(candidate.Resumes))

	return &candidate, nil
}

func newCandidateRecord(in *domain.CandidateInput) (*domain.Candidate, error) {
	c := &domain.Candidate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
	}
	if in.IsEditMode() {
		id, err := strconv.ParseInt(strings.TrimSpace(string(in.ID)), 10, 64)
		if err != nil || id <= 0 {
			return nil, apperror.BadRequest("Invalid candidate id")
		}
		c.ID = id
	}
	return c, nil
}

func newEducationRecord(candidateID int64, in domain.EducationInput) *domain.Education {
	return &domain.Education{
		CandidateID: candidateID,
		Institution: in.Institution,
		Title:       in.Title,
		StartDate:   in.StartDate,
		EndDate:     optional(in.EndDate),
	}
}

func newWorkExperienceRecord(candidateID int64, in domain.WorkExperienceInput) *domain.WorkExperience {
	return &domain.WorkExperience{
		CandidateID: candidateID,
		Company:     in.Company,
		Position:    in.Position,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     optional(in.EndDate),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
