package usecase

import (
	"errors"
	"fmt"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const dateTag = "datetime=" + domain.DateLayout

// fieldCheck pairs a validator tag with the message reported when it fails.
type fieldCheck struct {
	field   string
	value   string
	tag     string
	message string
}

type candidateValidator struct {
	validate *validator.Validate
}

// NewCandidateValidator registers the candidate rules on validate and returns a
// validator that reports the first failing field, in submission order.
func NewCandidateValidator(validate *validator.Validate) (domain.CandidateValidator, error) {
	if err := validation.RegisterValidators(validate); err != nil {
		return nil, err
	}
	return &candidateValidator{validate: validate}, nil
}

// Validate never mutates input. Submissions in edit mode are trusted as-is.
func (v *candidateValidator) Validate(input *domain.CandidateInput) error {
	if input == nil {
		return domain.NewValidationError("firstName", domain.MsgInvalidName)
	}
	if input.IsEditMode() {
		return nil
	}

	for _, check := range candidateChecks(input) {
		if err := v.validate.Var(check.value, check.tag); err != nil {
			var invalid *validator.InvalidValidationError
			if errors.As(err, &invalid) {
				return err
			}
			return domain.NewValidationError(check.field, check.message)
		}
	}
	return nil
}

func candidateChecks(in *domain.CandidateInput) []fieldCheck {
	checks := []fieldCheck{
		{"firstName", in.FirstName, "required,min=2,max=100," + validation.TagCandidateName, domain.MsgInvalidName},
		{"lastName", in.LastName, "required,min=2,max=100," + validation.TagCandidateName, domain.MsgInvalidName},
		{"email", in.Email, "required,max=255," + validation.TagCandidateEmail, domain.MsgInvalidEmail},
		{"phone", in.Phone, "omitempty," + validation.TagCandidatePhone, domain.MsgInvalidPhone},
		{"address", in.Address, "omitempty,max=100", domain.MsgInvalidAddress},
	}

	for i, edu := range in.Educations {
		prefix := fmt.Sprintf("educations[%d].", i)
		checks = append(checks,
			fieldCheck{prefix + "institution", edu.Institution, "required,max=100", domain.MsgInvalidInstitution},
			fieldCheck{prefix + "title", edu.Title, "required,max=250", domain.MsgInvalidTitle},
			fieldCheck{prefix + "startDate", edu.StartDate, "required," + dateTag, domain.MsgInvalidDate},
			fieldCheck{prefix + "endDate", edu.EndDate, "omitempty," + dateTag, domain.MsgInvalidDate},
		)
	}

	for i, exp := range in.WorkExperiences {
		prefix := fmt.Sprintf("workExperiences[%d].", i)
		checks = append(checks,
			fieldCheck{prefix + "company", exp.Company, "required,max=100", domain.MsgInvalidCompany},
			fieldCheck{prefix + "position", exp.Position, "required,max=100", domain.MsgInvalidPosition},
			fieldCheck{prefix + "description", exp.Description, "omitempty,max=200", domain.MsgInvalidDescription},
			fieldCheck{prefix + "startDate", exp.StartDate, "required," + dateTag, domain.MsgInvalidDate},
			fieldCheck{prefix + "endDate", exp.EndDate, "omitempty," + dateTag, domain.MsgInvalidDate},
		)
	}

	// A cv with neither field set is treated as absent.
	if !in.CV.IsEmpty() {
		checks = append(checks,
			fieldCheck{"cv.filePath", in.CV.FilePath, "required,max=500", domain.MsgInvalidCV},
			fieldCheck{"cv.fileType", in.CV.FileType, "required,max=100", domain.MsgInvalidCV},
		)
	}

	return checks
}
