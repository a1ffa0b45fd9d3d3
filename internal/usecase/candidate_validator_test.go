package usecase_test

import (
	"strings"
	"testing"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalInput() *domain.CandidateInput {
	return &domain.CandidateInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
	}
}

func fullInput() *domain.CandidateInput {
	in := minimalInput()
	in.Phone = "612345678"
	in.Address = "Test Address"
	in.Educations = []domain.EducationInput{{
		Institution: "University",
		Title:       "Computer Science",
		StartDate:   "2018-01-01",
		EndDate:     "2022-01-01",
	}}
	in.WorkExperiences = []domain.WorkExperienceInput{{
		Company:     "Tech Company",
		Position:    "Developer",
		Description: "Developing software",
		StartDate:   "2022-02-01",
		EndDate:     "2023-01-01",
	}}
	in.CV = &domain.CVInput{FilePath: "/path/to/file.pdf", FileType: "application/pdf"}
	return in
}

func assertInvalid(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, message, vErr.Message)
}

func TestCandidateValidator(t *testing.T) {
	v, err := usecase.NewCandidateValidator(validator.New())
	require.NoError(t, err)

	t.Run("Should accept complete valid data", func(t *testing.T) {
		assert.NoError(t, v.Validate(fullInput()))
	})

	t.Run("Should accept the minimum required fields", func(t *testing.T) {
		assert.NoError(t, v.Validate(minimalInput()))
	})

	t.Run("Should skip validation in edit mode", func(t *testing.T) {
		in := &domain.CandidateInput{ID: "123", Email: "not-an-email"}
		assert.NoError(t, v.Validate(in))
	})

	t.Run("Should reject a nil submission", func(t *testing.T) {
		assertInvalid(t, v.Validate(nil), domain.MsgInvalidName)
	})

	t.Run("Should not mutate the submission", func(t *testing.T) {
		in := fullInput()
		before := *in
		_ = v.Validate(in)
		assert.Equal(t, before, *in)
	})

	nameCases := map[string]string{
		"missing":          "",
		"too short":        "J",
		"too long":         strings.Repeat("J", 101),
		"with digits":      "John123",
		"with punctuation": "John!",
	}
	for name, value := range nameCases {
		t.Run("Should reject firstName "+name, func(t *testing.T) {
			in := minimalInput()
			in.FirstName = value
			assertInvalid(t, v.Validate(in), domain.MsgInvalidName)
		})
		t.Run("Should reject lastName "+name, func(t *testing.T) {
			in := minimalInput()
			in.LastName = value
			assertInvalid(t, v.Validate(in), domain.MsgInvalidName)
		})
	}

	t.Run("Should accept accented names at the length bounds", func(t *testing.T) {
		in := minimalInput()
		in.FirstName = "Jo"
		in.LastName = strings.Repeat("é", 100)
		assert.NoError(t, v.Validate(in))
	})

	t.Run("Should reject missing email", func(t *testing.T) {
		in := minimalInput()
		in.Email = ""
		assertInvalid(t, v.Validate(in), domain.MsgInvalidEmail)
	})

	t.Run("Should reject malformed email", func(t *testing.T) {
		for _, email := range []string{"not-an-email", "john@example", "john@@example.com", "@example.com"} {
			in := minimalInput()
			in.Email = email
			assertInvalid(t, v.Validate(in), domain.MsgInvalidEmail)
		}
	})

	t.Run("Should check name before email", func(t *testing.T) {
		in := &domain.CandidateInput{LastName: "Doe", Email: "bad"}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidName)
	})

	t.Run("Should reject invalid phone", func(t *testing.T) {
		for _, phone := range []string{"12345", "812345678", "61234567a", "6123456789"} {
			in := minimalInput()
			in.Phone = phone
			assertInvalid(t, v.Validate(in), domain.MsgInvalidPhone)
		}
	})

	t.Run("Should reject address over 100 characters", func(t *testing.T) {
		in := minimalInput()
		in.Address = strings.Repeat("A", 101)
		assertInvalid(t, v.Validate(in), domain.MsgInvalidAddress)

		in.Address = strings.Repeat("A", 100)
		assert.NoError(t, v.Validate(in))
	})

	t.Run("Should reject education without institution", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{{Title: "Computer Science", StartDate: "2018-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidInstitution)
	})

	t.Run("Should reject education without title", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{{Institution: "University", StartDate: "2018-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidTitle)
	})

	t.Run("Should reject education dates in the wrong format", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{{Institution: "University", Title: "CS", StartDate: "2018/01/01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidDate)

		in.Educations = []domain.EducationInput{{Institution: "University", Title: "CS", StartDate: "2018-01-01", EndDate: "01-01-2022"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidDate)

		in.Educations = []domain.EducationInput{{Institution: "University", Title: "CS"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidDate)
	})

	t.Run("Should reject impossible calendar dates", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{{Institution: "University", Title: "CS", StartDate: "2023-02-30"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidDate)

		in.Educations = []domain.EducationInput{{Institution: "University", Title: "CS", StartDate: "2018-01-01", EndDate: "2022-13-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidDate)

		in.Educations = nil
		in.WorkExperiences = []domain.WorkExperienceInput{{Company: "Tech", Position: "Dev", StartDate: "2021-04-31"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidDate)
	})

	t.Run("Should accept leap days", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{{Institution: "University", Title: "CS", StartDate: "2024-02-29"}}
		assert.NoError(t, v.Validate(in))
	})

	t.Run("Should reject education fields longer than their columns", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{{Institution: strings.Repeat("U", 101), Title: "CS", StartDate: "2018-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidInstitution)

		in.Educations = []domain.EducationInput{{Institution: strings.Repeat("U", 100), Title: strings.Repeat("T", 251), StartDate: "2018-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidTitle)

		in.Educations = []domain.EducationInput{{Institution: strings.Repeat("U", 100), Title: strings.Repeat("T", 250), StartDate: "2018-01-01"}}
		assert.NoError(t, v.Validate(in))
	})

	t.Run("Should reject work fields longer than their columns", func(t *testing.T) {
		in := minimalInput()
		in.WorkExperiences = []domain.WorkExperienceInput{{Company: strings.Repeat("C", 101), Position: "Dev", StartDate: "2022-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidCompany)

		in.WorkExperiences = []domain.WorkExperienceInput{{Company: "Tech", Position: strings.Repeat("P", 101), StartDate: "2022-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidPosition)

		in.WorkExperiences = []domain.WorkExperienceInput{{Company: strings.Repeat("C", 100), Position: strings.Repeat("P", 100), StartDate: "2022-01-01"}}
		assert.NoError(t, v.Validate(in))
	})

	t.Run("Should reject emails longer than the column", func(t *testing.T) {
		in := minimalInput()
		in.Email = strings.Repeat("a", 250) + "@x.com"
		assertInvalid(t, v.Validate(in), domain.MsgInvalidEmail)
	})

	t.Run("Should report the first failing education in list order", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{
			{Institution: "University", Title: "CS", StartDate: "2018-01-01"},
			{Institution: "College", StartDate: "2019-01-01"},
			{Title: "MBA", StartDate: "2020-01-01"},
		}
		err := v.Validate(in)
		assertInvalid(t, err, domain.MsgInvalidTitle)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "educations[1].title", vErr.Field)
	})

	t.Run("Should reject work experience without company", func(t *testing.T) {
		in := minimalInput()
		in.WorkExperiences = []domain.WorkExperienceInput{{Position: "Developer", StartDate: "2022-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidCompany)
	})

	t.Run("Should reject work experience without position", func(t *testing.T) {
		in := minimalInput()
		in.WorkExperiences = []domain.WorkExperienceInput{{Company: "Tech Company", StartDate: "2022-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidPosition)
	})

	t.Run("Should reject work description over 200 characters", func(t *testing.T) {
		in := minimalInput()
		in.WorkExperiences = []domain.WorkExperienceInput{{
			Company:     "Tech Company",
			Position:    "Developer",
			Description: strings.Repeat("A", 201),
			StartDate:   "2022-01-01",
		}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidDescription)
	})

	t.Run("Should reject work dates in the wrong format", func(t *testing.T) {
		in := minimalInput()
		in.WorkExperiences = []domain.WorkExperienceInput{{Company: "Tech", Position: "Dev", StartDate: "2022-01-01", EndDate: "2023/01/01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidDate)
	})

	t.Run("Should check educations before work experiences", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{{Title: "CS", StartDate: "2018-01-01"}}
		in.WorkExperiences = []domain.WorkExperienceInput{{Position: "Dev", StartDate: "2022-01-01"}}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidInstitution)
	})

	t.Run("Should reject a cv missing one of its fields", func(t *testing.T) {
		in := minimalInput()
		in.CV = &domain.CVInput{FileType: "application/pdf"}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidCV)

		in.CV = &domain.CVInput{FilePath: "/path/to/cv.pdf"}
		assertInvalid(t, v.Validate(in), domain.MsgInvalidCV)
	})

	t.Run("Should treat an empty cv as absent", func(t *testing.T) {
		in := minimalInput()
		in.CV = &domain.CVInput{}
		assert.NoError(t, v.Validate(in))
	})

	t.Run("Should accept empty collections", func(t *testing.T) {
		in := minimalInput()
		in.Educations = []domain.EducationInput{}
		in.WorkExperiences = []domain.WorkExperienceInput{}
		assert.NoError(t, v.Validate(in))
	})
}
