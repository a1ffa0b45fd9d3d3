package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Tags registered by RegisterValidators.
const (
	TagCandidateName  = "candidate_name"
	TagCandidatePhone = "candidate_phone"
	TagCandidateEmail = "candidate_email"
)

// Regex patterns
var (
	// Letters (accented included) and spaces only
	nameRegex = regexp.MustCompile(`^[\p{L} ]+$`)

	// National mobile/landline: 9 digits starting with 6, 7 or 9
	phoneRegex = regexp.MustCompile(`^[679][0-9]{8}$`)

	// local@domain.tld, no whitespace, exactly one @
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var candidateRules = []rule{
	{TagCandidateName, ValidName},
	{TagCandidatePhone, ValidPhone},
	{TagCandidateEmail, ValidEmail},
}

type rule struct {
	tag string
	fn  validator.Func
}

// New returns a validator with the candidate rules registered. It panics if a
// rule cannot be registered, which only happens on a programming error.
func New() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) error {
	return register(v, candidateRules)
}

func register(v *validator.Validate, rules []rule) error {
	for _, r := range rules {
		if err := v.RegisterValidation(r.tag, r.fn); err != nil {
			return fmt.Errorf("register validation %q: %w", r.tag, err)
		}
	}
	return nil
}

// ValidName accepts letters and spaces. Length bounds are left to min/max tags.
func ValidName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

func ValidPhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func ValidEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}
