package resume

import (
	"strings"

	"github.com/dmitrymomot/resumekit/pkg/validator"
)

const (
	minContactMethods  = 1
	minWorkExperiences = 1
	minOptionalItems   = 1
	maxSummaryLength   = 500
)

// Validate checks the whole document and returns the first violation found,
// as a validator.ValidationError, or nil.
//
// Order: top-level text fields, collection sizes, then every nested entity
// in field order (contact methods, work experiences, education, skill
// categories, languages, hobbies) and finally soft skills.
func Validate(doc Document) error {
	return validator.Chain(
		func() error { return validateRequiredFields(doc) },
		func() error { return validateCollections(doc) },
		func() error { return validator.Each(doc.ContactMethods, skipIndex(ValidateContactMethod)) },
		func() error { return validator.Each(doc.WorkExperiences, skipIndex(ValidateWorkExperience)) },
		func() error { return validator.Each(doc.EducationHistory, skipIndex(ValidateEducation)) },
		func() error { return validator.Each(doc.SkillCategories, skipIndex(ValidateSkillCategory)) },
		func() error { return validator.Each(doc.Languages, skipIndex(ValidateLanguage)) },
		func() error { return validator.Each(doc.Hobbies, skipIndex(ValidateHobby)) },
		func() error { return ValidateSoftSkills(doc.SoftSkills) },
	)
}

func validateRequiredFields(doc Document) error {
	rules := concat(
		validator.Text("Full name", doc.FullName, 2, 100),
		validator.Text("Professional title", doc.ProfessionalTitle, 5, 100),
	)
	if doc.ProfessionalSummary != nil {
		rules = append(rules, validator.Text("Professional summary", *doc.ProfessionalSummary, 10, maxSummaryLength)...)
	}
	return validator.First(rules...)
}

func validateCollections(doc Document) error {
	rules := []validator.Rule{
		validator.MinItems("Contact methods", doc.ContactMethods, minContactMethods),
		validator.MinItems("Work experiences", doc.WorkExperiences, minWorkExperiences),
	}
	// Optional collections: an empty list is valid. The minimum only
	// applies to a non-empty list, where it always holds.
	if len(doc.EducationHistory) > 0 {
		rules = append(rules, validator.MinItems("Education history", doc.EducationHistory, minOptionalItems))
	}
	if len(doc.Languages) > 0 {
		rules = append(rules, validator.MinItems("Languages", doc.Languages, minOptionalItems))
	}
	return validator.First(rules...)
}

func skipIndex[T any](fn func(T) error) func(int, T) error {
	return func(_ int, v T) error { return fn(v) }
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
