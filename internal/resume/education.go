package resume

import "github.com/dmitrymomot/resumekit/pkg/validator"

// ValidateEducation checks institution, degree, optional field of study and dates.
func ValidateEducation(e Education) error {
	rules := concat(
		validator.Text("Institution name", e.InstitutionName, 2, 100),
		validator.Text("Degree", e.Degree, 2, 50),
	)
	if e.FieldOfStudy != nil {
		rules = append(rules, validator.Text("Field of study", *e.FieldOfStudy, 2, 50)...)
	}
	return validator.Chain(
		func() error { return validator.First(rules...) },
		func() error { return validateDateRange(e.StartDate, e.EndDate, e.InstitutionName) },
	)
}
