package resume

import "github.com/dmitrymomot/resumekit/pkg/validator"

const (
	maxAchievements      = 10
	minAchievementLength = 10
	maxAchievementLength = 500
)

// ValidateWorkExperience checks names, dates, date order and achievements.
func ValidateWorkExperience(w WorkExperience) error {
	return validator.Chain(
		func() error {
			return validator.First(concat(
				validator.Text("Company name", w.CompanyName, 2, 100),
				validator.Text("Job title", w.JobTitle, 2, 100),
			)...)
		},
		func() error { return validateDateRange(w.StartDate, w.EndDate, w.CompanyName) },
		func() error {
			return validator.First(validator.SizeRange("Key achievements", w.KeyAchievements, 1, maxAchievements))
		},
		func() error {
			return validator.Each(w.KeyAchievements, func(_ int, a string) error {
				return validator.First(validator.Text("Achievement", a, minAchievementLength, maxAchievementLength)...)
			})
		},
	)
}

// validateDateRange requires a valid start date and, when end is set, a
// valid end date that is not before start.
func validateDateRange(start string, end *string, subject string) error {
	rules := []validator.Rule{
		validator.NonEmptyText("Start date", start),
		validator.YearMonth("Start date", start),
	}
	if end != nil {
		rules = append(rules,
			validator.YearMonth("End date", *end),
			validator.YearMonthNotBefore("End date", start, *end, subject),
		)
	}
	return validator.First(rules...)
}

func concat(groups ...[]validator.Rule) []validator.Rule {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]validator.Rule, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
