package resume

import "github.com/dmitrymomot/resumekit/pkg/validator"

const (
	maxSkillsPerCategory = 15
	maxSoftSkills        = 10
)

// bannedSoftSkillTerms are rejected anywhere inside a soft skill, case-insensitively.
var bannedSoftSkillTerms = []string{
	"ninja",
	"rockstar",
	"guru",
	"wizard",
	"passionate about synergies",
}

// ValidateSkillCategory checks the category name and its skills: 1-15 items,
// each 2-30 characters, no case-insensitive duplicates.
func ValidateSkillCategory(c SkillCategory) error {
	return validator.Chain(
		func() error {
			return validator.First(concat(
				validator.Text("Skill category name", c.CategoryName, 2, 30),
				[]validator.Rule{validator.SizeRange("Skills list", c.Skills, 1, maxSkillsPerCategory)},
			)...)
		},
		func() error {
			return validator.Each(c.Skills, func(_ int, s string) error {
				return validator.First(validator.Text("Technical skill", s, 2, 30)...)
			})
		},
		func() error { return validator.First(validator.UniqueFold("Skills list", c.Skills)) },
	)
}

// ValidateSoftSkills checks an optional soft-skills list. A nil or empty list
// is valid. Otherwise the list holds at most 10 items, each 3-30 characters
// and free of banned buzzwords, with no case-insensitive duplicates.
func ValidateSoftSkills(skills []string) error {
	if len(skills) == 0 {
		return nil
	}
	return validator.Chain(
		func() error { return validator.First(validator.MaxItems("Soft skills", skills, maxSoftSkills)) },
		func() error {
			return validator.Each(skills, func(_ int, s string) error {
				rules := validator.Text("Soft skill", s, 3, 30)
				rules = append(rules, validator.NoBannedTerm("Soft skill", s, bannedSoftSkillTerms))
				return validator.First(rules...)
			})
		},
		func() error { return validator.First(validator.UniqueFold("Soft skills", skills)) },
	)
}
