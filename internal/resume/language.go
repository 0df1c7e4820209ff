package resume

import "github.com/dmitrymomot/resumekit/pkg/validator"

// ValidateLanguage checks the language name and requires a proficiency.
func ValidateLanguage(l Language) error {
	rules := validator.Text("Language name", l.Language, 2, 30)
	rules = append(rules, validator.Present("Language proficiency", l.Proficiency))
	return validator.First(rules...)
}
