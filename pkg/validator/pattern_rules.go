package validator

import (
	"fmt"
	"regexp"
)

// Pattern names a predefined format pattern.
type Pattern string

const (
	PatternEmail Pattern = "EMAIL"
	PatternPhone Pattern = "PHONE"
	PatternURL   Pattern = "URL"
)

var patterns = map[Pattern]*regexp.Regexp{
	PatternEmail: regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`),
	PatternPhone: regexp.MustCompile(`^[+\d\s()-]{8,20}$`),
	PatternURL:   regexp.MustCompile(`^(https?|ftp)://[^\s/$.?#].[^\s]*$`),
}

// Matches validates value against a predefined pattern.
// An unknown pattern name never matches.
func Matches(field, value string, pattern Pattern) Rule {
	re, known := patterns[pattern]
	return Rule{
		Check: func() bool {
			return known && re.MatchString(value)
		},
		Error: ValidationError{
			Kind:           ErrPatternMismatch,
			Field:          field,
			Message:        fmt.Sprintf("invalid %s format", pattern),
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": string(pattern),
			},
		},
	}
}
