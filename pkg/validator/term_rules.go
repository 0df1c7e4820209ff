package validator

import (
	"fmt"
	"strings"
)

// NoBannedTerm validates that the lowercase form of value contains none of terms.
// Terms are expected in lowercase.
func NoBannedTerm(field, value string, terms []string) Rule {
	var hit string
	lower := strings.ToLower(value)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hit = term
			break
		}
	}
	return Rule{
		Check: func() bool {
			return hit == ""
		},
		Error: ValidationError{
			Kind:           ErrBannedTerm,
			Field:          field,
			Message:        fmt.Sprintf("unprofessional term '%s' in %q", hit, value),
			TranslationKey: "validation.banned_term",
			TranslationValues: map[string]any{
				"field": field,
				"term":  hit,
				"value": value,
			},
		},
	}
}
