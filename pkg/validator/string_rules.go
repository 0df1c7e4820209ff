package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NonEmptyText validates that a string is not empty after trimming whitespace.
func NonEmptyText(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Kind:           ErrEmptyField,
			Field:          field,
			Message:        "cannot be empty",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// LengthRange validates that a string has between min and max characters, inclusive.
// Length is counted in runes, not bytes.
func LengthRange(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Kind:           ErrLengthOutOfRange,
			Field:          field,
			Message:        fmt.Sprintf("must be %d-%d characters", min, max),
			TranslationKey: "validation.length_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// Text is the usual pair for bounded required strings: non-blank, then length.
func Text(field, value string, min, max int) []Rule {
	return []Rule{
		NonEmptyText(field, value),
		LengthRange(field, value, min, max),
	}
}
