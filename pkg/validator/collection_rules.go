package validator

import (
	"fmt"

	"golang.org/x/text/cases"
)

// SizeRange validates that a slice has between min and max items, inclusive.
// A nil slice counts as empty: it fails a positive minimum and always
// satisfies the maximum.
func SizeRange[T any](field string, value []T, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := len(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Kind:           ErrCollectionSizeViolation,
			Field:          field,
			Message:        fmt.Sprintf("must have %d-%d items (found %d)", min, max, len(value)),
			TranslationKey: "validation.items_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
				"count": len(value),
			},
		},
	}
}

// MinItems validates that a slice has at least min items.
func MinItems[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Kind:           ErrCollectionSizeViolation,
			Field:          field,
			Message:        fmt.Sprintf("must have at least %d items", min),
			TranslationKey: "validation.min_items",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxItems validates that a slice has at most max items.
func MaxItems[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Kind:           ErrCollectionSizeViolation,
			Field:          field,
			Message:        fmt.Sprintf("cannot exceed %d items (found %d)", max, len(value)),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
				"count": len(value),
			},
		},
	}
}

// UniqueFold validates that no two strings are equal under Unicode case folding.
func UniqueFold(field string, value []string) Rule {
	dup, found := firstFoldDuplicate(value)
	return Rule{
		Check: func() bool {
			return !found
		},
		Error: ValidationError{
			Kind:           ErrDuplicateItem,
			Field:          field,
			Message:        fmt.Sprintf("duplicate item %q detected", dup),
			TranslationKey: "validation.unique",
			TranslationValues: map[string]any{
				"field": field,
				"item":  dup,
			},
		},
	}
}

func firstFoldDuplicate(values []string) (string, bool) {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		key := fold.String(v)
		if _, ok := seen[key]; ok {
			return v, true
		}
		seen[key] = struct{}{}
	}
	return "", false
}
