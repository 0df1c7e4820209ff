package validator

// Present validates that a value is not the zero value of its type.
// Use it for enums and other values where "absent" is represented by zero.
func Present[T comparable](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			var zero T
			return value != zero
		},
		Error: ValidationError{
			Kind:           ErrMissingField,
			Field:          field,
			Message:        "cannot be null",
			TranslationKey: "validation.missing",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
