package validator

import (
	"fmt"
	"regexp"
	"time"
)

// YearMonthLayout is the reference layout for year-month values.
const YearMonthLayout = "2006-01"

var yearMonthShape = regexp.MustCompile(`^\d{4}-\d{2}$`)

// YearMonth validates a YYYY-MM value: the shape must be four digits, a dash
// and two digits, and the value must parse as a real calendar month.
func YearMonth(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !yearMonthShape.MatchString(value) {
				return false
			}
			_, err := time.Parse(YearMonthLayout, value)
			return err == nil
		},
		Error: ValidationError{
			Kind:           ErrInvalidDateFormat,
			Field:          field,
			Message:        fmt.Sprintf("must be in YYYY-MM format, got %q", value),
			TranslationKey: "validation.year_month",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// YearMonthNotBefore validates that end is not earlier than start.
// Both values are expected to have passed YearMonth already, so a plain
// string comparison orders them correctly. subject names the entity in the
// message (a company or an institution).
func YearMonthNotBefore(field, start, end, subject string) Rule {
	return Rule{
		Check: func() bool {
			return end >= start
		},
		Error: ValidationError{
			Kind:           ErrDateOrderViolation,
			Field:          field,
			Message:        fmt.Sprintf("invalid date range at %s: end date (%s) before start (%s)", subject, end, start),
			TranslationKey: "validation.date_order",
			TranslationValues: map[string]any{
				"field":   field,
				"subject": subject,
				"start":   start,
				"end":     end,
			},
		},
	}
}
