package validator

import "errors"

// Violation kinds. Every ValidationError unwraps to exactly one of them.
var (
	// ErrValidationFailed is returned when validation fails but no specific kind is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingField is returned when a required value is absent.
	ErrMissingField = errors.New("missing field")

	// ErrEmptyField is returned when a required text value is empty or blank.
	ErrEmptyField = errors.New("empty field")

	// ErrLengthOutOfRange is returned when a text value is shorter or longer than allowed.
	ErrLengthOutOfRange = errors.New("length out of range")

	// ErrInvalidDateFormat is returned when a year-month value is malformed or not a real month.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrDateOrderViolation is returned when an end date precedes its start date.
	ErrDateOrderViolation = errors.New("date order violation")

	// ErrPatternMismatch is returned when a value does not match its format pattern.
	ErrPatternMismatch = errors.New("pattern mismatch")

	// ErrCollectionSizeViolation is returned when a list has too few or too many items.
	ErrCollectionSizeViolation = errors.New("collection size violation")

	// ErrDuplicateItem is returned when a list that requires unique items has a case-insensitive duplicate.
	ErrDuplicateItem = errors.New("duplicate item")

	// ErrBannedTerm is returned when a value contains a disallowed term.
	ErrBannedTerm = errors.New("banned term")
)

// KindName returns a stable snake_case name for a violation kind, suitable for
// API payloads and log attributes.
func KindName(kind error) string {
	switch {
	case errors.Is(kind, ErrMissingField):
		return "missing_field"
	case errors.Is(kind, ErrEmptyField):
		return "empty_field"
	case errors.Is(kind, ErrLengthOutOfRange):
		return "length_out_of_range"
	case errors.Is(kind, ErrInvalidDateFormat):
		return "invalid_date_format"
	case errors.Is(kind, ErrDateOrderViolation):
		return "date_order_violation"
	case errors.Is(kind, ErrPatternMismatch):
		return "pattern_mismatch"
	case errors.Is(kind, ErrCollectionSizeViolation):
		return "collection_size_violation"
	case errors.Is(kind, ErrDuplicateItem):
		return "duplicate_item"
	case errors.Is(kind, ErrBannedTerm):
		return "banned_term"
	default:
		return "validation_failed"
	}
}
