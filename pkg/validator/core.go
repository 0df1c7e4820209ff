package validator

import (
	"errors"
	"fmt"
)

// ValidationError represents a single rule violation.
// Kind is one of the sentinel errors declared in errors.go and is exposed
// through Unwrap, so callers can use errors.Is(err, validator.ErrDuplicateItem).
type ValidationError struct {
	Kind              error
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	if e.Kind == nil {
		return ErrValidationFailed
	}
	return e.Kind
}

// Rule represents a single validation rule.
// Check is evaluated lazily, which lets First stop before later rules run.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// First evaluates rules in order and returns the first violation as a
// ValidationError, or nil when every rule passes.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// Chain runs validation steps in order and returns the first non-nil error.
// Steps are typically closures around First for nested entities.
func Chain(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Each runs fn for every item and stops at the first error.
func Each[T any](items []T, fn func(int, T) error) error {
	for i, item := range items {
		if err := fn(i, item); err != nil {
			return err
		}
	}
	return nil
}

// ExtractValidationError returns the ValidationError found in err's chain.
func ExtractValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if err != nil && errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}
