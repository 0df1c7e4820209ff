package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resumekit/pkg/validator"
)

func TestNonEmptyText(t *testing.T) {
	t.Parallel()

	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.NonEmptyText("Full name", "Jane")
		assert.True(t, rule.Check())
		assert.Equal(t, "Full name", rule.Error.Field)
		assert.Equal(t, validator.ErrEmptyField, rule.Error.Kind)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "Full name"}, rule.Error.TranslationValues)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, validator.NonEmptyText("x", "").Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.NonEmptyText("x", " \t\n ").Check())
	})
}

func TestLengthRange(t *testing.T) {
	t.Parallel()

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, validator.LengthRange("x", "Jo", 2, 5).Check())
		assert.True(t, validator.LengthRange("x", "Jones", 2, 5).Check())
	})

	t.Run("fails below minimum", func(t *testing.T) {
		rule := validator.LengthRange("Full name", "J", 2, 100)
		assert.False(t, rule.Check())
		assert.Equal(t, validator.ErrLengthOutOfRange, rule.Error.Kind)
		assert.Equal(t, "must be 2-100 characters", rule.Error.Message)
	})

	t.Run("fails above maximum", func(t *testing.T) {
		assert.False(t, validator.LengthRange("x", strings.Repeat("a", 101), 2, 100).Check())
	})

	t.Run("counts runes rather than bytes", func(t *testing.T) {
		// "Zoë" is 3 runes and 4 bytes.
		assert.True(t, validator.LengthRange("x", "Zoë", 2, 3).Check())
	})
}

func TestText(t *testing.T) {
	t.Parallel()

	rules := validator.Text("Professional title", "", 5, 100)
	assert.Len(t, rules, 2)

	err := validator.First(rules...)
	assert.ErrorIs(t, err, validator.ErrEmptyField)

	err = validator.First(validator.Text("Professional title", "Eng", 5, 100)...)
	assert.ErrorIs(t, err, validator.ErrLengthOutOfRange)
}
