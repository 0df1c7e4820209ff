package resume

import "github.com/dmitrymomot/resumekit/pkg/validator"

const (
	minHobbyDescription = 10
	maxHobbyDescription = 150
)

// ValidateHobby checks the hobby name and, when present and not blank, its description.
// A blank description is treated as absent.
func ValidateHobby(h Hobby) error {
	rules := validator.Text("Hobby name", h.Name, 2, 30)
	if h.Description != nil && !isBlank(*h.Description) {
		rules = append(rules, validator.LengthRange("Hobby description", *h.Description, minHobbyDescription, maxHobbyDescription))
	}
	return validator.First(rules...)
}
