package resume

import "github.com/dmitrymomot/resumekit/pkg/validator"

var contactPatterns = map[ContactType]validator.Pattern{
	ContactEmail:     validator.PatternEmail,
	ContactPhone:     validator.PatternPhone,
	ContactLinkedIn:  validator.PatternURL,
	ContactGitHub:    validator.PatternURL,
	ContactPortfolio: validator.PatternURL,
}

var contactFieldNames = map[ContactType]string{
	ContactEmail:     "Email address",
	ContactPhone:     "Phone number",
	ContactLinkedIn:  "LinkedIn URL",
	ContactGitHub:    "GitHub URL",
	ContactPortfolio: "Portfolio URL",
	ContactCity:      "City",
	ContactCountry:   "Country",
}

// ValidateContactMethod checks a contact method. The value rule depends on
// the type: EMAIL, PHONE and the profile URLs must match their pattern, CITY
// and COUNTRY are free text of 2-50 characters, and every other type is free
// text of 3-200 characters.
func ValidateContactMethod(c ContactMethod) error {
	if err := validator.First(validator.Present("Contact type", c.Type)); err != nil {
		return err
	}

	field, ok := contactFieldNames[c.Type]
	if !ok {
		field = string(c.Type)
	}

	if c.Type == ContactCity || c.Type == ContactCountry {
		return validator.First(validator.Text(field, c.Value, 2, 50)...)
	}

	rules := validator.Text(field, c.Value, 3, 200)
	if pattern, ok := contactPatterns[c.Type]; ok {
		rules = append(rules, validator.Matches(field, c.Value, pattern))
	}
	return validator.First(rules...)
}
