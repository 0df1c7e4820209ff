package resume

import "fmt"

// Map turns a freshly decoded document into a domain document.
// Every field is copied one to one. Enum names must be known members of
// their type; an empty name is passed through unchanged so that validation
// can report it as a missing field. No other coercion or defaulting happens.
func Map(raw Document) (Document, error) {
	for i, c := range raw.ContactMethods {
		if c.Type != "" && !c.Type.Valid() {
			return Document{}, fmt.Errorf("%w: %q at contactMethods[%d]", ErrUnknownContactType, c.Type, i)
		}
	}
	for i, l := range raw.Languages {
		if l.Proficiency != "" && !l.Proficiency.Valid() {
			return Document{}, fmt.Errorf("%w: %q at languages[%d]", ErrUnknownProficiency, l.Proficiency, i)
		}
	}
	return raw.Clone(), nil
}
