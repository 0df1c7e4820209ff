package resume

import "errors"

var (
	// ErrUnknownContactType is returned by Map when a contact type name is not a known ContactType.
	ErrUnknownContactType = errors.New("unknown contact type")

	// ErrUnknownProficiency is returned by Map when a proficiency name is not a known Proficiency.
	ErrUnknownProficiency = errors.New("unknown language proficiency")
)
