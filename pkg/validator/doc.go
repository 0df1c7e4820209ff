// Package validator provides small, composable validation rules used to
// enforce field-level invariants on structured documents.
//
// Every exported rule constructor returns a Rule value that pairs a lazily
// evaluated Check function with a ValidationError describing the violation.
// The error carries a Kind (one of the sentinel errors such as
// ErrLengthOutOfRange or ErrDuplicateItem), the human-readable field name, a
// message, and a translation key with values for callers that render messages
// themselves.
//
// # Evaluation
//
// First evaluates rules in order and returns the first violation. Later
// rules are not checked.
//
// Chain and Each compose First across nested entities while keeping the
// first-error-wins behaviour:
//
//	err := validator.Chain(
//	    func() error { return validator.First(validator.Text("Full name", name, 2, 100)...) },
//	    func() error {
//	        return validator.Each(items, func(_ int, it Item) error { return validateItem(it) })
//	    },
//	)
//
// # Error Handling
//
// ValidationError unwraps to its Kind, so errors.Is works on the result:
//
//	if errors.Is(err, validator.ErrDateOrderViolation) {
//	    // ...
//	}
//
// ExtractValidationError pulls the concrete error back out of a wrapped chain.
//
// # Concurrency
//
// The package holds no mutable state. Rules can be built and evaluated
// concurrently on independent values.
package validator
