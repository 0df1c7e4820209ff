// Package resume holds the resume document model and the business rules
// that decide whether a document may be rendered.
//
// A run moves a document through three forms: the decoded input (a Document
// as produced by an input source), the mapped domain Document returned by
// Map, and the render-ready Output produced by ToOutput after Validate
// succeeds. Each step copies; no form shares memory with another.
//
// Validation is fail-fast. Each ValidateX function stops at the first broken
// rule and Validate stops at the first failing entity. The error is a
// validator.ValidationError whose Kind identifies the violation:
//
//	if err := resume.Validate(doc); err != nil {
//	    ve, _ := validator.ExtractValidationError(err)
//	    log.Printf("%s: %s", ve.Field, ve.Message)
//	}
//
// All functions are pure and safe for concurrent use on independent documents.
package resume
