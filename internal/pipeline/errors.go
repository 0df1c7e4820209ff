package pipeline

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/resumekit/pkg/validator"
)

// Stage-level failure classes. Every *Error unwraps to exactly one of them.
var (
	ErrInputAcquisition = errors.New("input acquisition failure")
	ErrValidation       = errors.New("validation failure")
	ErrOutput           = errors.New("output failure")
)

// Machine errors.
var (
	ErrNoTransition = errors.New("no transition available")
	ErrNoRenderer   = errors.New("pipeline has no renderer")
)

// Stage names the step of a run that failed.
type Stage string

const (
	StageInput      Stage = "input"
	StageValidation Stage = "validation"
	StageOutput     Stage = "output"
)

func (s Stage) sentinel() error {
	switch s {
	case StageInput:
		return ErrInputAcquisition
	case StageValidation:
		return ErrValidation
	default:
		return ErrOutput
	}
}

// Error is the single outward failure of a run. Field and Kind are set when
// the cause is a validation error.
type Error struct {
	Stage Stage
	Field string
	Kind  string
	Cause error
}

func newError(stage Stage, cause error) *Error {
	e := &Error{Stage: stage, Cause: cause}
	if ve, ok := validator.ExtractValidationError(cause); ok {
		e.Field = ve.Field
		e.Kind = validator.KindName(ve.Kind)
	}
	return e
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Stage.sentinel().Error()
	}
	return fmt.Sprintf("%s: %s", e.Stage.sentinel(), e.Cause)
}

// Unwrap exposes both the stage sentinel and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Stage.sentinel()}
	}
	return []error{e.Stage.sentinel(), e.Cause}
}

// AsError returns the *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// TransitionError reports an event fired in a state that does not accept it.
type TransitionError struct {
	From  State
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.From, e.Event)
}

func (e *TransitionError) Unwrap() error {
	return ErrNoTransition
}
