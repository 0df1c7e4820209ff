package pipeline

import (
	"context"
	"sync"
)

// State is a run's position in the construction pipeline.
type State string

const (
	StateAwaitingInput State = "awaiting_input"
	StateMapped        State = "mapped"
	StateValidated     State = "validated"
	StateRendered      State = "rendered"
	StateFailed        State = "failed"
)

// Terminal reports whether no further events are accepted.
func (s State) Terminal() bool {
	return s == StateRendered || s == StateFailed
}

// Event drives a transition.
type Event string

const (
	EventMapped    Event = "mapped"
	EventValidated Event = "validated"
	EventRendered  Event = "rendered"
	EventFailed    Event = "failed"
)

// TransitionHook observes a completed transition.
type TransitionHook func(ctx context.Context, from, to State, event Event)

// Machine tracks one run. Transitions are fixed:
//
//	awaiting_input -mapped->    mapped
//	mapped         -validated-> validated
//	validated      -rendered->  rendered
//	any non-terminal -failed->  failed
type Machine struct {
	mu          sync.RWMutex
	current     State
	transitions map[State]map[Event]State
	failure     *Error
	hooks       []TransitionHook
}

func NewMachine(hooks ...TransitionHook) *Machine {
	m := &Machine{
		current:     StateAwaitingInput,
		transitions: make(map[State]map[Event]State),
	}
	m.add(StateAwaitingInput, EventMapped, StateMapped)
	m.add(StateMapped, EventValidated, StateValidated)
	m.add(StateValidated, EventRendered, StateRendered)
	for _, from := range []State{StateAwaitingInput, StateMapped, StateValidated} {
		m.add(from, EventFailed, StateFailed)
	}
	for _, h := range hooks {
		if h != nil {
			m.hooks = append(m.hooks, h)
		}
	}
	return m
}

func (m *Machine) add(from State, event Event, to State) {
	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[Event]State)
	}
	m.transitions[from][event] = to
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Failure returns the error recorded by Fail, or nil.
func (m *Machine) Failure() *Error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failure
}

// Fire applies event to the current state.
func (m *Machine) Fire(ctx context.Context, event Event) error {
	return m.fire(ctx, event, nil)
}

// Fail moves the machine to StateFailed and records err.
func (m *Machine) Fail(ctx context.Context, err *Error) error {
	return m.fire(ctx, EventFailed, err)
}

func (m *Machine) fire(ctx context.Context, event Event, failure *Error) error {
	m.mu.Lock()
	from := m.current
	to, ok := m.transitions[from][event]
	if !ok {
		m.mu.Unlock()
		return &TransitionError{From: from, Event: event}
	}
	m.current = to
	if failure != nil {
		m.failure = failure
	}
	hooks := m.hooks
	m.mu.Unlock()

	for _, h := range hooks {
		h(ctx, from, to, event)
	}
	return nil
}
