// Package fsm is a flat, table-driven finite state machine
// Each state carries OnEnter/OnUpdate/OnExit action lists; transitions are a fixed edge table
package fsm

import (
	"errors"
	"time"
)

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// EventType selects which transitions an event may fire
type EventType int

// EventTick is evaluated on every Update; other values are fired through Request
const EventTick EventType = 0

var (
	// ErrInvalidTransition is returned for a request that is not in the edge table
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrTransitionInProgress is returned for a request issued from inside enter/exit actions
	ErrTransitionInProgress = errors.New("transition in progress")
	// ErrUnknownState is returned when an ID was never added
	ErrUnknownState = errors.New("unknown state")
	// ErrNotStarted is returned before Init
	ErrNotStarted = errors.New("machine not started")
)

// Machine is the runtime; T is the context passed to actions and guards
type Machine[T any] struct {
	nodes map[StateID]*Node[T]

	activeStateID StateID
	transitioning bool

	// OnTransition observes every completed transition (logging, metrics)
	OnTransition func(from, to StateID)
}

// Node represents one state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []UpdateFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines an allowed edge
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // EventTick = evaluated each Update
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes an entry or exit side effect
type ActionFunc[T any] func(ctx T)

// UpdateFunc executes the per-frame duty of a state
type UpdateFunc[T any] func(ctx T, dt time.Duration)
