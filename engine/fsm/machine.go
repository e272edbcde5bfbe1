package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the initial state, running its entry actions
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	if _, ok := m.nodes[initialID]; !ok {
		return fmt.Errorf("%w: initial %d", ErrUnknownState, initialID)
	}
	m.activeStateID = StateNone
	return m.transition(ctx, initialID)
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// StateName returns the name of id, empty if unknown
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// Request fires the current->target edge registered for event
// Tick edges, missing edges and failing guards are rejected with ErrInvalidTransition
func (m *Machine[T]) Request(ctx T, event EventType, targetID StateID) error {
	if m.activeStateID == StateNone {
		return ErrNotStarted
	}
	if m.transitioning {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionInProgress, m.StateName(m.activeStateID), m.StateName(targetID))
	}
	if event == EventTick {
		return fmt.Errorf("%w: %s -> %s is tick driven", ErrInvalidTransition, m.StateName(m.activeStateID), m.StateName(targetID))
	}
	for _, t := range m.nodes[m.activeStateID].Transitions {
		if t.Event != event || t.TargetID != targetID {
			continue
		}
		if t.Guard != nil && !t.Guard(ctx) {
			return fmt.Errorf("%w: %s -> %s guard not satisfied", ErrInvalidTransition, m.StateName(m.activeStateID), m.StateName(targetID))
		}
		return m.transition(ctx, targetID)
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.StateName(m.activeStateID), m.StateName(targetID))
}

// Update runs the active state's per-frame actions then evaluates tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone || m.transitioning {
		return
	}
	active := m.activeStateID
	node := m.nodes[active]
	for _, fn := range node.OnUpdate {
		fn(ctx, dt)
		// An update action may have requested a transition
		if m.activeStateID != active {
			return
		}
	}

	m.fire(ctx, EventTick)
}

func (m *Machine[T]) fire(ctx T, event EventType) bool {
	node := m.nodes[m.activeStateID]
	for _, t := range node.Transitions {
		if t.Event != event {
			continue
		}
		if t.Guard == nil || t.Guard(ctx) {
			_ = m.transition(ctx, t.TargetID)
			return true
		}
	}
	return false
}

// transition runs exit of the current state then entry of the target
func (m *Machine[T]) transition(ctx T, targetID StateID) error {
	target, ok := m.nodes[targetID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownState, targetID)
	}

	m.transitioning = true
	defer func() { m.transitioning = false }()

	from := m.activeStateID
	if current, ok := m.nodes[from]; ok {
		for _, fn := range current.OnExit {
			fn(ctx)
		}
	}

	m.activeStateID = targetID

	for _, fn := range target.OnEnter {
		fn(ctx)
	}

	if m.OnTransition != nil {
		m.OnTransition(from, targetID)
	}
	return nil
}
