package fsm

import "fmt"

// AddState adds a node; re-adding an ID replaces it
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	return node
}

// Enter appends entry actions
func (n *Node[T]) Enter(fns ...ActionFunc[T]) *Node[T] {
	n.OnEnter = append(n.OnEnter, fns...)
	return n
}

// Update appends per-frame actions
func (n *Node[T]) Update(fns ...UpdateFunc[T]) *Node[T] {
	n.OnUpdate = append(n.OnUpdate, fns...)
	return n
}

// Exit appends exit actions
func (n *Node[T]) Exit(fns ...ActionFunc[T]) *Node[T] {
	n.OnExit = append(n.OnExit, fns...)
	return n
}

// AddTransition adds an edge from sourceID
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrUnknownState, sourceID)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("%w: target %d", ErrUnknownState, t.TargetID)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}
