package fsm

import "fmt"

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// OnEnter appends entry actions to a node
func (m *Machine[T]) OnEnter(id StateID, actions ...ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, actions...)
	}
}

// OnExit appends exit actions to a node
func (m *Machine[T]) OnExit(id StateID, actions ...ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, actions...)
	}
}

// NameEvent registers a display name for an event type
func (m *Machine[T]) NameEvent(ev EventType, name string) {
	m.eventNames[ev] = name
}

// SetInitial selects the state entered by Init and Reset
func (m *Machine[T]) SetInitial(id StateID) {
	m.initialID = id
}

// Validate checks that every transition targets a known state
// Must be called after all nodes are added and before Init
func (m *Machine[T]) Validate() error {
	if _, ok := m.nodes[m.initialID]; !ok {
		return fmt.Errorf("initial state ID %d not found", m.initialID)
	}
	for id, node := range m.nodes {
		for i, trans := range node.Transitions {
			if trans.TargetID == StateNone {
				if trans.Action == nil {
					return fmt.Errorf("state '%s' (%d): internal transition %d has no action", node.Name, id, i)
				}
				continue
			}
			if _, ok := m.nodes[trans.TargetID]; !ok {
				return fmt.Errorf("state '%s' (%d): transition %d targets missing state %d", node.Name, id, i, trans.TargetID)
			}
		}
	}
	return nil
}
