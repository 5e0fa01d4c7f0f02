package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		eventNames: make(map[EventType]string),
	}
}

// Init validates the graph and enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.activeID = m.initialID
	m.started = true
	m.enter(ctx, m.nodes[m.initialID], nil)
	return nil
}

// HandleEvent routes an event through the active state
// Returns true if the event triggered a transition. Events the active state
// does not handle are ignored and return false
func (m *Machine[T]) HandleEvent(ctx T, ev EventType, arg any) bool {
	if !m.started {
		return false
	}

	node := m.nodes[m.activeID]
	for _, trans := range node.Transitions {
		if trans.Event != ev {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx, arg) {
			continue
		}

		if trans.TargetID != StateNone && trans.TargetID != m.activeID {
			m.transition(ctx, trans.TargetID, arg)
		}
		if trans.Action != nil {
			trans.Action(ctx, arg)
		}
		return true
	}

	return false
}

// transition performs a state change. The active state is updated before
// entry actions run so actions observe the new state and may re-enter
func (m *Machine[T]) transition(ctx T, targetID StateID, arg any) {
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	current := m.nodes[m.activeID]
	for _, action := range current.OnExit {
		action(ctx, arg)
	}

	m.activeID = targetID
	m.enter(ctx, target, arg)
}

func (m *Machine[T]) enter(ctx T, node *Node[T], arg any) {
	for _, action := range node.OnEnter {
		action(ctx, arg)
	}
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.started {
		for _, action := range m.nodes[m.activeID].OnExit {
			action(ctx, nil)
		}
	}
	m.started = false
	return m.Init(ctx)
}

// Current returns the active state ID, StateNone before Init
func (m *Machine[T]) Current() StateID {
	if !m.started {
		return StateNone
	}
	return m.activeID
}

// CurrentName returns the active state name
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.Current()]; ok {
		return node.Name
	}
	return ""
}

// EventName returns the registered name of an event type
func (m *Machine[T]) EventName(ev EventType) string {
	if name, ok := m.eventNames[ev]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(ev))
}
