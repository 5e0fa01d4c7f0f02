package fsm

// StateID is a unique identifier for a state node
type StateID int

// StateNone as a transition target marks an internal transition: the
// action runs and the machine stays where it is
const StateNone StateID = 0

// EventType identifies an input to the machine
type EventType int

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards (e.g., *engine.RoundController)
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes     map[StateID]*Node[T]
	initialID StateID

	// Runtime state
	activeID StateID
	started  bool

	// Names for events, used only by String helpers and logs
	eventNames map[EventType]string
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order; first match wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Event    EventType
	TargetID StateID       // StateNone = internal transition
	Guard    GuardFunc[T]  // nil = always true
	Action   ActionFunc[T] // runs after the target state has been entered
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, arg any) bool

// ActionFunc executes a side effect. arg is the payload passed to HandleEvent
type ActionFunc[T any] func(ctx T, arg any)
