// Package fsm is a small hierarchical finite state machine
// Nodes form a tree under Root; transitions bubble from the active leaf toward Root,
// and a state change runs OnExit up to the lowest common ancestor then OnEnter down to the target
package fsm

import (
	"time"

	"github.com/lixenwraith/gesture-arcade/events"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic hierarchical state machine runtime
// T is the context type passed to actions and guards
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration
	activePath    []StateID // Root -> ... -> Leaf
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Path from Root to this node, filled by CompilePaths
	Path []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    events.EventType // EventNone = evaluated every tick
	Guard    GuardFunc[T]     // nil = always true
}

// Action represents a side effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)
