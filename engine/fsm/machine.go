package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/gesture-arcade/events"
)

// NewMachine creates an empty machine with a Root node
func NewMachine[T any]() *Machine[T] {
	m := &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		activePath: make([]StateID, 0, 4),
	}
	m.AddState(StateRoot, "Root", StateNone)
	return m
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("state %q has no path, CompilePaths not called", node.Name)
	}

	m.activeStateID = node.ID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		m.run(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances time in state, runs the leaf's OnUpdate, then evaluates tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt
	m.run(ctx, m.nodes[m.activeStateID].OnUpdate)
	m.fire(ctx, events.EventNone)
}

// HandleEvent routes an event from the leaf toward Root
// Returns true if it triggered a transition; inapplicable events are a no-op
func (m *Machine[T]) HandleEvent(ctx T, eventType events.EventType) bool {
	if m.activeStateID == StateNone || eventType == events.EventNone {
		return false
	}
	return m.fire(ctx, eventType)
}

func (m *Machine[T]) fire(ctx T, eventType events.EventType) bool {
	for currID := m.activeStateID; currID != StateNone; {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition exits up to the lowest common ancestor and enters down to the target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state ID %d", targetID))
	}

	lca := -1
	for i := 0; i < min(len(m.activePath), len(target.Path)); i++ {
		if m.activePath[i] != target.Path[i] {
			break
		}
		lca = i
	}

	for i := len(m.activePath) - 1; i > lca; i-- {
		m.run(ctx, m.nodes[m.activePath[i]].OnExit)
	}

	// State is committed before OnEnter so entry actions observe the new leaf
	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], target.Path...)

	for i := lca + 1; i < len(target.Path); i++ {
		m.run(ctx, m.nodes[target.Path[i]].OnEnter)
	}
}

func (m *Machine[T]) run(ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, a.Args)
	}
}

// Reset exits the active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		m.run(ctx, m.nodes[m.activePath[i]].OnExit)
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// State returns the active leaf ID
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the active leaf name, empty before Init
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// InState reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) InState(id StateID) bool {
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}
