package fsm

import (
	"testing"
	"time"

	"github.com/lixenwraith/gesture-arcade/events"
)

type trace struct {
	log   []string
	allow bool
	ready bool
}

const (
	stateIdle StateID = iota + 2
	stateActive
	stateRunning
	stateDone
)

func record(name string) ActionFunc[*trace] {
	return func(tr *trace, _ any) {
		tr.log = append(tr.log, name)
	}
}

// buildMachine: Root -> Idle, Root -> Active -> Running, Root -> Done
func buildMachine(t *testing.T) *Machine[*trace] {
	t.Helper()
	m := NewMachine[*trace]()
	m.AddState(stateIdle, "Idle", StateRoot)
	m.AddState(stateActive, "Active", StateRoot)
	m.AddState(stateRunning, "Running", stateActive)
	m.AddState(stateDone, "Done", StateRoot)

	m.OnEnter(stateIdle, record("enter idle"), nil)
	m.OnExit(stateIdle, record("exit idle"), nil)
	m.OnEnter(stateActive, record("enter active"), nil)
	m.OnExit(stateActive, record("exit active"), nil)
	m.OnEnter(stateRunning, record("enter running"), nil)
	m.OnExit(stateRunning, record("exit running"), nil)

	m.AddTransition(stateIdle, Transition[*trace]{TargetID: stateRunning, Event: events.EventStart})
	m.AddTransition(stateIdle, Transition[*trace]{
		TargetID: stateDone,
		Event:    events.EventRestart,
		Guard:    func(tr *trace) bool { return tr.allow },
	})
	// Bubbles: Running has no toggle transition of its own
	m.AddTransition(stateActive, Transition[*trace]{TargetID: stateIdle, Event: events.EventToggleMenu})
	m.AddTransition(stateRunning, Transition[*trace]{
		TargetID: stateDone,
		Guard:    func(tr *trace) bool { return tr.ready },
	})

	if err := m.CompilePaths(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	m.InitialStateID = stateIdle
	return m
}

func TestInitEntersInitial(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	if err := m.Init(tr); err != nil {
		t.Fatalf("init: %v", err)
	}
	if m.State() != stateIdle || m.StateName() != "Idle" {
		t.Errorf("Expected Idle, got %s", m.StateName())
	}
	if len(tr.log) != 1 || tr.log[0] != "enter idle" {
		t.Errorf("Expected [enter idle], got %v", tr.log)
	}
}

func TestTransitionExitEnterOrder(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	m.Init(tr)
	tr.log = nil

	if !m.HandleEvent(tr, events.EventStart) {
		t.Fatal("Expected start to transition")
	}
	want := []string{"exit idle", "enter active", "enter running"}
	if len(tr.log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, tr.log)
	}
	for i := range want {
		if tr.log[i] != want[i] {
			t.Errorf("Step %d: expected %q, got %q", i, want[i], tr.log[i])
		}
	}
	if !m.InState(stateActive) || !m.InState(stateRunning) {
		t.Error("Expected Active and Running on the active path")
	}
}

func TestEventBubblesToParent(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	m.Init(tr)
	m.HandleEvent(tr, events.EventStart)
	tr.log = nil

	if !m.HandleEvent(tr, events.EventToggleMenu) {
		t.Fatal("Expected toggle on parent to handle event from leaf")
	}
	if m.State() != stateIdle {
		t.Errorf("Expected Idle, got %s", m.StateName())
	}
	want := []string{"exit running", "exit active", "enter idle"}
	for i := range want {
		if i >= len(tr.log) || tr.log[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, tr.log)
		}
	}
}

func TestInapplicableEventIsNoop(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	m.Init(tr)

	tests := []events.EventType{events.EventToggleMenu, events.EventQuit, events.EventNone}
	for _, ev := range tests {
		if m.HandleEvent(tr, ev) {
			t.Errorf("Expected %s to be ignored in Idle", ev)
		}
	}
	if m.State() != stateIdle {
		t.Errorf("Expected to remain Idle, got %s", m.StateName())
	}
}

func TestGuardBlocksTransition(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	m.Init(tr)

	if m.HandleEvent(tr, events.EventRestart) {
		t.Error("Expected guard to block restart")
	}
	tr.allow = true
	if !m.HandleEvent(tr, events.EventRestart) {
		t.Error("Expected restart once guard passes")
	}
	if m.State() != stateDone {
		t.Errorf("Expected Done, got %s", m.StateName())
	}
}

func TestTickTransition(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	m.Init(tr)
	m.HandleEvent(tr, events.EventStart)

	m.Update(tr, 16*time.Millisecond)
	m.Update(tr, 16*time.Millisecond)
	if m.State() != stateRunning {
		t.Fatalf("Expected Running before guard passes, got %s", m.StateName())
	}
	if m.TimeInState() != 32*time.Millisecond {
		t.Errorf("Expected 32ms in state, got %v", m.TimeInState())
	}

	tr.ready = true
	m.Update(tr, 16*time.Millisecond)
	if m.State() != stateDone {
		t.Errorf("Expected Done after tick transition, got %s", m.StateName())
	}
	if m.TimeInState() != 0 {
		t.Errorf("Expected time in state reset, got %v", m.TimeInState())
	}
}

func TestReset(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	m.Init(tr)
	m.HandleEvent(tr, events.EventStart)
	tr.log = nil

	if err := m.Reset(tr); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if m.State() != stateIdle {
		t.Errorf("Expected Idle after reset, got %s", m.StateName())
	}
	if tr.log[0] != "exit running" || tr.log[len(tr.log)-1] != "enter idle" {
		t.Errorf("Unexpected reset trace %v", tr.log)
	}
}

func TestCompilePathsMissingParent(t *testing.T) {
	m := NewMachine[*trace]()
	m.AddState(5, "Orphan", 99)
	if err := m.CompilePaths(); err == nil {
		t.Error("Expected error for missing parent")
	}
}

func TestInitUnknownState(t *testing.T) {
	m := NewMachine[*trace]()
	m.CompilePaths()
	m.InitialStateID = 42
	if err := m.Init(&trace{}); err == nil {
		t.Error("Expected error for unknown initial state")
	}
}
