package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/engine/fsm"
	"github.com/lixenwraith/gesture-arcade/events"
	"github.com/lixenwraith/gesture-arcade/gesture"
	"github.com/lixenwraith/gesture-arcade/parameter"
)

// ModeState is the per-game control state
type ModeState int

const (
	ModeMenu ModeState = iota
	ModePlaying
	ModeGameOver
)

func (m ModeState) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	}
	return "unknown"
}

// FSM node IDs; Root is fsm.StateRoot
const (
	stateMenu fsm.StateID = iota + 2
	statePlaying
	stateGameOver
)

// Controller runs one game's Menu → Playing → GameOver machine around its simulation
type Controller struct {
	Game config.Game

	sim     Simulation
	machine *fsm.Machine[*Controller]
	clock   *PausableClock
	session config.Session

	started bool  // A session exists, playing or paused in the menu
	outcome error // Terminal result of the last Step, consumed by the tick transition
	last    error // Outcome kept for the game over screen
}

// NewController builds the mode machine and enters Menu
func NewController(game config.Game, sim Simulation, session config.Session, clock TimeProvider) *Controller {
	c := &Controller{
		Game:    game,
		sim:     sim,
		clock:   NewPausableClock(clock),
		session: session,
	}
	c.clock.Pause()

	m := fsm.NewMachine[*Controller]()
	m.AddState(stateMenu, "Menu", fsm.StateRoot)
	m.AddState(statePlaying, "Playing", fsm.StateRoot)
	m.AddState(stateGameOver, "GameOver", fsm.StateRoot)

	m.AddTransition(stateMenu, fsm.Transition[*Controller]{TargetID: statePlaying, Event: events.EventStart})
	m.AddTransition(stateMenu, fsm.Transition[*Controller]{
		TargetID: statePlaying,
		Event:    events.EventToggleMenu,
		Guard:    (*Controller).hasSession,
	})
	m.AddTransition(statePlaying, fsm.Transition[*Controller]{TargetID: stateMenu, Event: events.EventToggleMenu})
	m.AddTransition(statePlaying, fsm.Transition[*Controller]{
		TargetID: stateGameOver,
		Guard:    (*Controller).hasOutcome,
	})
	m.AddTransition(stateGameOver, fsm.Transition[*Controller]{TargetID: statePlaying, Event: events.EventRestart})
	m.AddTransition(statePlaying, fsm.Transition[*Controller]{TargetID: stateMenu, Event: events.EventSessionAbort})
	m.AddTransition(stateGameOver, fsm.Transition[*Controller]{TargetID: stateMenu, Event: events.EventSessionAbort})

	m.OnEnter(statePlaying, (*Controller).enterPlaying, nil)
	m.OnExit(statePlaying, (*Controller).exitPlaying, nil)
	m.OnEnter(stateGameOver, (*Controller).enterGameOver, nil)

	if err := m.CompilePaths(); err != nil {
		panic(err)
	}
	m.InitialStateID = stateMenu
	if err := m.Init(c); err != nil {
		panic(err)
	}
	c.machine = m
	return c
}

func (c *Controller) hasSession() bool { return c.started }
func (c *Controller) hasOutcome() bool { return c.outcome != nil }

func (c *Controller) enterPlaying(_ any) {
	if !c.started {
		c.sim.Reset(c.session)
		c.started = true
		c.outcome = nil
		c.last = nil
		c.clock.Restart()
		return
	}
	c.clock.Resume()
}

func (c *Controller) exitPlaying(_ any) {
	c.clock.Pause()
}

func (c *Controller) enterGameOver(_ any) {
	c.started = false
	c.last = c.outcome
	c.outcome = nil
	log.Printf("%s session over: %v (high score %d)", c.Game, c.last, c.sim.HighScore())
}

// Mode returns the active state
func (c *Controller) Mode() ModeState {
	switch c.machine.State() {
	case statePlaying:
		return ModePlaying
	case stateGameOver:
		return ModeGameOver
	}
	return ModeMenu
}

// Handle applies a command; inapplicable commands return false and change nothing
func (c *Controller) Handle(ev events.EventType) bool {
	switch ev {
	case events.EventThemeSelect:
		if c.Mode() != ModeMenu {
			return false
		}
		c.session = c.session.NextTheme(c.sim.ThemeCount())
		c.sim.ApplyTheme(c.session.Theme)
		return true
	case events.EventDifficultySelect:
		if c.Mode() != ModeMenu {
			return false
		}
		c.session.Difficulty = c.session.Difficulty.Next()
		return true
	}
	return c.machine.HandleEvent(c, ev)
}

// Abort ends the session, running or paused, and parks the game in the menu
// reason is reported by Outcome until the next session starts
func (c *Controller) Abort(reason error) {
	c.machine.HandleEvent(c, events.EventSessionAbort)
	c.started = false
	c.outcome = nil
	c.last = reason
	c.clock.Pause()
}

// Tick steps the simulation while playing, then evaluates tick transitions
func (c *Controller) Tick(sig gesture.Signal) {
	dt := c.Interval()
	if c.Mode() == ModePlaying {
		if err := c.sim.Step(sig); err != nil {
			c.outcome = err
		}
	}
	c.machine.Update(c, dt)
}

// Interval is the wait before the next Tick: the simulation rate while playing, the menu rate otherwise
func (c *Controller) Interval() time.Duration {
	if c.Mode() == ModePlaying {
		return max(c.sim.TickInterval(), parameter.MinTickInterval)
	}
	return parameter.MenuTickInterval
}

// Session returns the configuration applied on the next reset
func (c *Controller) Session() config.Session {
	return c.session
}

// Paused reports whether a session is parked in the menu
func (c *Controller) Paused() bool {
	return c.started && c.Mode() == ModeMenu
}

// Outcome returns the result that ended the last session, nil while one is running
func (c *Controller) Outcome() error {
	return c.last
}

// Elapsed returns play time of the current or last session
func (c *Controller) Elapsed() time.Duration {
	return c.clock.Elapsed()
}

// Simulation exposes the hosted game
func (c *Controller) Simulation() Simulation {
	return c.sim
}
