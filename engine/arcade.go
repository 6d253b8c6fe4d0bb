package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/events"
	"github.com/lixenwraith/gesture-arcade/gesture"
	"github.com/lixenwraith/gesture-arcade/status"
)

var (
	// ErrQuit is returned by Tick when a quit command was consumed
	ErrQuit = errors.New("quit requested")

	// ErrCaptureLost wraps the capture error recorded as the aborted session's outcome
	ErrCaptureLost = errors.New("capture lost")
)

// Options wires an Arcade; Snake and Tower are required
type Options struct {
	Snake Simulation
	Tower Simulation

	Game    config.Game
	Session config.Session

	// Commands carries input; Cues carries simulation audio cues
	// Both default to fresh queues
	Commands *events.EventQueue
	Cues     *events.EventQueue

	Source   HandSource
	Renderer Renderer
	Status   *status.Registry
	Clock    TimeProvider
}

// Arcade hosts both games and owns the single simulation goroutine's loop
type Arcade struct {
	controllers [2]*Controller
	active      config.Game

	commands  *events.EventQueue
	cues      *events.EventQueue
	cueRouter *events.Router[string]

	source   HandSource
	renderer Renderer

	// captureDown is set after a capture loss; sampling stops until a start reopens it
	captureDown bool
	ctx         context.Context // Run's context, used to reopen the capture

	tick int64
	snap Snapshot

	// Cached metric pointers
	statusReg     *status.Registry
	statTicks     *atomic.Int64
	statMisses    *atomic.Int64
	statLost      *atomic.Int64
	statFrames    *atomic.Int64
	statParticles *atomic.Int64
	statCommands  *atomic.Int64
	statRate      *status.AtomicFloat
	statMode      *status.AtomicString
}

// NewArcade builds controllers for both games and enters the configured game's menu
func NewArcade(opts Options) (*Arcade, error) {
	if opts.Snake == nil || opts.Tower == nil {
		return nil, errors.New("arcade requires both simulations")
	}
	if opts.Commands == nil {
		opts.Commands = events.NewEventQueue()
	}
	if opts.Cues == nil {
		opts.Cues = events.NewEventQueue()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Source == nil {
		opts.Source = HandSourceFunc(func() (gesture.Signal, error) { return gesture.NoSignal, nil })
	}

	a := &Arcade{
		active:    opts.Game,
		commands:  opts.Commands,
		cues:      opts.Cues,
		cueRouter: events.NewRouter[string](opts.Cues),
		source:    opts.Source,
		renderer:  opts.Renderer,
		statusReg: opts.Status,
		ctx:       context.Background(),
	}
	a.controllers[config.GameSnake] = NewController(config.GameSnake, opts.Snake, opts.Session, opts.Clock)
	a.controllers[config.GameTower] = NewController(config.GameTower, opts.Tower, opts.Session, opts.Clock)

	a.statTicks = a.statusReg.Ints.Get(status.KeyTicks)
	a.statMisses = a.statusReg.Ints.Get(status.KeyCaptureMisses)
	a.statLost = a.statusReg.Ints.Get(status.KeyCaptureLost)
	a.statFrames = a.statusReg.Ints.Get(status.KeyFramesRendered)
	a.statParticles = a.statusReg.Ints.Get(status.KeyParticlesLive)
	a.statCommands = a.statusReg.Ints.Get(status.KeyCommands)
	a.statRate = a.statusReg.Floats.Get(status.KeyTickRate)
	a.statMode = a.statusReg.Strings.Get(status.KeyMode)

	a.cueRouter.Register(&outcomeLogger{})
	return a, nil
}

// RegisterCueHandler attaches a consumer of simulation cues (audio)
func (a *Arcade) RegisterCueHandler(h events.Handler[string]) {
	a.cueRouter.Register(h)
}

// Commands returns the input queue; safe for concurrent producers
func (a *Arcade) Commands() *events.EventQueue {
	return a.commands
}

// Active returns the controller of the selected game
func (a *Arcade) Active() *Controller {
	return a.controllers[a.active]
}

// Controller returns the controller of a game
func (a *Arcade) Controller(g config.Game) *Controller {
	return a.controllers[g]
}

// CaptureDown reports whether the capture was lost and waits for a start to reopen it
func (a *Arcade) CaptureDown() bool {
	return a.captureDown
}

// Tick runs one control cycle: commands, capture, simulation, cues, render
// Returns ErrQuit on a quit command; a lost capture ends only the active session
func (a *Arcade) Tick() error {
	a.tick++
	a.statTicks.Add(1)

	for _, ev := range a.commands.Consume() {
		a.statCommands.Add(1)
		if ev.Type == events.EventQuit {
			return ErrQuit
		}
		a.dispatch(ev)
	}

	sig := gesture.NoSignal
	if !a.captureDown {
		s, err := a.source.Sample()
		if err != nil {
			a.loseCapture(err)
		} else {
			sig = s
		}
	}
	if !sig.Present {
		a.statMisses.Add(1)
	}

	c := a.Active()
	c.Tick(sig)
	a.cueRouter.DispatchAll(c.Game.String())

	a.statParticles.Store(int64(c.Simulation().ParticleCount()))
	a.statMode.Store(c.Mode().String())

	if a.renderer != nil {
		a.renderer.Render(a.snapshot(sig))
		a.statFrames.Add(1)
	}
	return nil
}

// loseCapture aborts the active session and releases the device
func (a *Arcade) loseCapture(err error) {
	reason := fmt.Errorf("%w: %w", ErrCaptureLost, err)
	a.captureDown = true
	a.statLost.Add(1)

	c := a.Active()
	c.Abort(reason)
	log.Printf("%s session aborted: %v", c.Game, reason)

	if rs, ok := a.source.(ReopenableSource); ok {
		if cerr := rs.Close(); cerr != nil {
			log.Printf("capture close: %v", cerr)
		}
	}
}

// restoreCapture reopens a lost capture; false keeps the game in the menu
// Sources without a device lifecycle are simply sampled again
func (a *Arcade) restoreCapture() bool {
	if rs, ok := a.source.(ReopenableSource); ok {
		if err := rs.Reopen(a.ctx); err != nil {
			reason := fmt.Errorf("%w: %w", ErrCaptureLost, err)
			a.Active().Abort(reason)
			log.Printf("capture reopen: %v", err)
			return false
		}
	}
	a.captureDown = false
	log.Printf("capture restored")
	return true
}

// leavesMenu reports whether a command would start or resume play from the menu
func (a *Arcade) leavesMenu(t events.EventType) bool {
	c := a.Active()
	if c.Mode() != ModeMenu {
		return false
	}
	return t == events.EventStart || (t == events.EventToggleMenu && c.Paused())
}

// dispatch applies a command to the active controller, handling game selection itself
func (a *Arcade) dispatch(ev events.GameEvent) {
	if ev.Type != events.EventGameSelect {
		if a.captureDown && a.leavesMenu(ev.Type) && !a.restoreCapture() {
			return
		}
		a.Active().Handle(ev.Type)
		return
	}
	if a.Active().Mode() != ModeMenu {
		return
	}
	next := a.active.Next()
	if p, ok := ev.Payload.(*events.GameSelectPayload); ok {
		g, err := config.ParseGame(p.Game)
		if err != nil {
			log.Printf("game select: %v", err)
			return
		}
		next = g
	}
	a.active = next
}

// Run ticks until ctx is cancelled or a quit command arrives; both return nil
// A capture loss is handled inside Tick and never stops the loop
func (a *Arcade) Run(ctx context.Context) error {
	a.ctx = ctx
	defer func() { a.ctx = context.Background() }()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	last := time.Now()
	deadline := last
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := a.Tick(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}

		now := time.Now()
		if dt := now.Sub(last); dt > 0 {
			a.statRate.Set(float64(time.Second) / float64(dt))
		}
		last = now

		interval := a.Active().Interval()
		deadline = deadline.Add(interval)
		// Drop accumulated lag instead of bursting ticks
		if now.Sub(deadline) > interval*2 {
			deadline = now.Add(interval)
		}

		if sleep := deadline.Sub(now); sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// outcomeLogger records finished sessions
type outcomeLogger struct{}

func (outcomeLogger) EventTypes() []events.EventType {
	return []events.EventType{events.EventCueGameOver, events.EventCueLevelUp}
}

func (outcomeLogger) HandleEvent(game string, ev events.GameEvent) {
	switch ev.Type {
	case events.EventCueLevelUp:
		log.Printf("%s level up at tick %d", game, ev.Frame)
	case events.EventCueGameOver:
		if p, ok := ev.Payload.(*events.GameOverPayload); ok {
			log.Printf("%s game over: score %d level %d high %d", game, p.Score, p.Level, p.HighScore)
		}
	}
}
