package engine

import (
	"time"

	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/gesture"
)

// Snapshot is the read-only per-tick state handed to the renderer
type Snapshot struct {
	Tick    int64
	Game    config.Game
	Mode    ModeState
	Paused  bool // A session is parked in the menu and can be resumed
	Session config.Session

	// View is snake.View or tower.View depending on Game
	View any

	Score     int
	Level     int
	HighScore int
	Elapsed   time.Duration
	Outcome   string // Why the last session ended, empty while playing

	Signal gesture.Signal
}

func (a *Arcade) snapshot(sig gesture.Signal) *Snapshot {
	c := a.Active()
	sim := c.Simulation()
	s := &a.snap
	*s = Snapshot{
		Tick:      a.tick,
		Game:      c.Game,
		Mode:      c.Mode(),
		Paused:    c.Paused(),
		Session:   c.Session(),
		View:      sim.View(),
		Score:     sim.Score(),
		Level:     sim.Level(),
		HighScore: sim.HighScore(),
		Elapsed:   c.Elapsed(),
		Signal:    sig,
	}
	if err := c.Outcome(); err != nil {
		s.Outcome = err.Error()
	}
	return s
}
