package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/gesture"
)

// Simulation is one hosted mini-game
// Implementations are driven only from the simulation goroutine
type Simulation interface {
	// Reset starts a fresh session; high score survives
	Reset(session config.Session)

	// Step advances one tick; a non-nil error is a terminal game outcome, not a failure
	Step(sig gesture.Signal) error

	// TickInterval is the wall time between Steps while playing
	TickInterval() time.Duration

	Score() int
	Level() int
	HighScore() int

	// ThemeCount and ApplyTheme expose the palette table for theme selection
	ThemeCount() int
	ApplyTheme(index int)

	// View returns a read-only copy of the game state for rendering
	View() any

	// ParticleCount reports live particles for metrics
	ParticleCount() int
}

// HandSource yields one gesture sample per tick
// Missing or unreadable frames are reported as gesture.NoSignal with a nil error;
// a non-nil error means the capture is gone and the active session ends
type HandSource interface {
	Sample() (gesture.Signal, error)
}

// ReopenableSource is a HandSource backed by a device the arcade can release after a
// capture loss and reopen when the player starts the next session
type ReopenableSource interface {
	HandSource
	Close() error
	Reopen(ctx context.Context) error
}

// HandSourceFunc adapts a function to HandSource
type HandSourceFunc func() (gesture.Signal, error)

// Sample calls f
func (f HandSourceFunc) Sample() (gesture.Signal, error) {
	return f()
}

// Renderer draws a snapshot; it must not retain the pointer past the call
type Renderer interface {
	Render(snap *Snapshot)
}
