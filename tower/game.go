// Package tower implements the block-stacking game: grab a block with the fingertip,
// drag it onto the glowing zone, and build up to the ceiling to advance a level
package tower

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/events"
	"github.com/lixenwraith/gesture-arcade/gesture"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/particle"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// ErrLevelCap is the terminal outcome when the level passes TowerMaxLevel
var ErrLevelCap = errors.New("tower level cap reached")

// Game is one tower session plus the high score carried across restarts
type Game struct {
	Stack *Stack
	Live  Block
	Zone  Zone
	Pulse Pulse

	puffs  *particle.Emitter // Owned by the live block
	bursts *particle.Emitter // Tower success bursts

	rng    *rand.Rand
	cues   events.Sink
	mapper gesture.Mapper

	session config.Session
	theme   Theme

	score     int
	level     int
	highScore int
	over      bool
	ticks     int64

	width, height float64
}

// NewGame creates a tower game on the standard screen
// rng drives spawn placement, tilt, colour, and particles; cues may be nil
func NewGame(rng *rand.Rand, cues events.Sink) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if cues == nil {
		cues = events.Discard
	}
	g := &Game{
		Stack:  NewStack(parameter.TowerBaseY, parameter.TowerCeilingRise),
		Zone:   Zone{X: parameter.TowerZoneX},
		puffs:  particle.NewEmitter(parameter.ParticleMaxPerEmitter, rng),
		bursts: particle.NewEmitter(parameter.ParticleMaxPerEmitter, rng),
		rng:    rng,
		cues:   cues,
		mapper: gesture.NewMapper(),
		width:  parameter.TowerScreenWidth,
		height: parameter.TowerScreenHeight,
	}
	g.Reset(config.DefaultSession())
	return g
}

// Reset starts a fresh session at level 1; high score survives
func (g *Game) Reset(session config.Session) {
	g.session = session
	g.theme = Themes[session.ThemeIndex(len(Themes))]
	g.Stack.Reset()
	g.puffs.Clear()
	g.bursts.Clear()
	g.Pulse = Pulse{}
	g.score = 0
	g.level = 1
	g.over = false
	g.ticks = 0
	g.Live = g.spawn()
}

// Step runs one tick: drag and place when a hand is present, then animate
// A non-nil error is the terminal level cap outcome
func (g *Game) Step(sig gesture.Signal) error {
	if g.over {
		return nil
	}
	g.ticks++

	var err error
	if cursor, ok := g.mapper.Cursor(sig, g.width, g.height); ok {
		err = g.drag(cursor)
	}

	g.Live.Ease()
	g.puffs.Step()
	g.bursts.Step()
	g.Pulse.Step()
	return err
}

func (g *Game) drag(cursor vmath.Vec2) error {
	switch {
	case !g.Live.Grabbed && !g.Live.Contains(cursor):
		return nil
	case !g.Live.Grabbed:
		g.Live.Grab((g.rng.Float64()*2 - 1) * parameter.BlockGrabTiltMax)
		g.puff(parameter.TowerGrabPuffCount)
		g.cue(events.EventCueGrab, nil)
	case !g.Live.Holds(cursor):
		g.Live.Release()
		g.puff(parameter.TowerDropPuffCount)
		g.cue(events.EventCueDrop, nil)
		return nil
	}

	g.Live.CenterOn(cursor)
	if g.Zone.Accepts(&g.Live, g.Stack) {
		return g.settle()
	}
	return nil
}

func (g *Game) puff(n int) {
	b := &g.Live
	g.puffs.Scatter(n, b.X, b.Y, b.Width, b.Height, b.Color, parameter.TowerPuffSpread)
}

// settle snaps the live block onto the tower, scores it, and handles level progression
func (g *Game) settle() error {
	b := g.Live
	b.X = g.Zone.X
	b.Y = g.Stack.TargetTop(b.Height)
	b.Rotation, b.TargetRotation = 0, 0
	b.Scale, b.TargetScale = 1, 1
	g.Stack.Settle(b)

	g.score += max(1, parameter.TowerScoreBase-b.Attempts)
	landing := vmath.Vec2{X: g.Zone.CenterX(b.Width), Y: g.Stack.TopHeight}
	g.bursts.Burst(parameter.TowerSuccessBurstCount, landing, core.RGBSpark, parameter.TowerBurstSpread)
	g.cue(events.EventCueSuccess, nil)

	if g.Stack.CeilingReached() {
		g.level++
		if g.level > parameter.TowerMaxLevel {
			g.over = true
			g.highScore = max(g.highScore, g.score)
			g.cue(events.EventCueGameOver, &events.GameOverPayload{
				Score:     g.score,
				Level:     g.level,
				HighScore: g.highScore,
			})
			return fmt.Errorf("%w: score %d", ErrLevelCap, g.score)
		}
		g.Stack.Reset()
		g.cue(events.EventCueLevelUp, nil)
	}

	g.puffs.Clear()
	g.Live = g.spawn()
	return nil
}

func (g *Game) cue(t events.EventType, payload any) {
	g.cues.Push(events.GameEvent{Type: t, Payload: payload, Frame: g.ticks})
}

// spawn creates the next live block away from the tower base
// Rejection sampling is bounded; when no candidate clears the distance the farthest one wins
func (g *Game) spawn() Block {
	w := BlockWidth(g.level, g.session.WidthDecrease())
	h := float64(parameter.BlockDefaultHeight)
	colors := g.theme.Colors
	color := colors[g.rng.IntN(len(colors))]

	xMin, xMax := parameter.TowerSpawnMargin, int(g.width)-parameter.TowerSpawnMargin-int(w)
	yMin, yMax := parameter.TowerSpawnMargin, int(g.height)/2-parameter.TowerSpawnMargin
	origin := vmath.Vec2{X: g.Zone.X, Y: g.Stack.Base}

	var best vmath.Vec2
	bestDist := -1.0
	for i := 0; i < parameter.TowerSpawnMaxAttempts; i++ {
		p := vmath.Vec2{X: float64(randRange(g.rng, xMin, xMax)), Y: float64(randRange(g.rng, yMin, yMax))}
		d := vmath.Distance(p, origin)
		if d > parameter.TowerSpawnMinDistance {
			return NewBlock(p.X, p.Y, w, h, color)
		}
		if d > bestDist {
			best, bestDist = p, d
		}
	}
	return NewBlock(best.X, best.Y, w, h, color)
}

// randRange returns an int in [lo, hi], collapsing to lo when the range is empty
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// TickInterval is the fixed tower frame rate
func (g *Game) TickInterval() time.Duration {
	return parameter.TowerTickInterval
}

func (g *Game) Score() int     { return g.score }
func (g *Game) Level() int     { return g.level }
func (g *Game) HighScore() int { return g.highScore }
func (g *Game) Over() bool     { return g.over }

// ThemeCount returns the size of the palette table
func (g *Game) ThemeCount() int {
	return len(Themes)
}

// ApplyTheme switches palette; the live block keeps its colour until the next spawn
func (g *Game) ApplyTheme(index int) {
	g.session.Theme = index
	g.theme = Themes[g.session.ThemeIndex(len(Themes))]
}

// View is a read-only copy of everything the renderer draws for tower
type View struct {
	Live      Block
	Settled   []Block // Bottom first
	Ghost     Block   // Where the live block would settle
	ZoneX     float64
	TopHeight float64
	Base      float64
	Ceiling   float64
	Glow      int // Zone pulse alpha 0..ZonePulseMax
	Particles []particle.Particle
	Theme     Theme

	Score     int
	HighScore int
	Level     int
	Attempts  int
	Over      bool

	Width, Height float64
}

// State copies the current game state
func (g *Game) State() View {
	ghost := NewBlock(g.Zone.X, g.Stack.TargetTop(g.Live.Height), g.Live.Width, g.Live.Height, g.Live.Color)
	v := View{
		Live:      g.Live,
		Settled:   append([]Block(nil), g.Stack.Blocks...),
		Ghost:     ghost,
		ZoneX:     g.Zone.X,
		TopHeight: g.Stack.TopHeight,
		Base:      g.Stack.Base,
		Ceiling:   g.Stack.Ceiling,
		Glow:      g.Pulse.Alpha,
		Theme:     g.theme,
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		Attempts:  g.Live.Attempts,
		Over:      g.over,
		Width:     g.width,
		Height:    g.height,
	}
	v.Particles = g.puffs.AppendTo(make([]particle.Particle, 0, g.puffs.Len()+g.bursts.Len()))
	v.Particles = g.bursts.AppendTo(v.Particles)
	return v
}

// View returns State boxed for the engine snapshot
func (g *Game) View() any {
	return g.State()
}

// ParticleCount returns live particles across both emitters
func (g *Game) ParticleCount() int {
	return g.puffs.Len() + g.bursts.Len()
}
