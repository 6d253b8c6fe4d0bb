// Package snake implements the grid snake game: a wrap-around board, deferred growth,
// self-collision as the only terminal condition, and probabilistic food spawning
package snake

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/events"
	"github.com/lixenwraith/gesture-arcade/gesture"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/particle"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Game is one snake session plus the high score carried across restarts
type Game struct {
	Snake *Snake
	Food  *Food

	trail  *particle.Emitter
	bursts *particle.Emitter

	rng    *rand.Rand
	cues   events.Sink
	mapper gesture.Mapper

	session config.Session
	theme   Theme

	score     int
	level     int
	speed     int
	highScore int
	over      bool
	ticks     int64

	width, height, cell int
}

// NewGame creates a snake game on the standard board
// rng drives food, trail, and burst randomness; cues may be nil
func NewGame(rng *rand.Rand, cues events.Sink) *Game {
	return NewGameSize(parameter.SnakeBoardWidth, parameter.SnakeBoardHeight, parameter.SnakeCellSize, rng, cues)
}

// NewGameSize creates a snake game on a custom board
func NewGameSize(width, height, cell int, rng *rand.Rand, cues events.Sink) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if cues == nil {
		cues = events.Discard
	}
	g := &Game{
		Snake:  NewSnake(width, height, cell),
		Food:   NewFood(width, height, cell),
		trail:  particle.NewEmitter(parameter.ParticleMaxPerEmitter, rng),
		bursts: particle.NewEmitter(parameter.ParticleMaxPerEmitter, rng),
		rng:    rng,
		cues:   cues,
		mapper: gesture.NewMapper(),
		width:  width,
		height: height,
		cell:   cell,
	}
	g.Reset(config.DefaultSession())
	return g
}

// Reset starts a fresh session; high score survives
func (g *Game) Reset(session config.Session) {
	g.session = session
	g.theme = Themes[session.ThemeIndex(len(Themes))]
	g.Snake.Reset()
	g.Food.Reset()
	g.trail.Clear()
	g.bursts.Clear()
	g.score = 0
	g.level = parameter.SnakeInitialLevel
	g.speed = session.SnakeSpeed()
	g.over = false
	g.ticks = 0
}

// Step runs one tick: steer, move, eat, spawn, animate
// A non-nil error is the terminal self-collision outcome
func (g *Game) Step(sig gesture.Signal) error {
	if g.over {
		return nil
	}
	g.ticks++

	if dir, ok := g.mapper.SignalDirection(sig); ok {
		g.Snake.RequestDirection(dir)
	}

	oldHead, err := g.Snake.Advance()
	if err != nil {
		g.finish()
		return fmt.Errorf("%w: score %d level %d", err, g.score, g.level)
	}

	if g.rng.Float64() < parameter.SnakeTrailChance {
		g.trail.Emit(oldHead.Center(g.cell), g.theme.Trail,
			g.trail.RandomVelocity(parameter.SnakeTrailSpread), g.trail.RandomLifetime(), 0)
	}

	head := g.Snake.Head()
	if g.Food.Consume(head) {
		g.eat(head)
	}

	g.Food.Spawn(g.rng, g.Snake.Body)

	g.trail.Step()
	g.bursts.Step()
	return nil
}

func (g *Game) eat(cell vmath.Point) {
	g.Snake.QueueGrowth()
	g.score += parameter.SnakeFoodScorePerLevel * g.level
	g.bursts.Burst(parameter.SnakeFoodBurstCount, cell.Center(g.cell), g.theme.Food, parameter.SnakeFoodBurstSpread)

	if g.score >= g.level*parameter.SnakeLevelScoreStep {
		g.level++
		g.speed++
		g.cues.Push(events.GameEvent{Type: events.EventCueLevelUp, Frame: g.ticks})
	}
}

func (g *Game) finish() {
	g.over = true
	g.highScore = max(g.highScore, g.score)
	g.cues.Push(events.GameEvent{
		Type:  events.EventCueGameOver,
		Frame: g.ticks,
		Payload: &events.GameOverPayload{
			Score:     g.score,
			Level:     g.level,
			HighScore: g.highScore,
		},
	})
}

// TickInterval is one cell per 1/speed seconds
func (g *Game) TickInterval() time.Duration {
	if g.speed <= 0 {
		return time.Second
	}
	return max(time.Second/time.Duration(g.speed), parameter.MinTickInterval)
}

func (g *Game) Score() int     { return g.score }
func (g *Game) Level() int     { return g.level }
func (g *Game) Speed() int     { return g.speed }
func (g *Game) HighScore() int { return g.highScore }
func (g *Game) Over() bool     { return g.over }

// ThemeCount returns the size of the palette table
func (g *Game) ThemeCount() int {
	return len(Themes)
}

// ApplyTheme switches palette immediately; particles already emitted keep their colour
func (g *Game) ApplyTheme(index int) {
	g.session.Theme = index
	g.theme = Themes[g.session.ThemeIndex(len(Themes))]
}

// View is a read-only copy of everything the renderer draws for snake
type View struct {
	Cells     []vmath.Point // Head first
	Food      []vmath.Point
	Particles []particle.Particle
	Direction gesture.Direction
	Theme     Theme

	Score     int
	Level     int
	Speed     int
	HighScore int
	Over      bool

	Width, Height, Cell int
}

// State copies the current game state
func (g *Game) State() View {
	v := View{
		Cells:     g.Snake.Body.AppendTo(make([]vmath.Point, 0, g.Snake.Body.Len())),
		Food:      g.Food.AppendTo(nil),
		Direction: g.Snake.Direction,
		Theme:     g.theme,
		Score:     g.score,
		Level:     g.level,
		Speed:     g.speed,
		HighScore: g.highScore,
		Over:      g.over,
		Width:     g.width,
		Height:    g.height,
		Cell:      g.cell,
	}
	v.Particles = g.trail.AppendTo(make([]particle.Particle, 0, g.trail.Len()+g.bursts.Len()))
	v.Particles = g.bursts.AppendTo(v.Particles)
	return v
}

// View returns State boxed for the engine snapshot
func (g *Game) View() any {
	return g.State()
}

// ParticleCount returns live particles across both emitters
func (g *Game) ParticleCount() int {
	return g.trail.Len() + g.bursts.Len()
}
