package particle

import (
	"math/rand/v2"

	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Emitter exclusively owns the particles of one entity (snake trail, block, tower burst)
type Emitter struct {
	max    int
	p      []Particle
	rng    *rand.Rand
	ovrIdx int // circular overwrite index when full
}

// NewEmitter creates an emitter capped at maxParticles; rng drives default sizes and bursts
func NewEmitter(maxParticles int, rng *rand.Rand) *Emitter {
	if maxParticles <= 0 {
		maxParticles = parameter.ParticleMaxPerEmitter
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Emitter{
		max: maxParticles,
		p:   make([]Particle, 0, min(maxParticles, 64)),
		rng: rng,
	}
}

// Emit adds a particle; size <= 0 picks a random size in [ParticleSizeMin, ParticleSizeMax]
func (e *Emitter) Emit(pos vmath.Vec2, color core.RGB, vel vmath.Vec2, lifetime int, size float64) {
	if size <= 0 {
		size = float64(parameter.ParticleSizeMin + e.rng.IntN(parameter.ParticleSizeMax-parameter.ParticleSizeMin+1))
	}
	e.add(New(pos, color, vel, lifetime, size))
}

// Burst emits n particles at origin with velocity uniform in [-spread, spread] per axis
// and lifetime uniform in [ParticleLifetimeMin, ParticleLifetimeMax]
func (e *Emitter) Burst(n int, origin vmath.Vec2, color core.RGB, spread float64) {
	for i := 0; i < n; i++ {
		e.Emit(origin, color, e.RandomVelocity(spread), e.RandomLifetime(), 0)
	}
}

// Scatter emits n particles at random points inside the rectangle (x, y, w, h)
func (e *Emitter) Scatter(n int, x, y, w, h float64, color core.RGB, spread float64) {
	for i := 0; i < n; i++ {
		pos := vmath.Vec2{X: x + e.rng.Float64()*w, Y: y + e.rng.Float64()*h}
		e.Emit(pos, color, e.RandomVelocity(spread), e.RandomLifetime(), 0)
	}
}

// RandomVelocity returns a vector with each axis uniform in [-spread, spread]
func (e *Emitter) RandomVelocity(spread float64) vmath.Vec2 {
	return vmath.Vec2{
		X: (e.rng.Float64()*2 - 1) * spread,
		Y: (e.rng.Float64()*2 - 1) * spread,
	}
}

// RandomLifetime returns a lifetime in [ParticleLifetimeMin, ParticleLifetimeMax]
func (e *Emitter) RandomLifetime() int {
	return parameter.ParticleLifetimeMin + e.rng.IntN(parameter.ParticleLifetimeMax-parameter.ParticleLifetimeMin+1)
}

func (e *Emitter) add(p Particle) {
	if len(e.p) < e.max {
		e.p = append(e.p, p)
		return
	}
	if e.ovrIdx >= e.max {
		e.ovrIdx = 0
	}
	e.p[e.ovrIdx] = p
	e.ovrIdx++
}

// Step advances every particle and compacts out the expired ones in place
func (e *Emitter) Step() {
	live := e.p[:0]
	for i := range e.p {
		e.p[i].Step()
		if !e.p[i].Expired() {
			live = append(live, e.p[i])
		}
	}
	e.p = live
	if e.ovrIdx > len(e.p) {
		e.ovrIdx = 0
	}
}

// Len returns the live particle count
func (e *Emitter) Len() int {
	return len(e.p)
}

// Clear drops all particles
func (e *Emitter) Clear() {
	e.p = e.p[:0]
	e.ovrIdx = 0
}

// AppendTo copies live particles onto dst for read-only consumers
func (e *Emitter) AppendTo(dst []Particle) []Particle {
	return append(dst, e.p...)
}
