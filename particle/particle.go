// Package particle implements short-lived, self-animating visual tokens and their owning emitters
package particle

import (
	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Particle is a fading point with constant downward acceleration
// Age stays in [0, Lifetime]; the owning Emitter drops it on the step Age reaches Lifetime
type Particle struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Color    core.RGB
	Age      int
	Lifetime int
	Size     float64
}

// New creates a particle at age zero
// A non-positive lifetime is raised to 1 so Alpha never divides by zero
func New(pos vmath.Vec2, color core.RGB, vel vmath.Vec2, lifetime int, size float64) Particle {
	if lifetime <= 0 {
		lifetime = 1
	}
	if size < 0 {
		size = 0
	}
	return Particle{
		Pos:      pos,
		Vel:      vel,
		Color:    color,
		Lifetime: lifetime,
		Size:     size,
	}
}

// Step advances one tick: move, fall, age, shrink
func (p *Particle) Step() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += parameter.ParticleGravity
	if p.Age < p.Lifetime {
		p.Age++
	}
	p.Size = max(0, p.Size*parameter.ParticleSizeDecay)
}

// Expired reports whether the particle reached the end of its life
func (p *Particle) Expired() bool {
	return p.Age >= p.Lifetime
}

// Alpha derives opacity from age: 255 at birth, 0 at expiry
func (p *Particle) Alpha() uint8 {
	a := 255 * (1 - float64(p.Age)/float64(p.Lifetime))
	return uint8(vmath.Clamp(a, 0, 255))
}
