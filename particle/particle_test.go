package particle

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// TestParticleStepPhysics verifies position, gravity, age and size decay for one tick
func TestParticleStepPhysics(t *testing.T) {
	p := New(vmath.Vec2{X: 10, Y: 10}, core.RGBWhite, vmath.Vec2{X: 1, Y: -2}, 30, 8)
	p.Step()

	if p.Pos != (vmath.Vec2{X: 11, Y: 8}) {
		t.Errorf("Expected position (11,8), got %v", p.Pos)
	}
	if math.Abs(p.Vel.Y-(-1.9)) > 1e-9 {
		t.Errorf("Expected vertical velocity -1.9 after gravity, got %f", p.Vel.Y)
	}
	if p.Vel.X != 1 {
		t.Errorf("Expected horizontal velocity unchanged, got %f", p.Vel.X)
	}
	if p.Age != 1 {
		t.Errorf("Expected age 1, got %d", p.Age)
	}
	if math.Abs(p.Size-7.6) > 1e-9 {
		t.Errorf("Expected size 7.6, got %f", p.Size)
	}
}

// TestParticleAlpha verifies the age-derived opacity curve
func TestParticleAlpha(t *testing.T) {
	p := New(vmath.Vec2{}, core.RGBWhite, vmath.Vec2{}, 10, 3)
	if a := p.Alpha(); a != 255 {
		t.Errorf("Expected alpha 255 at birth, got %d", a)
	}
	for i := 0; i < 5; i++ {
		p.Step()
	}
	if a := p.Alpha(); a != 127 {
		t.Errorf("Expected alpha 127 at half life, got %d", a)
	}
	for i := 0; i < 5; i++ {
		p.Step()
	}
	if a := p.Alpha(); a != 0 {
		t.Errorf("Expected alpha 0 at expiry, got %d", a)
	}
}

// TestParticleSizeNeverNegative verifies the floor at zero
func TestParticleSizeNeverNegative(t *testing.T) {
	p := New(vmath.Vec2{}, core.RGBWhite, vmath.Vec2{}, 1000, 1)
	for i := 0; i < 1000; i++ {
		p.Step()
		if p.Size < 0 {
			t.Fatalf("Size went negative at tick %d: %f", i, p.Size)
		}
	}
}

// TestParticleZeroLifetime verifies degenerate lifetimes are clamped
func TestParticleZeroLifetime(t *testing.T) {
	p := New(vmath.Vec2{}, core.RGBWhite, vmath.Vec2{}, 0, 3)
	if p.Lifetime != 1 {
		t.Errorf("Expected lifetime raised to 1, got %d", p.Lifetime)
	}
	if p.Expired() {
		t.Error("Expected fresh particle not to be expired")
	}
}

// TestEmitterRemovesExactlyAtLifetime verifies age is monotonic and never observed beyond lifetime
func TestEmitterRemovesExactlyAtLifetime(t *testing.T) {
	e := NewEmitter(16, rand.New(rand.NewPCG(7, 7)))
	e.Emit(vmath.Vec2{}, core.RGBWhite, vmath.Vec2{}, 5, 4)

	lastAge := -1
	for tick := 1; tick <= 5; tick++ {
		e.Step()
		snapshot := e.AppendTo(nil)
		if tick < 5 {
			if len(snapshot) != 1 {
				t.Fatalf("Expected particle alive at tick %d", tick)
			}
			if snapshot[0].Age < lastAge {
				t.Errorf("Age decreased from %d to %d", lastAge, snapshot[0].Age)
			}
			if snapshot[0].Age > snapshot[0].Lifetime {
				t.Errorf("Observed age %d beyond lifetime %d", snapshot[0].Age, snapshot[0].Lifetime)
			}
			lastAge = snapshot[0].Age
			continue
		}
		if len(snapshot) != 0 {
			t.Errorf("Expected particle removed at tick %d, still have %d", tick, len(snapshot))
		}
	}
}

// TestEmitterDefaultSize verifies random default sizes fall in range
func TestEmitterDefaultSize(t *testing.T) {
	e := NewEmitter(128, rand.New(rand.NewPCG(1, 1)))
	e.Burst(100, vmath.Vec2{X: 5, Y: 5}, core.RGBWhite, 3)

	for _, p := range e.AppendTo(nil) {
		if p.Size < 3 || p.Size > 8 {
			t.Errorf("Expected size in [3,8], got %f", p.Size)
		}
		if p.Lifetime < 20 || p.Lifetime > 40 {
			t.Errorf("Expected lifetime in [20,40], got %d", p.Lifetime)
		}
		if math.Abs(p.Vel.X) > 3 || math.Abs(p.Vel.Y) > 3 {
			t.Errorf("Expected velocity within spread 3, got %v", p.Vel)
		}
	}
}

// TestEmitterCapOverwrites verifies the circular overwrite keeps the count bounded
func TestEmitterCapOverwrites(t *testing.T) {
	e := NewEmitter(4, nil)
	for i := 0; i < 10; i++ {
		e.Emit(vmath.Vec2{X: float64(i)}, core.RGBWhite, vmath.Vec2{}, 30, 1)
	}
	if e.Len() != 4 {
		t.Errorf("Expected 4 particles at cap, got %d", e.Len())
	}
}

// TestEmitterScatterBounds verifies scatter spawns inside the rectangle
func TestEmitterScatterBounds(t *testing.T) {
	e := NewEmitter(64, rand.New(rand.NewPCG(3, 4)))
	e.Scatter(30, 100, 200, 80, 30, core.RGBWhite, 1)
	for _, p := range e.AppendTo(nil) {
		if p.Pos.X < 100 || p.Pos.X > 180 || p.Pos.Y < 200 || p.Pos.Y > 230 {
			t.Errorf("Particle spawned outside rectangle: %v", p.Pos)
		}
	}
}
