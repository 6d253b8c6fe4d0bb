package parameter

// Particle Motion
const (
	// ParticleGravity is added to vertical velocity every tick (units/tick²)
	ParticleGravity = 0.1

	// ParticleSizeDecay is the multiplicative size shrink per tick
	ParticleSizeDecay = 0.95
)

// Particle Defaults
const (
	ParticleDefaultLifetime = 30
	ParticleLifetimeMin     = 20
	ParticleLifetimeMax     = 40
	ParticleSizeMin         = 3
	ParticleSizeMax         = 8

	// ParticleMaxPerEmitter caps one emitter; the oldest slot is overwritten when full
	ParticleMaxPerEmitter = 512
)
