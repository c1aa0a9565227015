package object

import (
	"math"
	"sync"

	"github.com/tomz197/skyfire/internal/loop/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity in units per second
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	return p
}

// Release returns the particle to the pool for reuse.
// Must be called exactly once, when the particle is dropped from the world.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates particles in a circular burst pattern and appends
// them to dst.
func SpawnExplosion(dst []*Particle, x, y float64, count int, speed, lifetime float64, rng Rand) []*Particle {
	for i := 0; i < count; i++ {
		// Random direction
		angle := rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rng.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime * (0.5 + rng.Float64()*0.5)

		dst = append(dst, NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life))
	}
	return dst
}

// Update moves the particle. It returns true when the particle has expired.
func (p *Particle) Update(dt float64) bool {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*config.ClientTargetFPS)
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt
	return false
}

// Sprite returns the renderer view of the particle.
func (p *Particle) Sprite() Sprite {
	fade := 0.0
	if p.MaxLifetime > 0 {
		fade = p.Lifetime / p.MaxLifetime
	}
	return Sprite{Kind: KindParticle, X: p.X, Y: p.Y, Fade: fade}
}
