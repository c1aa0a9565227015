package object

import (
	"math"
	"time"

	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/physics"
)

// Enemy descends the playfield with a lateral wobble and shoots at the player.
type Enemy struct {
	Body
	Type      config.EnemyType
	Stats     config.EnemyStats
	Health    int
	MaxHealth int
	LastShot  time.Time

	WobblePhase float64
	WobbleRate  float64 // Phase advance per tick
	WobbleAmp   float64 // Lateral units per tick at peak

	HitFlash int // Ticks left of the hit flash
}

// NewEnemy creates an enemy of type t at (x, y). The wobble is randomised
// so enemies of the same type do not move in lockstep. Unknown types
// return nil.
func NewEnemy(t config.EnemyType, x, y float64, now time.Time, rng Rand) *Enemy {
	stats, ok := config.EnemyTypes[t]
	if !ok {
		return nil
	}
	return &Enemy{
		Body:        Body{X: x, Y: y, Radius: stats.Radius, Active: true},
		Type:        t,
		Stats:       stats,
		Health:      stats.Health,
		MaxHealth:   stats.Health,
		LastShot:    now,
		WobblePhase: rng.Float64() * 2 * math.Pi,
		WobbleRate:  config.EnemyWobbleMinRate + rng.Float64()*(config.EnemyWobbleMaxRate-config.EnemyWobbleMinRate),
		WobbleAmp:   config.EnemyWobbleMinAmp + rng.Float64()*(config.EnemyWobbleMaxAmp-config.EnemyWobbleMinAmp),
	}
}

// Update moves the enemy one tick. Leaving the bottom of the playfield by
// more than config.EnemyExitMargin deactivates it without credit.
func (e *Enemy) Update(screen Screen) {
	if !e.Active {
		return
	}
	e.Y += e.Stats.Speed
	e.WobblePhase += e.WobbleRate
	e.X += math.Sin(e.WobblePhase) * e.WobbleAmp
	e.X = physics.Clamp(e.X, e.Radius, float64(screen.Width)-e.Radius)

	if e.HitFlash > 0 {
		e.HitFlash--
	}
	if e.Y > float64(screen.Height)+config.EnemyExitMargin {
		e.Active = false
	}
}

// InFiringBand reports whether the enemy is far enough on screen to shoot.
func (e *Enemy) InFiringBand(screen Screen) bool {
	return e.Y > 0 && e.Y < float64(screen.Height)*config.EnemyFiringBand
}

// CanShoot reports whether the enemy fires this tick. Every time the cooldown
// elapses the shot timestamp resets, then a weighted roll decides whether
// the opportunity becomes a shot. A failed roll still consumes the window.
func (e *Enemy) CanShoot(now time.Time, rng Rand) bool {
	if now.Sub(e.LastShot) < config.EnemyShootCooldown {
		return false
	}
	e.LastShot = now
	return rng.Float64() < e.Stats.ShootChance
}

// TakeDamage subtracts health. It returns true exactly once: on the hit
// that destroys the enemy.
func (e *Enemy) TakeDamage(amount int) bool {
	if !e.Active {
		return false
	}
	e.Health -= amount
	e.HitFlash = 4
	if e.Health <= 0 {
		e.Health = 0
		e.Active = false
		return true
	}
	return false
}

// Destroy deactivates the enemy regardless of health. It returns false if
// the enemy was already gone.
func (e *Enemy) Destroy() bool {
	if !e.Active {
		return false
	}
	e.Health = 0
	e.Active = false
	return true
}

// Sprite returns the renderer view of the enemy.
func (e *Enemy) Sprite() Sprite {
	return Sprite{
		Kind:    KindEnemy,
		X:       e.X,
		Y:       e.Y,
		Radius:  e.Radius,
		Variant: int(e.Type),
		Flash:   e.HitFlash > 0,
		Fade:    float64(e.Health) / float64(max(e.MaxHealth, 1)),
	}
}
