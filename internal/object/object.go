// Package object holds the entity types of the playfield and their per-tick rules.
package object

import (
	"github.com/tomz197/skyfire/internal/physics"
)

// Kind tags an entity variant. The set is closed.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
	KindPowerUp
	KindBlackHole
	KindWhiteHole
	KindParticle
	KindCloud
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "powerup"
	case KindBlackHole:
		return "blackhole"
	case KindWhiteHole:
		return "whitehole"
	case KindParticle:
		return "particle"
	case KindCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// Body is the positional trait shared by every entity.
// Active false means pending removal; an inactive body is never revived.
type Body struct {
	X, Y   float64
	Radius float64
	Active bool
}

// CollidesWith reports whether two bodies overlap.
func (b *Body) CollidesWith(o *Body) bool {
	return physics.CirclesOverlap(b.X, b.Y, b.Radius, o.X, o.Y, o.Radius)
}

// IsActive reports whether the body is still part of the world.
func (b *Body) IsActive() bool {
	return b.Active
}

// Deactivate marks the body for removal.
func (b *Body) Deactivate() {
	b.Active = false
}

// Screen represents the playfield dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen builds a Screen with precomputed centre.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2}
}

// Outside reports whether a circle at (x, y) with radius r lies completely
// beyond the screen edges.
func (s Screen) Outside(x, y, r float64) bool {
	return x < -r || x > float64(s.Width)+r || y < -r || y > float64(s.Height)+r
}

// Rand is the random source entities and spawners draw from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Sprite is a read-only view of one entity for the renderer.
type Sprite struct {
	Kind    Kind
	X, Y    float64
	Radius  float64
	Variant int     // Enemy type, power-up type or bullet owner
	Angle   float64 // Heading or bank, depending on kind
	Flash   bool    // Player invincibility or enemy hit flash
	Fade    float64 // 1 = fully visible, 0 = gone (particles, expiring pickups)
}

// ShouldRenderBlink returns true if an entity with remaining protection
// time should be rendered this frame (for blinking effect).
// Returns true always if remainingTime <= 0 (no protection).
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
