package object

import (
	"math"
	"time"

	"github.com/tomz197/skyfire/internal/loop/config"
)

// Owner identifies who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet travels in a straight line until it hits something, leaves the
// playfield or outlives config.BulletLifetime.
type Bullet struct {
	Body
	Angle   float64 // Heading in radians (0 = right, -Pi/2 = up)
	Speed   float64 // Units per tick
	Damage  int
	Owner   Owner
	Created time.Time
}

// NewPlayerBullet creates an upward bullet fired by the player.
func NewPlayerBullet(x, y float64, damage int, now time.Time) *Bullet {
	return &Bullet{
		Body:    Body{X: x, Y: y, Radius: config.PlayerBulletRadius, Active: true},
		Angle:   -math.Pi / 2,
		Speed:   config.PlayerBulletSpeed,
		Damage:  damage,
		Owner:   OwnerPlayer,
		Created: now,
	}
}

// NewEnemyBullet creates a bullet fired by an enemy along angle.
func NewEnemyBullet(x, y, angle float64, now time.Time) *Bullet {
	return &Bullet{
		Body:    Body{X: x, Y: y, Radius: config.EnemyBulletRadius, Active: true},
		Angle:   angle,
		Speed:   config.EnemyBulletSpeed,
		Damage:  config.EnemyBulletDamage,
		Owner:   OwnerEnemy,
		Created: now,
	}
}

// Update advances the bullet one tick and retires it when expired or off screen.
func (b *Bullet) Update(now time.Time, screen Screen) {
	if !b.Active {
		return
	}
	b.X += math.Cos(b.Angle) * b.Speed
	b.Y += math.Sin(b.Angle) * b.Speed

	if now.Sub(b.Created) >= config.BulletLifetime || screen.Outside(b.X, b.Y, b.Radius) {
		b.Active = false
	}
}

// Consume deactivates the bullet on impact. It returns false if the bullet
// was already spent, so a bullet can deal damage at most once.
func (b *Bullet) Consume() bool {
	if !b.Active {
		return false
	}
	b.Active = false
	return true
}

// Sprite returns the renderer view of the bullet.
func (b *Bullet) Sprite() Sprite {
	return Sprite{Kind: KindBullet, X: b.X, Y: b.Y, Radius: b.Radius, Variant: int(b.Owner), Angle: b.Angle, Fade: 1}
}
