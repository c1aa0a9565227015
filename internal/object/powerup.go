package object

import (
	"math"
	"time"

	"github.com/tomz197/skyfire/internal/loop/config"
)

// PowerUp is a falling pickup. Its on-screen lifetime is independent of the
// duration it grants once collected.
type PowerUp struct {
	Body
	Type    config.PowerUpType
	Created time.Time
	phase   float64
}

// NewPowerUp creates a pickup of type t at (x, y).
func NewPowerUp(t config.PowerUpType, x, y float64, now time.Time) *PowerUp {
	return &PowerUp{
		Body:    Body{X: x, Y: y, Radius: config.PowerUpRadius, Active: true},
		Type:    t,
		Created: now,
	}
}

// Update drifts the pickup down and expires it after config.PowerUpLifetime.
func (p *PowerUp) Update(now time.Time, screen Screen) {
	if !p.Active {
		return
	}
	p.phase += config.PowerUpDriftRate
	p.Y += config.PowerUpFallSpeed
	p.X += math.Sin(p.phase) * config.PowerUpDrift

	if now.Sub(p.Created) >= config.PowerUpLifetime || p.Y > float64(screen.Height)+p.Radius {
		p.Active = false
	}
}

// Collect deactivates the pickup. It returns false if it was already
// collected or expired, so the effect can only be applied once.
func (p *PowerUp) Collect() bool {
	if !p.Active {
		return false
	}
	p.Active = false
	return true
}

// Sprite returns the renderer view of the pickup. Fade drops over the last
// quarter of the lifetime so expiring pickups can blink.
func (p *PowerUp) Sprite(now time.Time) Sprite {
	left := config.PowerUpLifetime - now.Sub(p.Created)
	fade := 1.0
	if quarter := config.PowerUpLifetime / 4; left < quarter {
		fade = float64(left) / float64(quarter)
	}
	return Sprite{Kind: KindPowerUp, X: p.X, Y: p.Y, Radius: p.Radius, Variant: int(p.Type), Fade: fade}
}
