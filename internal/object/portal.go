package object

import (
	"time"

	"github.com/tomz197/skyfire/internal/loop/config"
)

// Portal is a black hole (level transition) or white hole (score reset).
type Portal struct {
	Body
	Kind    Kind // KindBlackHole or KindWhiteHole
	Created time.Time
	Spin    float64
}

// NewBlackHole creates a black hole at (x, y).
func NewBlackHole(x, y float64, now time.Time) *Portal {
	return newPortal(KindBlackHole, x, y, now)
}

// NewWhiteHole creates a white hole at (x, y).
func NewWhiteHole(x, y float64, now time.Time) *Portal {
	return newPortal(KindWhiteHole, x, y, now)
}

func newPortal(kind Kind, x, y float64, now time.Time) *Portal {
	return &Portal{
		Body:    Body{X: x, Y: y, Radius: config.PortalRadius, Active: true},
		Kind:    kind,
		Created: now,
	}
}

// Update spins the portal. Portals do not move or expire.
func (p *Portal) Update() {
	if p.Kind == KindBlackHole {
		p.Spin += 0.05
	} else {
		p.Spin -= 0.05
	}
}

// Sprite returns the renderer view of the portal.
func (p *Portal) Sprite() Sprite {
	return Sprite{Kind: p.Kind, X: p.X, Y: p.Y, Radius: p.Radius, Angle: p.Spin, Fade: 1}
}
