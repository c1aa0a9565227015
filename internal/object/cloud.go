package object

import (
	"github.com/tomz197/skyfire/internal/loop/config"
)

// Cloud is background scenery scrolling down the playfield. It never collides.
type Cloud struct {
	X, Y   float64
	Radius float64
	Speed  float64 // Units per tick
}

// NewCloud places a cloud at a random position anywhere on the screen.
func NewCloud(screen Screen, rng Rand) *Cloud {
	c := &Cloud{}
	c.respawn(screen, rng)
	c.Y = rng.Float64() * float64(screen.Height)
	return c
}

// respawn moves the cloud above the top edge with fresh size and speed.
func (c *Cloud) respawn(screen Screen, rng Rand) {
	c.Radius = 20 + rng.Float64()*40
	c.Speed = config.CloudSpeedMin + rng.Float64()*(config.CloudSpeedMax-config.CloudSpeedMin)
	c.X = rng.Float64() * float64(screen.Width)
	c.Y = -c.Radius
}

// Update scrolls the cloud, wrapping it to the top once it leaves the bottom.
func (c *Cloud) Update(screen Screen, rng Rand) {
	c.Y += c.Speed
	if c.Y-c.Radius > float64(screen.Height) {
		c.respawn(screen, rng)
	}
}

// Sprite returns the renderer view of the cloud.
func (c *Cloud) Sprite() Sprite {
	return Sprite{Kind: KindCloud, X: c.X, Y: c.Y, Radius: c.Radius, Fade: 1}
}
