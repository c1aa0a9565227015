package world

import (
	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/object"
	"github.com/tomz197/skyfire/internal/physics"
)

// Snapshot is a read-only view of the world for the renderer. Sprites is
// ordered back to front and is only valid until the next Snapshot call.
type Snapshot struct {
	Sprites []object.Sprite

	Health          int
	MaxHealth       int
	Score           int
	HighScore       int
	NewHighScore    bool
	Bombs           int
	Level           int
	Difficulty      int
	EnemiesDefeated int

	Message     string
	MessageFade float64 // 1 when fresh, approaching 0 at expiry
	FadeAlpha   float64 // Transition overlay

	PowerUps [object.TimedPowerUps]float64 // Remaining fraction per timed power-up

	Theme   Theme
	Running bool
	Paused  bool
}

// Snapshot collects the active entities and run scalars. Draw order:
// clouds, portals, pickups, enemies, bullets, player, particles.
func (w *World) Snapshot() Snapshot {
	s := w.sprites[:0]
	for _, c := range w.clouds {
		s = append(s, c.Sprite())
	}
	if w.blackHole != nil {
		s = append(s, w.blackHole.Sprite())
	}
	if w.whiteHole != nil {
		s = append(s, w.whiteHole.Sprite())
	}
	for _, p := range w.powerUps {
		if p.Active {
			s = append(s, p.Sprite(w.now))
		}
	}
	for _, e := range w.enemies {
		if e.Active {
			s = append(s, e.Sprite())
		}
	}
	for _, b := range w.enemyBullets {
		if b.Active {
			s = append(s, b.Sprite())
		}
	}
	for _, b := range w.playerBullets {
		if b.Active {
			s = append(s, b.Sprite())
		}
	}
	if w.player.Active {
		s = append(s, w.player.Sprite(w.now))
	}
	for _, p := range w.particles {
		s = append(s, p.Sprite())
	}
	w.sprites = s

	snap := Snapshot{
		Sprites:         s,
		Health:          w.player.Health,
		MaxHealth:       w.player.MaxHealth,
		Score:           w.State.Score,
		HighScore:       w.State.HighScore,
		NewHighScore:    w.State.NewHighScore,
		Bombs:           w.State.Bombs,
		Level:           w.State.Level,
		Difficulty:      w.State.Difficulty,
		EnemiesDefeated: w.State.EnemiesDefeated,
		Message:         w.State.Message,
		FadeAlpha:       w.transition.Alpha,
		Theme:           w.theme,
		Running:         w.State.Running,
		Paused:          w.State.Paused,
	}
	if snap.Message != "" {
		left := w.State.MessageUntil.Sub(w.now)
		snap.MessageFade = physics.Clamp(float64(left)/float64(config.MessageDuration), 0, 1)
	}
	for i := range snap.PowerUps {
		snap.PowerUps[i] = w.player.PowerUpRemaining(config.PowerUpType(i), w.now)
	}
	return snap
}
