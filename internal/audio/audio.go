// Package audio defines the sound events the simulation emits and the
// players that turn them into noise.
package audio

import (
	"io"

	"github.com/tomz197/skyfire/internal/loop/config"
)

// Event is a discrete, named sound cue.
type Event int

const (
	ShotFired Event = iota
	EnemyHit
	EnemyDestroyed
	PlayerDamaged
	PowerUpRapid
	PowerUpShield
	PowerUpDamage
	PowerUpBomb
	PowerUpLife
	BombUsed
	RunEnded
	PortalSpawned
	BlackHoleEntered
	WhiteHoleEntered
	LevelStarted
)

var eventNames = [...]string{
	ShotFired:        "shot_fired",
	EnemyHit:         "enemy_hit",
	EnemyDestroyed:   "enemy_destroyed",
	PlayerDamaged:    "player_damaged",
	PowerUpRapid:     "powerup_rapid",
	PowerUpShield:    "powerup_shield",
	PowerUpDamage:    "powerup_damage",
	PowerUpBomb:      "powerup_bomb",
	PowerUpLife:      "powerup_life",
	BombUsed:         "bomb_used",
	RunEnded:         "run_ended",
	PortalSpawned:    "portal_spawned",
	BlackHoleEntered: "black_hole_entered",
	WhiteHoleEntered: "white_hole_entered",
	LevelStarted:     "level_started",
}

// String returns the event name.
func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// PowerUpCollected returns the pickup cue for a power-up type.
// The second result is false for unknown types.
func PowerUpCollected(t config.PowerUpType) (Event, bool) {
	switch t {
	case config.PowerUpRapid:
		return PowerUpRapid, true
	case config.PowerUpShield:
		return PowerUpShield, true
	case config.PowerUpDamage:
		return PowerUpDamage, true
	case config.PowerUpBomb:
		return PowerUpBomb, true
	case config.PowerUpLife:
		return PowerUpLife, true
	default:
		return 0, false
	}
}

// Player plays sound events. Play must not block and must never fail
// visibly; implementations swallow and log their own errors.
type Player interface {
	Play(e Event)
}

// Nop discards every event.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Event) {}

// Bell rings the terminal bell for the few events worth an audible cue over
// a plain terminal (SSH sessions have no audio device).
type Bell struct {
	W io.Writer
}

// Play implements Player.
func (b Bell) Play(e Event) {
	if b.W == nil {
		return
	}
	switch e {
	case PlayerDamaged, RunEnded, BlackHoleEntered, BombUsed:
		_, _ = io.WriteString(b.W, "\a")
	}
}

// Multi fans an event out to several players.
type Multi []Player

// Play implements Player.
func (m Multi) Play(e Event) {
	for _, p := range m {
		p.Play(e)
	}
}
