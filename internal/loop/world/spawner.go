package world

import (
	"time"

	"github.com/tomz197/skyfire/internal/audio"
	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/object"
	"github.com/tomz197/skyfire/internal/physics"
)

// SpawnInterval returns the delay between enemy spawns at a difficulty level.
// It shrinks by a fixed step per level and never drops below the floor.
func SpawnInterval(difficulty int) time.Duration {
	d := config.BaseSpawnInterval - time.Duration(max(difficulty-1, 0))*config.SpawnIntervalStep
	return max(d, config.MinSpawnInterval)
}

// pickEnemyType draws an enemy type. Aces only appear once the difficulty
// reaches config.VarietyDifficulty.
func pickEnemyType(difficulty int, rng object.Rand) config.EnemyType {
	roll := rng.Float64()
	if difficulty < config.VarietyDifficulty {
		if roll < 0.8 {
			return config.Fighter
		}
		return config.Bomber
	}
	switch {
	case roll < 0.5:
		return config.Fighter
	case roll < 0.8:
		return config.Bomber
	default:
		return config.Ace
	}
}

// spawnEnemies adds one enemy above the top edge whenever the spawn timer
// elapses. Nothing spawns during a level transition.
func (w *World) spawnEnemies() {
	if w.State.InTransition || w.now.Before(w.nextSpawn) {
		return
	}
	t := pickEnemyType(w.State.Difficulty, w.rng)
	r := config.EnemyTypes[t].Radius
	x := r + w.rng.Float64()*(float64(w.screen.Width)-2*r)
	w.SpawnEnemyAt(t, x, -r)
	w.nextSpawn = w.now.Add(SpawnInterval(w.State.Difficulty))
}

// SpawnEnemyAt adds an enemy of type t at (x, y). Unknown types are ignored
// and return nil.
func (w *World) SpawnEnemyAt(t config.EnemyType, x, y float64) *object.Enemy {
	e := object.NewEnemy(t, x, y, w.now, w.rng)
	if e == nil {
		return nil
	}
	w.enemies = append(w.enemies, e)
	return e
}

// SpawnPowerUpAt adds a pickup of type t at (x, y).
func (w *World) SpawnPowerUpAt(t config.PowerUpType, x, y float64) *object.PowerUp {
	p := object.NewPowerUp(t, x, y, w.now)
	w.powerUps = append(w.powerUps, p)
	return p
}

// rollDrop gives each kill an independent chance to leave a random pickup.
func (w *World) rollDrop(x, y float64) {
	if w.rng.Float64() >= config.PowerUpDropChance {
		return
	}
	w.SpawnPowerUpAt(config.PowerUpType(w.rng.Intn(int(config.PowerUpTypeCount))), x, y)
}

// checkPortalSpawn opens the portal pair once per level when the score
// reaches the level's threshold.
func (w *World) checkPortalSpawn() {
	if w.State.PortalsSpawned || w.State.InTransition {
		return
	}
	if w.State.Score < w.State.Level*config.PortalScoreStep {
		return
	}

	bx, by := w.portalPosition()
	wx, wy := w.portalPosition()
	for i := 1; i < config.PortalPlacementAttempts; i++ {
		if physics.Distance(bx, by, wx, wy) >= config.PortalMinSeparation {
			break
		}
		wx, wy = w.portalPosition()
	}

	w.blackHole = object.NewBlackHole(bx, by, w.now)
	w.whiteHole = object.NewWhiteHole(wx, wy, w.now)
	w.State.PortalsSpawned = true
	w.sounds.Play(audio.PortalSpawned)
}

// portalPosition returns a random point inside the upper portal band.
func (w *World) portalPosition() (float64, float64) {
	r := config.PortalRadius
	x := r + w.rng.Float64()*(float64(w.screen.Width)-2*r)
	y := config.PortalBandTop + w.rng.Float64()*(config.PortalBandBottom-config.PortalBandTop)
	return x, y
}
