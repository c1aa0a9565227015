package world

import (
	"github.com/tomz197/skyfire/internal/audio"
	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/object"
)

// resolveCollisions runs the pairwise checks in their fixed order: player
// bullets against enemies, enemy sweep, enemy bullets against the player,
// enemy bodies against the player, then pickups. A player killed earlier in
// the pass collects nothing.
func (w *World) resolveCollisions() {
	w.checkBulletEnemyCollisions()
	w.enemies = sweep(w.enemies)

	p := w.player
	for _, b := range w.enemyBullets {
		if b.Active && b.CollidesWith(&p.Body) && b.Consume() {
			w.damagePlayer(b.Damage)
		}
	}

	for _, e := range w.enemies {
		if !e.Active || !e.CollidesWith(&p.Body) {
			continue
		}
		w.damagePlayer(config.EnemyCollisionDamage)
		if e.Destroy() {
			w.explode(e.X, e.Y, config.ExplosionParticles)
		}
	}

	if !p.Active {
		return
	}
	for _, pu := range w.powerUps {
		if pu.Active && pu.CollidesWith(&p.Body) {
			w.collectPowerUp(pu)
		}
	}
}

// checkBulletEnemyCollisions lets each player bullet hit at most one enemy:
// the first one in collection order it overlaps. Enemies are bucketed into
// the spatial grid and the query keeps the lowest matching index.
func (w *World) checkBulletEnemyCollisions() {
	if len(w.enemies) == 0 || len(w.playerBullets) == 0 {
		return
	}

	w.enemyGrid.Clear()
	for i, e := range w.enemies {
		if e.Active {
			w.enemyGrid.Insert(e.X, e.Y, i)
		}
	}

	for _, b := range w.playerBullets {
		if !b.Active {
			continue
		}
		hit := w.enemyGrid.FirstMatch(b.X, b.Y, func(i int) bool {
			return w.enemies[i].Active && b.CollidesWith(&w.enemies[i].Body)
		})
		if hit < 0 || !b.Consume() {
			continue
		}
		e := w.enemies[hit]
		if e.TakeDamage(b.Damage) {
			w.enemyDefeated(e)
			continue
		}
		w.explode(b.X, b.Y, config.HitParticles)
		w.sounds.Play(audio.EnemyHit)
	}
}

func (w *World) damagePlayer(amount int) {
	if w.player.TakeDamage(amount, w.now) {
		w.explode(w.player.X, w.player.Y, config.HitParticles)
		w.sounds.Play(audio.PlayerDamaged)
	}
}

// collectPowerUp applies a pickup once; collecting a spent pickup is a no-op.
func (w *World) collectPowerUp(pu *object.PowerUp) {
	if !pu.Collect() {
		return
	}
	w.player.ActivatePowerUp(pu.Type, w.now, &w.State.Bombs)
	if e, ok := audio.PowerUpCollected(pu.Type); ok {
		w.sounds.Play(e)
	}
}

// checkPortalCollisions handles portal contact. The black hole is checked
// first and wins if the player overlaps both.
func (w *World) checkPortalCollisions() {
	p := w.player
	if !p.Active {
		return
	}
	if w.blackHole != nil && w.blackHole.CollidesWith(&p.Body) {
		w.enterBlackHole()
		return
	}
	if w.whiteHole != nil && w.whiteHole.CollidesWith(&p.Body) {
		w.enterWhiteHole()
	}
}
