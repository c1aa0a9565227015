// Package world is the simulation core: it owns every entity of one run and
// advances them once per tick in a fixed order.
package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfire/internal/audio"
	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/object"
	"github.com/tomz197/skyfire/internal/physics"
	"github.com/tomz197/skyfire/internal/store"
)

// collisionGridCellSize is the cell size for the enemy spatial grid.
// Must be >= the largest bullet/enemy interaction distance (30 + 5 = 35).
const collisionGridCellSize = 64.0

// Options configures a new World. Zero values get working defaults.
type Options struct {
	Rand      object.Rand
	Sounds    audio.Player
	Scores    store.HighScores // Saved once when a run ends with a new best
	HighScore int              // Best score known before this run
	Logger    *log.Logger
	Start     time.Time // Initial value of the simulation clock
}

// World holds the state of a single run. It is not safe for concurrent use;
// the client loop that owns it is its only caller.
type World struct {
	State RunState

	screen object.Screen
	now    time.Time
	rng    object.Rand
	sounds audio.Player
	scores store.HighScores
	logger *log.Logger

	player        *object.Player
	playerBullets []*object.Bullet
	enemyBullets  []*object.Bullet
	enemies       []*object.Enemy
	powerUps      []*object.PowerUp
	blackHole     *object.Portal
	whiteHole     *object.Portal
	particles     []*object.Particle
	clouds        []*object.Cloud

	nextSpawn  time.Time
	transition Transition
	theme      Theme
	themeIdx   int

	enemyGrid *physics.SpatialGrid
	sprites   []object.Sprite // Reused by Snapshot
}

// New starts a run: full-health player near the bottom centre, initial bombs,
// level 1 and the first spawn one base interval away.
func New(opts Options) *World {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Sounds == nil {
		opts.Sounds = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}

	screen := object.NewScreen(config.PlayfieldWidth, config.PlayfieldHeight)
	w := &World{
		State: RunState{
			Running:    true,
			HighScore:  max(opts.HighScore, 0),
			Difficulty: 1,
			Bombs:      config.InitialBombs,
			Level:      1,
		},
		screen:    screen,
		now:       opts.Start,
		rng:       opts.Rand,
		sounds:    opts.Sounds,
		scores:    opts.Scores,
		logger:    opts.Logger,
		player:    object.NewPlayer(float64(screen.CenterX), float64(screen.Height)-config.PlayerRadius*2),
		nextSpawn: opts.Start.Add(config.BaseSpawnInterval),
		enemyGrid: physics.NewSpatialGrid(float64(screen.Width), float64(screen.Height), collisionGridCellSize),
	}
	w.applyTheme(0)
	w.showMessage("LEVEL 1")
	return w
}

// Tick advances the simulation by dt. Subsystems run in a fixed order:
// player, bullets, enemies, pickups and effects, spawner, portal spawn,
// collisions, portal contact, transition, difficulty, cleanup.
func (w *World) Tick(dt time.Duration, in Intent) {
	if w.State.Paused {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.now = w.now.Add(dt)

	if !w.State.Running {
		w.updateParticles(dt)
		w.particles = releaseParticles(w.particles)
		return
	}

	if in.Bomb && !w.State.InTransition {
		w.UseBomb()
	}

	w.updatePlayer(dt, in)
	w.updateBullets()
	w.updateEnemies()
	w.updatePowerUps()
	w.updateParticles(dt)
	w.updateScenery()

	w.spawnEnemies()
	w.checkPortalSpawn()

	w.resolveCollisions()
	if !w.State.InTransition {
		w.checkPortalCollisions()
	}
	w.advanceTransition()
	w.updateDifficulty()

	if w.State.Message != "" && !w.now.Before(w.State.MessageUntil) {
		w.State.Message = ""
	}

	w.compact()

	if !w.player.Active {
		w.endRun()
	}
}

func (w *World) updatePlayer(dt time.Duration, in Intent) {
	p := w.player
	steer := object.Steering{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}
	if w.State.InTransition {
		steer = object.Steering{}
	}
	p.Update(w.now, dt, steer, w.screen)

	if in.Fire && !w.State.InTransition && p.CanShoot(w.now) {
		w.playerBullets = append(w.playerBullets, object.NewPlayerBullet(p.X, p.Y-p.Radius, p.BulletDamage(), w.now))
		w.sounds.Play(audio.ShotFired)
	}
}

func (w *World) updateBullets() {
	for _, b := range w.playerBullets {
		b.Update(w.now, w.screen)
	}
	for _, b := range w.enemyBullets {
		b.Update(w.now, w.screen)
	}
}

func (w *World) updateEnemies() {
	for _, e := range w.enemies {
		e.Update(w.screen)
		if !e.Active || !e.InFiringBand(w.screen) || !e.CanShoot(w.now, w.rng) {
			continue
		}
		w.enemyFire(e)
	}
}

// enemyFire spawns the shot pattern for e: bombers drop a downward spread,
// the rest aim one bullet at the player.
func (w *World) enemyFire(e *object.Enemy) {
	y := e.Y + e.Radius
	if e.Type == config.Bomber {
		for _, off := range [...]float64{-config.BomberSpreadAngle, 0, config.BomberSpreadAngle} {
			w.enemyBullets = append(w.enemyBullets, object.NewEnemyBullet(e.X, y, math.Pi/2+off, w.now))
		}
		return
	}
	angle := physics.AngleTo(e.X, y, w.player.X, w.player.Y)
	w.enemyBullets = append(w.enemyBullets, object.NewEnemyBullet(e.X, y, angle, w.now))
}

func (w *World) updatePowerUps() {
	for _, p := range w.powerUps {
		p.Update(w.now, w.screen)
	}
}

// updateParticles advances particles by dt. Expired ones are left with a
// non-positive lifetime for releaseParticles.
func (w *World) updateParticles(dt time.Duration) {
	secs := dt.Seconds()
	for _, p := range w.particles {
		p.Update(secs)
	}
}

func (w *World) updateScenery() {
	for _, c := range w.clouds {
		c.Update(w.screen, w.rng)
	}
	if w.blackHole != nil {
		w.blackHole.Update()
	}
	if w.whiteHole != nil {
		w.whiteHole.Update()
	}
}

// UseBomb destroys every active enemy and enemy bullet, crediting each kill.
// It returns false without effect when no bombs are left.
func (w *World) UseBomb() bool {
	if w.State.Bombs <= 0 || !w.State.Running {
		return false
	}
	w.State.Bombs--
	for _, e := range w.enemies {
		if e.Destroy() {
			w.enemyDefeated(e)
		}
	}
	for _, b := range w.enemyBullets {
		b.Deactivate()
	}
	w.sounds.Play(audio.BombUsed)
	return true
}

// TogglePause freezes or resumes the simulation clock. A finished run
// cannot be paused.
func (w *World) TogglePause() {
	if !w.State.Running {
		w.State.Paused = false
		return
	}
	w.State.Paused = !w.State.Paused
}

// addScore credits points and raises the in-memory high score.
func (w *World) addScore(points int) {
	w.State.Score += points
	if w.State.Score > w.State.HighScore {
		w.State.HighScore = w.State.Score
		w.State.NewHighScore = true
	}
}

// enemyDefeated credits a kill: score, counter, burst, sound and drop roll.
func (w *World) enemyDefeated(e *object.Enemy) {
	w.addScore(e.Stats.Score)
	w.State.EnemiesDefeated++
	w.explode(e.X, e.Y, config.ExplosionParticles)
	w.sounds.Play(audio.EnemyDestroyed)
	w.rollDrop(e.X, e.Y)
}

func (w *World) explode(x, y float64, count int) {
	w.particles = object.SpawnExplosion(w.particles, x, y, count, config.ParticleSpeed, config.ParticleLifetime, w.rng)
}

func (w *World) showMessage(msg string) {
	w.State.Message = msg
	w.State.MessageUntil = w.now.Add(config.MessageDuration)
}

// endRun stops the run and persists a new high score. The store is
// best-effort: a failure is logged and the in-memory value stays.
func (w *World) endRun() {
	w.State.Running = false
	w.State.Paused = false
	w.explode(w.player.X, w.player.Y, config.ExplosionParticles*2)
	w.sounds.Play(audio.RunEnded)

	if !w.State.NewHighScore || w.scores == nil {
		return
	}
	if err := w.scores.Save(w.State.HighScore); err != nil {
		w.logger.Warn("Could not save high score", "score", w.State.HighScore, "err", err)
	}
}

// compact drops inactive entities from every collection.
func (w *World) compact() {
	w.playerBullets = sweep(w.playerBullets)
	w.enemyBullets = sweep(w.enemyBullets)
	w.enemies = sweep(w.enemies)
	w.powerUps = sweep(w.powerUps)
	w.particles = releaseParticles(w.particles)
}

// sweep removes inactive entities in place, keeping order.
func sweep[T interface{ IsActive() bool }](items []T) []T {
	n := 0
	for _, it := range items {
		if it.IsActive() {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}

// releaseParticles removes expired particles and returns them to the pool.
func releaseParticles(ps []*object.Particle) []*object.Particle {
	n := 0
	for _, p := range ps {
		if p.Lifetime > 0 {
			ps[n] = p
			n++
			continue
		}
		p.Release()
	}
	clear(ps[n:])
	return ps[:n]
}

// Now returns the simulation clock.
func (w *World) Now() time.Time {
	return w.now
}

// Player returns the player craft.
func (w *World) Player() *object.Player {
	return w.player
}

// Enemies returns the live enemy collection. Callers must not retain it
// across ticks.
func (w *World) Enemies() []*object.Enemy {
	return w.enemies
}

// PowerUps returns the live power-up collection.
func (w *World) PowerUps() []*object.PowerUp {
	return w.powerUps
}

// Portals returns the current black and white hole, nil when absent.
func (w *World) Portals() (black, white *object.Portal) {
	return w.blackHole, w.whiteHole
}

// Transition returns the fade state.
func (w *World) Transition() Transition {
	return w.transition
}

// Theme returns the visual style of the current level.
func (w *World) Theme() Theme {
	return w.theme
}

// Drained reports whether the run is over and its last particles are gone.
func (w *World) Drained() bool {
	return !w.State.Running && len(w.particles) == 0
}
