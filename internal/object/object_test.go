package object

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/skyfire/internal/loop/config"
)

// seqRand replays fixed values, cycling when exhausted.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

var (
	t0     = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	screen = NewScreen(config.PlayfieldWidth, config.PlayfieldHeight)
	tick   = time.Second / 60
)

func TestBodyCollidesWith(t *testing.T) {
	a := &Body{X: 0, Y: 0, Radius: 10, Active: true}
	b := &Body{X: 19, Y: 0, Radius: 10, Active: true}
	if !a.CollidesWith(b) {
		t.Fatal("expected overlap at distance 19 with radii 10+10")
	}
	b.X = 20
	if a.CollidesWith(b) {
		t.Fatal("touching circles must not collide")
	}
}

func TestScreenOutside(t *testing.T) {
	if screen.Outside(-3, 100, 4) {
		t.Error("bullet within its radius of the edge counts as inside")
	}
	if !screen.Outside(-5, 100, 4) {
		t.Error("bullet beyond its radius should be outside")
	}
	if !screen.Outside(100, float64(screen.Height)+10, 4) {
		t.Error("below the bottom should be outside")
	}
}

func TestBulletLifetimeAndConsume(t *testing.T) {
	b := NewPlayerBullet(400, 500, 30, t0)
	b.Update(t0.Add(tick), screen)
	if !b.Active {
		t.Fatal("bullet should be active after one tick")
	}
	if b.Y >= 500 {
		t.Fatalf("player bullet should move up, y=%f", b.Y)
	}

	if !b.Consume() {
		t.Fatal("first Consume should succeed")
	}
	if b.Consume() {
		t.Fatal("second Consume must fail")
	}

	e := NewEnemyBullet(400, 300, math.Pi/2, t0)
	e.Update(t0.Add(config.BulletLifetime), screen)
	if e.Active {
		t.Fatal("bullet should expire at its lifetime")
	}
}

func TestBulletLeavesPlayfield(t *testing.T) {
	b := NewPlayerBullet(400, 2, 30, t0)
	b.Update(t0.Add(tick), screen) // y = -8, radius 4
	if b.Active {
		t.Fatalf("bullet at y=%f should be removed", b.Y)
	}
}

func TestEnemyTakeDamageReportsDefeatOnce(t *testing.T) {
	rng := &seqRand{floats: []float64{0.5}}
	e := NewEnemy(config.Fighter, 400, -20, t0, rng)
	if e.Health != 60 {
		t.Fatalf("fighter health = %d, want 60", e.Health)
	}
	if e.TakeDamage(30) {
		t.Fatal("first 30 damage should not destroy a fighter")
	}
	if !e.TakeDamage(30) {
		t.Fatal("second 30 damage should destroy the fighter")
	}
	if e.TakeDamage(30) {
		t.Fatal("destroyed enemy must not report defeat again")
	}
	if e.Active {
		t.Fatal("destroyed enemy should be inactive")
	}
}

func TestNewEnemyUnknownType(t *testing.T) {
	if e := NewEnemy(config.EnemyType(99), 0, 0, t0, &seqRand{}); e != nil {
		t.Fatal("unknown enemy type should yield nil")
	}
}

func TestEnemyCanShootResetsCooldownOnFailedRoll(t *testing.T) {
	// Fighter shootChance is 0.3: 0.9 fails, 0.1 succeeds.
	rng := &seqRand{floats: []float64{0.5, 0.5, 0.5, 0.9, 0.1}}
	e := NewEnemy(config.Fighter, 400, 100, t0, rng)

	if e.CanShoot(t0.Add(config.EnemyShootCooldown-time.Millisecond), rng) {
		t.Fatal("cannot shoot before the cooldown")
	}

	first := t0.Add(config.EnemyShootCooldown)
	if e.CanShoot(first, rng) {
		t.Fatal("roll 0.9 should not produce a shot")
	}
	if !e.LastShot.Equal(first) {
		t.Fatal("failed roll must still reset the cooldown")
	}

	if e.CanShoot(first.Add(time.Millisecond), rng) {
		t.Fatal("cooldown restarted, no shot allowed yet")
	}
	if !e.CanShoot(first.Add(config.EnemyShootCooldown), rng) {
		t.Fatal("roll 0.1 after a full cooldown should shoot")
	}
}

func TestEnemyFiringBandAndExit(t *testing.T) {
	e := NewEnemy(config.Bomber, 400, -10, t0, &seqRand{floats: []float64{0}})
	if e.InFiringBand(screen) {
		t.Fatal("enemy above the screen must not fire")
	}
	e.Y = 100
	if !e.InFiringBand(screen) {
		t.Fatal("enemy near the top should fire")
	}
	e.Y = float64(screen.Height) * 0.9
	if e.InFiringBand(screen) {
		t.Fatal("enemy near the bottom should not fire")
	}

	e.Y = float64(screen.Height) + config.EnemyExitMargin
	e.Update(screen)
	if e.Active {
		t.Fatal("enemy past the exit margin should be removed")
	}
}

func TestEnemyUpdateClampsX(t *testing.T) {
	e := NewEnemy(config.Fighter, 0, 100, t0, &seqRand{floats: []float64{0.75, 1, 1}})
	for i := 0; i < 200; i++ {
		e.Update(screen)
		if e.X < e.Radius || e.X > float64(screen.Width)-e.Radius {
			t.Fatalf("tick %d: x=%f outside [%f,%f]", i, e.X, e.Radius, float64(screen.Width)-e.Radius)
		}
	}
}

func TestPowerUpExpiresAndCollectsOnce(t *testing.T) {
	p := NewPowerUp(config.PowerUpShield, 100, 100, t0)
	p.Update(t0.Add(config.PowerUpLifetime-time.Millisecond), screen)
	if !p.Active {
		t.Fatal("power-up expired early")
	}
	if !p.Collect() {
		t.Fatal("first collect should succeed")
	}
	if p.Collect() {
		t.Fatal("collecting twice must be a no-op")
	}

	q := NewPowerUp(config.PowerUpRapid, 100, 100, t0)
	q.Update(t0.Add(config.PowerUpLifetime), screen)
	if q.Active {
		t.Fatal("power-up should expire after its lifetime")
	}
}

func TestParticleExpires(t *testing.T) {
	p := NewParticle(0, 0, 10, 0, 0.1)
	if p.Update(0.05) {
		t.Fatal("particle expired early")
	}
	if p.X <= 0 {
		t.Fatal("particle should move")
	}
	if !p.Update(0.06) {
		t.Fatal("particle should expire")
	}
	p.Release()
}

func TestSpawnExplosionCount(t *testing.T) {
	rng := &seqRand{floats: []float64{0.1, 0.4, 0.7}}
	ps := SpawnExplosion(nil, 10, 10, 8, 100, 0.5, rng)
	if len(ps) != 8 {
		t.Fatalf("particles = %d, want 8", len(ps))
	}
	for _, p := range ps {
		if p.Lifetime <= 0 || p.Lifetime > 0.5 {
			t.Fatalf("lifetime %f out of range", p.Lifetime)
		}
	}
}

func TestCloudWraps(t *testing.T) {
	rng := &seqRand{floats: []float64{0.5}}
	c := NewCloud(screen, rng)
	c.Y = float64(screen.Height) + c.Radius + 0.1
	c.Update(screen, rng)
	if c.Y > 0 {
		t.Fatalf("cloud should wrap above the top, y=%f", c.Y)
	}
}
