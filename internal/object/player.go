package object

import (
	"math"
	"time"

	"github.com/tomz197/skyfire/internal/loop/config"
	"github.com/tomz197/skyfire/internal/physics"
)

// TimedPowerUps is the number of power-up kinds that run on a player timer.
// They occupy the first values of config.PowerUpType (rapid, shield, damage).
const TimedPowerUps = 3

// Timer is an optional expiry for one timed power-up.
type Timer struct {
	Active  bool
	EndTime time.Time
}

// Steering holds the held movement directions for one tick.
type Steering struct {
	Up, Down, Left, Right bool
}

// Player is the player-controlled craft.
type Player struct {
	Body
	VX, VY    float64 // Velocity intent in units per second, derived each tick
	Speed     float64
	Health    int
	MaxHealth int
	Bank      float64 // Smoothed visual bank angle

	LastShot time.Time

	Invincible      bool
	InvincibleUntil time.Time

	Timers [TimedPowerUps]Timer
}

// NewPlayer creates a player at full health at the given position.
func NewPlayer(x, y float64) *Player {
	return &Player{
		Body:      Body{X: x, Y: y, Radius: config.PlayerRadius, Active: true},
		Speed:     config.PlayerSpeed,
		Health:    config.PlayerMaxHealth,
		MaxHealth: config.PlayerMaxHealth,
	}
}

// timerSlot maps a power-up type to its timer index.
func timerSlot(t config.PowerUpType) (int, bool) {
	if t < 0 || int(t) >= TimedPowerUps {
		return 0, false
	}
	return int(t), true
}

// Update moves the player from the held directions and advances its timers.
func (p *Player) Update(now time.Time, dt time.Duration, steer Steering, screen Screen) {
	var dx, dy float64
	if steer.Left {
		dx--
	}
	if steer.Right {
		dx++
	}
	if steer.Up {
		dy--
	}
	if steer.Down {
		dy++
	}
	if dx != 0 && dy != 0 {
		dx, dy = physics.Normalize(dx, dy)
	}
	p.VX = dx * p.Speed
	p.VY = dy * p.Speed

	secs := dt.Seconds()
	p.X = physics.Clamp(p.X+p.VX*secs, p.Radius, float64(screen.Width)-p.Radius)
	p.Y = physics.Clamp(p.Y+p.VY*secs, config.UIStripHeight+p.Radius, float64(screen.Height)-p.Radius)

	target := 0.0
	if p.Speed > 0 {
		target = p.VX / p.Speed * config.PlayerMaxBank
	}
	p.Bank += (target - p.Bank) * config.PlayerBankApproach

	p.expireTimers(now)

	if p.Invincible && !now.Before(p.InvincibleUntil) {
		p.Invincible = false
	}
	if p.Timers[config.PowerUpShield].Active {
		p.Invincible = true
	}
}

// expireTimers deactivates every timed power-up whose end time has passed.
func (p *Player) expireTimers(now time.Time) {
	for i := range p.Timers {
		if p.Timers[i].Active && !now.Before(p.Timers[i].EndTime) {
			p.Timers[i] = Timer{}
		}
	}
}

// HasPowerUp reports whether a timed power-up is running.
func (p *Player) HasPowerUp(t config.PowerUpType) bool {
	slot, ok := timerSlot(t)
	return ok && p.Timers[slot].Active
}

// PowerUpRemaining returns the fraction of a timed power-up left, in [0, 1].
func (p *Player) PowerUpRemaining(t config.PowerUpType, now time.Time) float64 {
	slot, ok := timerSlot(t)
	if !ok || !p.Timers[slot].Active {
		return 0
	}
	left := p.Timers[slot].EndTime.Sub(now)
	return physics.Clamp(float64(left)/float64(config.PowerUpDuration), 0, 1)
}

// ShootCooldown returns the current minimum time between shots.
func (p *Player) ShootCooldown() time.Duration {
	if p.HasPowerUp(config.PowerUpRapid) {
		return config.PlayerShootCooldown / config.RapidFireMultiplier
	}
	return config.PlayerShootCooldown
}

// CanShoot reports whether the cooldown has elapsed and, if so, records the shot.
func (p *Player) CanShoot(now time.Time) bool {
	if now.Sub(p.LastShot) < p.ShootCooldown() {
		return false
	}
	p.LastShot = now
	return true
}

// BulletDamage returns the damage of the next player bullet.
func (p *Player) BulletDamage() int {
	if p.HasPowerUp(config.PowerUpDamage) {
		return config.PlayerBulletDamage * config.DamageBoostMultiplier
	}
	return config.PlayerBulletDamage
}

// Shielded reports whether damage is currently ignored.
func (p *Player) Shielded() bool {
	return p.Invincible || p.HasPowerUp(config.PowerUpShield)
}

// TakeDamage applies damage unless the player is invincible or shielded.
// It returns true if health changed. Reaching zero health deactivates the player.
func (p *Player) TakeDamage(amount int, now time.Time) bool {
	if !p.Active || p.Shielded() || amount <= 0 {
		return false
	}
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		p.Active = false
	}
	p.Invincible = true
	p.InvincibleUntil = now.Add(config.InvincibilityWindow)
	return true
}

// Heal restores health, clamped to MaxHealth.
func (p *Player) Heal(amount int) {
	if !p.Active {
		return
	}
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// ActivatePowerUp applies a collected power-up. Bomb increments the shared
// bomb counter, life heals, timed kinds (re)start their window without
// stacking remaining time. Unknown kinds are ignored.
func (p *Player) ActivatePowerUp(t config.PowerUpType, now time.Time, bombs *int) {
	switch t {
	case config.PowerUpBomb:
		if bombs != nil {
			*bombs++
		}
	case config.PowerUpLife:
		p.Heal(config.LifeHeal)
	default:
		slot, ok := timerSlot(t)
		if !ok {
			return
		}
		p.Timers[slot] = Timer{Active: true, EndTime: now.Add(config.PowerUpDuration)}
	}
}

// InvincibleRemaining returns the seconds of invincibility left, for blinking.
func (p *Player) InvincibleRemaining(now time.Time) float64 {
	if !p.Invincible {
		return 0
	}
	if p.HasPowerUp(config.PowerUpShield) {
		return 0 // Shield is drawn as a ring, not a blink
	}
	return math.Max(0, p.InvincibleUntil.Sub(now).Seconds())
}

// Sprite returns the renderer view of the player.
func (p *Player) Sprite(now time.Time) Sprite {
	return Sprite{
		Kind:   KindPlayer,
		X:      p.X,
		Y:      p.Y,
		Radius: p.Radius,
		Angle:  p.Bank,
		Flash:  !ShouldRenderBlink(p.InvincibleRemaining(now), config.PlayerBlinkFrequency),
		Fade:   1,
	}
}
