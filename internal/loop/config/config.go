// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield dimensions in logical units. Rendering scales them to the terminal.
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600
	UIStripHeight   = 40 // Reserved at the top for the HUD; the player never enters it
)

// Player
const (
	PlayerRadius         = 20.0
	PlayerSpeed          = 300.0 // Logical units per second
	PlayerMaxHealth      = 100
	PlayerMaxBank        = 0.35 // Radians of visual bank at full lateral speed
	PlayerBankApproach   = 0.15 // Fraction of the remaining bank gap closed per tick
	PlayerShootCooldown  = 250 * time.Millisecond
	RapidFireMultiplier  = 3 // Cooldown divisor while rapid fire is active
	InvincibilityWindow  = time.Second
	PlayerBlinkFrequency = 10.0 // Hz, renderer flash while invincible
	InitialBombs         = 2
)

// Bullets. Speeds are per tick.
const (
	BulletLifetime        = 3 * time.Second
	PlayerBulletSpeed     = 10.0
	PlayerBulletRadius    = 4.0
	PlayerBulletDamage    = 30
	DamageBoostMultiplier = 2
	EnemyBulletSpeed      = 5.0
	EnemyBulletRadius     = 5.0
	EnemyBulletDamage     = 10
	BomberSpreadAngle     = 0.25 // Radians between bomber spread shots
)

// EnemyType identifies an enemy archetype.
type EnemyType int

const (
	Fighter EnemyType = iota
	Bomber
	Ace
)

// String returns the enemy type name.
func (t EnemyType) String() string {
	switch t {
	case Fighter:
		return "fighter"
	case Bomber:
		return "bomber"
	case Ace:
		return "ace"
	default:
		return "unknown"
	}
}

// EnemyStats are the per-type enemy properties.
type EnemyStats struct {
	Speed       float64 // Downward units per tick
	Health      int
	Radius      float64
	Score       int
	ShootChance float64 // Probability that an elapsed cooldown produces a shot
}

// EnemyTypes maps each enemy type to its stats.
var EnemyTypes = map[EnemyType]EnemyStats{
	Fighter: {Speed: 2.0, Health: 60, Radius: 20, Score: 15, ShootChance: 0.3},
	Bomber:  {Speed: 1.0, Health: 150, Radius: 30, Score: 30, ShootChance: 0.5},
	Ace:     {Speed: 3.5, Health: 90, Radius: 18, Score: 50, ShootChance: 0.7},
}

// Enemies
const (
	EnemyCollisionDamage = 25
	EnemyShootCooldown   = 1500 * time.Millisecond
	EnemyFiringBand      = 0.6  // Enemies fire only while 0 < y < height*band
	EnemyExitMargin      = 50.0 // Removed once this far below the playfield
	EnemyWobbleMinRate   = 0.02
	EnemyWobbleMaxRate   = 0.06
	EnemyWobbleMinAmp    = 0.5
	EnemyWobbleMaxAmp    = 1.5
)

// PowerUpType identifies a pickup.
type PowerUpType int

const (
	PowerUpRapid PowerUpType = iota
	PowerUpShield
	PowerUpDamage
	PowerUpBomb
	PowerUpLife
	PowerUpTypeCount
)

// String returns the power-up name.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpRapid:
		return "rapid"
	case PowerUpShield:
		return "shield"
	case PowerUpDamage:
		return "damage"
	case PowerUpBomb:
		return "bomb"
	case PowerUpLife:
		return "life"
	default:
		return "unknown"
	}
}

// Power-ups
const (
	PowerUpRadius     = 15.0
	PowerUpFallSpeed  = 1.5 // Units per tick
	PowerUpDrift      = 0.5
	PowerUpDriftRate  = 0.05
	PowerUpLifetime   = 12 * time.Second // On-screen lifetime before pickup
	PowerUpDuration   = 5 * time.Second  // Granted duration of rapid/shield/damage
	PowerUpDropChance = 0.2
	LifeHeal          = 25
)

// Spawner
const (
	BaseSpawnInterval = 2000 * time.Millisecond
	SpawnIntervalStep = 150 * time.Millisecond // Reduction per difficulty level
	MinSpawnInterval  = 400 * time.Millisecond
	VarietyDifficulty = 3 // Aces join the mix from this difficulty level
)

// Portals
const (
	PortalRadius            = 40.0
	PortalScoreStep         = 50 // Level N portals open at N*step score
	PortalBandTop           = 80.0
	PortalBandBottom        = 220.0
	PortalMinSeparation     = 200.0
	PortalPlacementAttempts = 10
)

// Level transition
const (
	FadeStep         = 0.02 // Overlay alpha change per tick
	LevelGracePeriod = 2 * time.Second
	MessageDuration  = 2 * time.Second
)

// Difficulty
const (
	DifficultyScoreStep = 200
)

// Effects
const (
	ExplosionParticles = 16
	HitParticles       = 4
	ParticleSpeed      = 120.0 // Units per second
	ParticleLifetime   = 0.6   // Seconds
	CloudSpeedMin      = 0.3
	CloudSpeedMax      = 1.2
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxTermWidth          = 200
	MaxTermHeight         = 60
	MaxFrameDelta         = 100 * time.Millisecond // Longer frames are simulated as this
	GameOverDelaySeconds  = 1.5                    // Restart is ignored until this has passed
	NoticeDisplaySeconds  = 5.0                    // How long record announcements stay up
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)
