package parameter

import "time"

// Ship
const (
	ShipThrust        = 220.0 // units/sec^2
	ShipTurnRate      = 3.6   // radians/sec
	ShipMaxSpeed      = 180.0
	ShipRadius        = 6.0
	ShipHealth        = 3
	ShipHitInvuln     = 2 * time.Second
	ShipFireCooldown  = 250 * time.Millisecond
	ShipRapidCooldown = 100 * time.Millisecond
)

// Projectiles
const (
	ProjectileSpeed  = 320.0
	ProjectileRadius = 1.5
	ProjectileDamage = 1
	ProjectileTTL    = 1200 * time.Millisecond
	SpreadShotCount  = 3
	SpreadShotArc    = 0.35 // radians between pellets
)

// Homing missiles
const (
	MissileBaseSpeed   = 200.0
	MissileAccel       = 420.0
	MissileDrag        = 2.5
	MissileRadius      = 2.0
	MissileDamage      = 3
	MissileTTL         = 4 * time.Second
	MissileMaxSpeed    = 260.0
	MissileLaunchSpeed = 60.0
)

// Asteroids; size classes 3 (large) to 1 (small)
const (
	AsteroidMaxSize       = 3
	AsteroidBaseRadius    = 6.0 // radius = size * base
	AsteroidMinSpeed      = 20.0
	AsteroidMaxSpeed      = 70.0
	AsteroidSplitBoost    = 1.4 // children speed multiplier
	AsteroidHealthPerSize = 1   // health = size * this
)

// AsteroidScore returns points for destroying an asteroid of the given size
// Smaller rocks are harder to hit and worth more
func AsteroidScore(size int) int {
	switch size {
	case 1:
		return 100
	case 2:
		return 50
	default:
		return 20
	}
}

// Boss
const (
	BossHealth       = 24
	BossHalfWidth    = 14.0
	BossHalfHeight   = 10.0
	BossScore        = 1000
	BossFireInterval = 1500 * time.Millisecond
	BossShotSpeed    = 140.0
	BossShotDamage   = 1
	BossShotRadius   = 2.0
	BossShotTTL      = 5 * time.Second
)

// Power-ups
const (
	PowerUpRadius     = 4.0
	PowerUpTTL        = 8 * time.Second
	ShieldDuration    = 6 * time.Second
	RapidDuration     = 8 * time.Second
	SpreadDuration    = 8 * time.Second
	PowerUpDropChance = 0.15
)
