package component

import "time"

// WeaponComponent is the fire control state of an armed entity
// Firing and FireMissile are set by input (or AI) and consumed by the weapon system
type WeaponComponent struct {
	Cooldown     time.Duration // base time between shots
	CooldownLeft time.Duration
	Firing       bool
	FireMissile  bool
}
