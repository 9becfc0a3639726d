package component

import "time"

// HealthComponent tracks damageable state
// InvulnerableFor > 0 suppresses incoming damage and counts down each tick
type HealthComponent struct {
	Current         int
	Max             int
	InvulnerableFor time.Duration
}
