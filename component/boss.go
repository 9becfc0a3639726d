package component

import "time"

// BossComponent marks a boss entity and its attack cadence
type BossComponent struct {
	FireInterval time.Duration
	FireIn       time.Duration
}
