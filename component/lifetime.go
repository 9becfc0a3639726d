package component

import "time"

// LifetimeComponent destroys its entity when Remaining reaches zero
type LifetimeComponent struct {
	Remaining time.Duration
}
