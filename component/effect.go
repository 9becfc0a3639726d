package component

import "time"

// EffectComponent tracks timed power-up effects on an entity
// Added on first pickup; timers count down each tick and expire independently
type EffectComponent struct {
	ShieldFor time.Duration
	RapidFor  time.Duration
	SpreadFor time.Duration
}

// Active reports whether any effect timer is still running
func (e EffectComponent) Active() bool {
	return e.ShieldFor > 0 || e.RapidFor > 0 || e.SpreadFor > 0
}
