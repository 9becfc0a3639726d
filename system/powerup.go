package system

import (
	"time"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/event"
	"github.com/arkadyan/novablast/parameter"
)

// PowerUpSystem handles pickup collection via this tick's collision events
// and winds down active effect timers. Effects stack by resetting their
// own timer; expiry restores baseline behavior implicitly since the
// weapon and damage systems check the timers directly
type PowerUpSystem struct{}

func NewPowerUpSystem() *PowerUpSystem {
	return &PowerUpSystem{}
}

func (s *PowerUpSystem) Name() string { return "powerup" }

func (s *PowerUpSystem) Update(w *engine.World, dt time.Duration) error {
	for _, ev := range w.Collisions() {
		ship, pickup := shipPickupPair(ev)
		if ship == core.NoEntity {
			continue
		}
		if !w.IsAlive(ship) || !w.IsAlive(pickup) {
			continue
		}
		s.collect(w, ship, pickup)
	}

	s.tickEffects(w, dt)
	return nil
}

// shipPickupPair extracts (ship, pickup) roles from an event, or NoEntity
func shipPickupPair(ev engine.CollisionEvent) (core.Entity, core.Entity) {
	switch {
	case ev.LayerA == parameter.LayerShip && ev.LayerB == parameter.LayerPowerUp:
		return ev.A, ev.B
	case ev.LayerB == parameter.LayerShip && ev.LayerA == parameter.LayerPowerUp:
		return ev.B, ev.A
	}
	return core.NoEntity, core.NoEntity
}

func (s *PowerUpSystem) collect(w *engine.World, ship, pickup core.Entity) {
	p, ok := w.PowerUps.Get(pickup)
	if !ok {
		return
	}
	w.DestroyEntity(pickup)

	effects, _ := w.Effects.Get(ship)
	switch p.Kind {
	case component.PowerShield:
		effects.ShieldFor = parameter.ShieldDuration
	case component.PowerRapidFire:
		effects.RapidFor = parameter.RapidDuration
	case component.PowerSpreadShot:
		effects.SpreadFor = parameter.SpreadDuration
	}
	w.Effects.Set(ship, effects)

	w.PushEvent(event.GameEvent{Type: event.PowerUpCollected, Entity: ship})
}

func (s *PowerUpSystem) tickEffects(w *engine.World, dt time.Duration) {
	var expired []core.Entity
	for _, e := range w.Effects.All() {
		effects, ok := w.Effects.Get(e)
		if !ok {
			continue
		}
		effects.ShieldFor = tickDown(effects.ShieldFor, dt)
		effects.RapidFor = tickDown(effects.RapidFor, dt)
		effects.SpreadFor = tickDown(effects.SpreadFor, dt)
		if !effects.Active() {
			expired = append(expired, e)
			continue
		}
		w.Effects.Set(e, effects)
	}
	for _, e := range expired {
		w.Effects.Remove(e)
	}
}

func tickDown(d, dt time.Duration) time.Duration {
	d -= dt
	if d < 0 {
		return 0
	}
	return d
}
