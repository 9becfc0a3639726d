package system

import (
	"time"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/event"
	"github.com/arkadyan/novablast/parameter"
)

// WeaponSystem consumes fire-control flags on armed entities and spawns
// projectiles. Rapid-fire and spread-shot effects modify cadence and count
type WeaponSystem struct{}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{}
}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) Update(w *engine.World, dt time.Duration) error {
	for _, e := range w.Query().With(w.Transforms).With(w.Weapons).Execute() {
		wp, ok := w.Weapons.Get(e)
		if !ok {
			continue
		}
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}

		if wp.CooldownLeft > 0 {
			wp.CooldownLeft -= dt
		}

		effects, _ := w.Effects.Get(e)

		// Fire flags are one-shot: set by input, consumed here
		if wp.Firing && wp.CooldownLeft <= 0 {
			wp.Firing = false
			s.fire(w, e, tr, effects)
			wp.CooldownLeft = wp.Cooldown
			if effects.RapidFor > 0 {
				wp.CooldownLeft = parameter.ShipRapidCooldown
			}
			w.PushEvent(event.GameEvent{Type: event.ProjectileFired, Entity: e})
		}

		if wp.FireMissile {
			wp.FireMissile = false
			if target := nearestHostile(w, tr.Pos); target != core.NoEntity {
				dir := core.FromAngle(tr.Rot)
				SpawnMissile(w, e, target, tr.Pos, dir.Scale(parameter.MissileLaunchSpeed))
				w.PushEvent(event.GameEvent{Type: event.MissileFired, Entity: e})
			}
		}

		w.Weapons.Set(e, wp)
	}
	return nil
}

// fire spawns one pellet, or a fan of them under the spread effect
// Shots inherit the shooter's velocity so they track intuitively
func (s *WeaponSystem) fire(w *engine.World, e core.Entity, tr component.TransformComponent, effects component.EffectComponent) {
	k, _ := w.Kinetics.Get(e)

	shots := 1
	if effects.SpreadFor > 0 {
		shots = parameter.SpreadShotCount
	}

	startArc := -parameter.SpreadShotArc * float64(shots-1) / 2
	for i := 0; i < shots; i++ {
		angle := tr.Rot + startArc + parameter.SpreadShotArc*float64(i)
		vel := core.FromAngle(angle).Scale(parameter.ProjectileSpeed).Add(k.Vel)
		SpawnProjectile(w, e, tr.Pos, vel)
	}
}

// nearestHostile picks the closest live asteroid or boss for missile lock
func nearestHostile(w *engine.World, from core.Vec2) core.Entity {
	best := core.NoEntity
	bestDistSq := 0.0

	consider := func(e core.Entity) {
		tr, ok := w.Transforms.Get(e)
		if !ok {
			return
		}
		d := core.DistanceSq(from, tr.Pos)
		if best == core.NoEntity || d < bestDistSq {
			best = e
			bestDistSq = d
		}
	}

	for _, e := range w.Asteroids.All() {
		consider(e)
	}
	for _, e := range w.Bosses.All() {
		consider(e)
	}
	return best
}
