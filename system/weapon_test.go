package system

import (
	"testing"
	"time"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/event"
)

// The fire flag is one-shot input state: the weapon system consumes it
// when the shot spawns, nobody else clears it
func TestFireFlagConsumedOnShot(t *testing.T) {
	w := engine.NewWorld()
	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	ws := NewWeaponSystem()

	wp, _ := w.Weapons.Get(ship)
	wp.Firing = true
	w.Weapons.Set(ship, wp)

	if err := ws.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("weapon update: %v", err)
	}

	if w.Projectiles.Count() != 1 {
		t.Fatalf("Expected 1 projectile, got %d", w.Projectiles.Count())
	}
	wp, _ = w.Weapons.Get(ship)
	if wp.Firing {
		t.Error("Expected fire flag consumed by the shot")
	}
	if wp.CooldownLeft <= 0 {
		t.Error("Expected cooldown armed after firing")
	}
	if !hasEvent(w.DrainEvents(), event.ProjectileFired) {
		t.Error("Expected ProjectileFired event")
	}

	// Consumed flag means no repeat fire on the next tick
	if err := ws.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("weapon update: %v", err)
	}
	if w.Projectiles.Count() != 1 {
		t.Errorf("Expected no repeat fire, got %d projectiles", w.Projectiles.Count())
	}
}

// A press during cooldown stays queued and fires once the cooldown elapses
func TestFireFlagQueuedDuringCooldown(t *testing.T) {
	w := engine.NewWorld()
	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	ws := NewWeaponSystem()

	wp, _ := w.Weapons.Get(ship)
	wp.Firing = true
	wp.CooldownLeft = 2 * engine.DefaultFixedStep
	w.Weapons.Set(ship, wp)

	ws.Update(w, engine.DefaultFixedStep)
	if w.Projectiles.Count() != 0 {
		t.Fatalf("Expected no fire during cooldown, got %d", w.Projectiles.Count())
	}
	wp, _ = w.Weapons.Get(ship)
	if !wp.Firing {
		t.Error("Expected queued fire flag retained through cooldown")
	}

	ws.Update(w, engine.DefaultFixedStep)
	if w.Projectiles.Count() != 1 {
		t.Errorf("Expected queued shot after cooldown, got %d", w.Projectiles.Count())
	}
}

func TestMissileLocksNearestHostile(t *testing.T) {
	w := engine.NewWorld()
	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	near := SpawnAsteroid(w, core.Vec2{X: 60, Y: 50}, core.Vec2{}, 1)
	SpawnAsteroid(w, core.Vec2{X: 150, Y: 50}, core.Vec2{}, 1)
	ws := NewWeaponSystem()

	wp, _ := w.Weapons.Get(ship)
	wp.FireMissile = true
	w.Weapons.Set(ship, wp)

	if err := ws.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("weapon update: %v", err)
	}

	if w.Homings.Count() != 1 {
		t.Fatalf("Expected 1 missile, got %d", w.Homings.Count())
	}
	h, _ := w.Homings.Get(w.Homings.All()[0])
	if h.Target != near {
		t.Errorf("Expected lock on nearest hostile %d, got %d", near, h.Target)
	}
	wp, _ = w.Weapons.Get(ship)
	if wp.FireMissile {
		t.Error("Expected missile flag consumed")
	}
	if !hasEvent(w.DrainEvents(), event.MissileFired) {
		t.Error("Expected MissileFired event")
	}
}

func TestMissileFlagClearedWithoutTarget(t *testing.T) {
	w := engine.NewWorld()
	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	ws := NewWeaponSystem()

	wp, _ := w.Weapons.Get(ship)
	wp.FireMissile = true
	w.Weapons.Set(ship, wp)

	ws.Update(w, engine.DefaultFixedStep)

	if w.Homings.Count() != 0 {
		t.Errorf("Expected no missile without hostiles, got %d", w.Homings.Count())
	}
	wp, _ = w.Weapons.Get(ship)
	if wp.FireMissile {
		t.Error("Expected missile flag cleared even without a target")
	}
}

func TestSpreadShotFiresFan(t *testing.T) {
	w := engine.NewWorld()
	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	w.Effects.Set(ship, component.EffectComponent{SpreadFor: 5 * time.Second})
	ws := NewWeaponSystem()

	wp, _ := w.Weapons.Get(ship)
	wp.Firing = true
	w.Weapons.Set(ship, wp)

	ws.Update(w, engine.DefaultFixedStep)

	if w.Projectiles.Count() != 3 {
		t.Errorf("Expected 3-pellet fan under spread, got %d", w.Projectiles.Count())
	}
}

// End to end through the scheduler: a flag set before the frame produces a
// projectile after one tick
func TestFireFlagThroughScheduler(t *testing.T) {
	w := engine.NewWorld()
	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	w.AddSystem(NewWeaponSystem())

	wp, _ := w.Weapons.Get(ship)
	wp.Firing = true
	w.Weapons.Set(ship, wp)

	sched, err := engine.NewScheduler(w, engine.DefaultFixedStep, engine.DefaultFrameDeltaCap, nil)
	if err != nil {
		t.Fatalf("scheduler: %v", err)
	}
	sched.Start()
	sched.Advance(0)
	sched.Advance(engine.DefaultFixedStep)

	if w.Projectiles.Count() != 1 {
		t.Errorf("Expected 1 projectile after a tick, got %d", w.Projectiles.Count())
	}
}
