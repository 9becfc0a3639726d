package system

import (
	"math/rand"
	"testing"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/event"
	"github.com/arkadyan/novablast/parameter"
)

func newDamageFixture() (*engine.World, *DamageSystem) {
	w := engine.NewWorld()
	// Zero drop chance keeps power-up spawns out of entity counts
	return w, NewDamageSystem(rand.New(rand.NewSource(1)), 0)
}

func collide(w *engine.World, a, b core.Entity) {
	ca, _ := w.Colliders.Get(a)
	cb, _ := w.Colliders.Get(b)
	w.PublishCollisions([]engine.CollisionEvent{{
		A: a, B: b, LayerA: ca.Layer, LayerB: cb.Layer,
	}})
}

func hasEvent(events []event.GameEvent, typ event.Type) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func TestProjectileDestroysSmallAsteroid(t *testing.T) {
	w, ds := newDamageFixture()

	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	shot := SpawnProjectile(w, ship, core.Vec2{X: 10, Y: 10}, core.Vec2{})
	rock := SpawnAsteroid(w, core.Vec2{X: 10, Y: 10}, core.Vec2{X: 20}, 1)

	collide(w, shot, rock)
	if err := ds.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("damage update: %v", err)
	}

	if w.IsAlive(shot) {
		t.Error("Expected projectile consumed on hit")
	}
	if w.IsAlive(rock) {
		t.Error("Expected size-1 asteroid destroyed")
	}
	if w.Asteroids.Count() != 0 {
		t.Errorf("Expected no split from a size-1 asteroid, got %d", w.Asteroids.Count())
	}

	sc, _ := w.Scores.Get(ship)
	if sc.Points != parameter.AsteroidScore(1) {
		t.Errorf("Expected owner credited %d points, got %d", parameter.AsteroidScore(1), sc.Points)
	}
	if !hasEvent(w.DrainEvents(), event.AsteroidDestroyed) {
		t.Error("Expected AsteroidDestroyed event")
	}
}

func TestAsteroidSplitsIntoTwoChildren(t *testing.T) {
	w, ds := newDamageFixture()

	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	shot := SpawnProjectile(w, ship, core.Vec2{X: 10, Y: 10}, core.Vec2{})
	rock := SpawnAsteroid(w, core.Vec2{X: 10, Y: 10}, core.Vec2{X: 30}, 2)
	w.Healths.Set(rock, component.HealthComponent{Current: 1, Max: 2})

	collide(w, shot, rock)
	if err := ds.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("damage update: %v", err)
	}

	if w.IsAlive(rock) {
		t.Error("Expected parent asteroid destroyed")
	}
	if w.Asteroids.Count() != 2 {
		t.Fatalf("Expected 2 children after split, got %d", w.Asteroids.Count())
	}
	for _, e := range w.Asteroids.All() {
		a, _ := w.Asteroids.Get(e)
		if a.Size != 1 {
			t.Errorf("Expected child size 1, got %d", a.Size)
		}
	}
	if !hasEvent(w.DrainEvents(), event.AsteroidSplit) {
		t.Error("Expected AsteroidSplit event")
	}
}

func TestDamageableAsteroidSurvivesPartialHit(t *testing.T) {
	w, ds := newDamageFixture()

	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	shot := SpawnProjectile(w, ship, core.Vec2{X: 10, Y: 10}, core.Vec2{})
	rock := SpawnAsteroid(w, core.Vec2{X: 10, Y: 10}, core.Vec2{X: 30}, 3)

	collide(w, shot, rock)
	if err := ds.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("damage update: %v", err)
	}

	if !w.IsAlive(rock) {
		t.Error("Expected size-3 asteroid to survive one hit")
	}
	h, _ := w.Healths.Get(rock)
	if h.Current != 2 {
		t.Errorf("Expected 2 health remaining, got %d", h.Current)
	}
}

func TestShipHitGrantsInvulnerability(t *testing.T) {
	w, ds := newDamageFixture()

	ship := SpawnShip(w, core.Vec2{X: 10, Y: 10})
	rock := SpawnAsteroid(w, core.Vec2{X: 10, Y: 10}, core.Vec2{}, 1)

	collide(w, ship, rock)
	if err := ds.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("damage update: %v", err)
	}

	h, _ := w.Healths.Get(ship)
	if h.Current != parameter.ShipHealth-1 {
		t.Errorf("Expected health %d, got %d", parameter.ShipHealth-1, h.Current)
	}
	if h.InvulnerableFor <= 0 {
		t.Error("Expected invulnerability window after a hit")
	}
	if !hasEvent(w.DrainEvents(), event.ShipHit) {
		t.Error("Expected ShipHit event")
	}

	// While invulnerable, further contact deals no damage
	collide(w, ship, rock)
	if err := ds.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("damage update: %v", err)
	}
	h, _ = w.Healths.Get(ship)
	if h.Current != parameter.ShipHealth-1 {
		t.Errorf("Expected invulnerable ship untouched, health %d", h.Current)
	}
}

func TestShieldBlocksShipDamage(t *testing.T) {
	w, ds := newDamageFixture()

	ship := SpawnShip(w, core.Vec2{X: 10, Y: 10})
	w.Effects.Set(ship, component.EffectComponent{ShieldFor: parameter.ShieldDuration})
	rock := SpawnAsteroid(w, core.Vec2{X: 10, Y: 10}, core.Vec2{}, 1)

	collide(w, ship, rock)
	if err := ds.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("damage update: %v", err)
	}

	h, _ := w.Healths.Get(ship)
	if h.Current != parameter.ShipHealth {
		t.Errorf("Expected shielded ship untouched, health %d", h.Current)
	}
}

func TestShipDestroyedAtZeroHealth(t *testing.T) {
	w, ds := newDamageFixture()

	ship := SpawnShip(w, core.Vec2{X: 10, Y: 10})
	w.Healths.Set(ship, component.HealthComponent{Current: 1, Max: parameter.ShipHealth})
	rock := SpawnAsteroid(w, core.Vec2{X: 10, Y: 10}, core.Vec2{}, 1)

	collide(w, ship, rock)
	if err := ds.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("damage update: %v", err)
	}

	if w.IsAlive(ship) {
		t.Error("Expected ship destroyed at zero health")
	}
	if !hasEvent(w.DrainEvents(), event.ShipDestroyed) {
		t.Error("Expected ShipDestroyed event")
	}
}

// A participant destroyed by an earlier event this tick is skipped
func TestStaleCollisionEventIgnored(t *testing.T) {
	w, ds := newDamageFixture()

	ship := SpawnShip(w, core.Vec2{X: 50, Y: 50})
	shotA := SpawnProjectile(w, ship, core.Vec2{X: 10, Y: 10}, core.Vec2{})
	shotB := SpawnProjectile(w, ship, core.Vec2{X: 10, Y: 10}, core.Vec2{})
	rock := SpawnAsteroid(w, core.Vec2{X: 10, Y: 10}, core.Vec2{}, 1)

	ca, _ := w.Colliders.Get(shotA)
	cr, _ := w.Colliders.Get(rock)
	w.PublishCollisions([]engine.CollisionEvent{
		{A: shotA, B: rock, LayerA: ca.Layer, LayerB: cr.Layer},
		{A: shotB, B: rock, LayerA: ca.Layer, LayerB: cr.Layer},
	})
	if err := ds.Update(w, engine.DefaultFixedStep); err != nil {
		t.Fatalf("damage update: %v", err)
	}

	// Only the first shot scores; the second event references a dead rock
	sc, _ := w.Scores.Get(ship)
	if sc.Points != parameter.AsteroidScore(1) {
		t.Errorf("Expected a single kill credit, got %d points", sc.Points)
	}
	if !w.IsAlive(shotB) {
		t.Error("Expected second projectile to survive the stale event")
	}
}
