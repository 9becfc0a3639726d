package system

import (
	"math/rand"
	"time"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/event"
	"github.com/arkadyan/novablast/parameter"
)

// DamageSystem consumes this tick's collision events and applies the
// combat rules: projectiles damage asteroids and bosses, asteroids and
// bosses damage the ship. Destroyed asteroids above size 1 split into two
// faster children; kills credit the projectile owner's score and may drop
// a power-up. Registered after the collision system so events are visible
// in the same tick
type DamageSystem struct {
	rng        *rand.Rand
	dropChance float64
}

func NewDamageSystem(rng *rand.Rand, dropChance float64) *DamageSystem {
	return &DamageSystem{rng: rng, dropChance: dropChance}
}

func (s *DamageSystem) Name() string { return "damage" }

// SetDropChance applies a live-tuned power-up drop probability
func (s *DamageSystem) SetDropChance(chance float64) {
	if chance >= 0 && chance <= 1 {
		s.dropChance = chance
	}
}

func (s *DamageSystem) Update(w *engine.World, dt time.Duration) error {
	s.tickInvulnerability(w, dt)

	for _, ev := range w.Collisions() {
		// An earlier event this tick may have destroyed a participant
		if !w.IsAlive(ev.A) || !w.IsAlive(ev.B) {
			continue
		}
		s.resolve(w, ev.A, ev.LayerA, ev.B, ev.LayerB)
		s.resolve(w, ev.B, ev.LayerB, ev.A, ev.LayerA)
	}
	return nil
}

// resolve applies the one-directional effect of src hitting dst
func (s *DamageSystem) resolve(w *engine.World, src core.Entity, srcLayer core.Layer, dst core.Entity, dstLayer core.Layer) {
	switch {
	case srcLayer == parameter.LayerProjectile && (dstLayer == parameter.LayerAsteroid || dstLayer == parameter.LayerBoss):
		s.projectileHit(w, src, dst)
	case (srcLayer == parameter.LayerAsteroid || srcLayer == parameter.LayerBoss) && dstLayer == parameter.LayerShip:
		s.shipHit(w, dst)
	}
}

func (s *DamageSystem) projectileHit(w *engine.World, projectile, target core.Entity) {
	p, ok := w.Projectiles.Get(projectile)
	if !ok {
		return
	}
	w.DestroyEntity(projectile)

	h, ok := w.Healths.Get(target)
	if !ok {
		return
	}
	h.Current -= p.Damage
	if h.Current > 0 {
		w.Healths.Set(target, h)
		return
	}

	if a, ok := w.Asteroids.Get(target); ok {
		s.destroyAsteroid(w, target, a, p.Owner)
		return
	}
	if _, ok := w.Bosses.Get(target); ok {
		s.award(w, p.Owner, parameter.BossScore)
		w.PushEvent(event.GameEvent{
			Type:    event.BossDefeated,
			Entity:  target,
			Payload: &event.ScorePayload{Points: parameter.BossScore},
		})
		w.DestroyEntity(target)
		return
	}

	// Anything else with depleted health (boss shards) just dies
	w.DestroyEntity(target)
}

func (s *DamageSystem) destroyAsteroid(w *engine.World, target core.Entity, a component.AsteroidComponent, killer core.Entity) {
	tr, _ := w.Transforms.Get(target)
	k, _ := w.Kinetics.Get(target)

	points := parameter.AsteroidScore(a.Size)
	s.award(w, killer, points)
	w.DestroyEntity(target)

	if a.Size > 1 {
		s.split(w, tr.Pos, k.Vel, a.Size-1)
		w.PushEvent(event.GameEvent{Type: event.AsteroidSplit, Entity: target})
	} else {
		w.PushEvent(event.GameEvent{
			Type:    event.AsteroidDestroyed,
			Entity:  target,
			Payload: &event.ScorePayload{Points: points},
		})
	}

	if s.rng.Float64() < s.dropChance {
		kind := component.PowerUpKind(s.rng.Intn(3))
		SpawnPowerUp(w, tr.Pos, kind)
	}
}

// split spawns two children diverging perpendicular to the parent velocity
func (s *DamageSystem) split(w *engine.World, pos, vel core.Vec2, size int) {
	perp := core.Vec2{X: -vel.Y, Y: vel.X}.Normalized()
	speed := vel.Len() * parameter.AsteroidSplitBoost
	if speed < parameter.AsteroidMinSpeed {
		speed = parameter.AsteroidMinSpeed
	}
	dir := vel.Normalized()
	if dir.LenSq() == 0 {
		dir = randomDirection(s.rng)
		perp = core.Vec2{X: -dir.Y, Y: dir.X}
	}

	left := dir.Add(perp.Scale(0.6)).Normalized().Scale(speed)
	right := dir.Sub(perp.Scale(0.6)).Normalized().Scale(speed)
	SpawnAsteroid(w, pos, left, size)
	SpawnAsteroid(w, pos, right, size)
}

func (s *DamageSystem) shipHit(w *engine.World, ship core.Entity) {
	h, ok := w.Healths.Get(ship)
	if !ok || h.InvulnerableFor > 0 {
		return
	}
	if effects, ok := w.Effects.Get(ship); ok && effects.ShieldFor > 0 {
		return
	}

	h.Current--
	if h.Current <= 0 {
		w.PushEvent(event.GameEvent{Type: event.ShipDestroyed, Entity: ship})
		w.DestroyEntity(ship)
		return
	}
	h.InvulnerableFor = parameter.ShipHitInvuln
	w.Healths.Set(ship, h)
	w.PushEvent(event.GameEvent{Type: event.ShipHit, Entity: ship})
}

func (s *DamageSystem) tickInvulnerability(w *engine.World, dt time.Duration) {
	for _, e := range w.Healths.All() {
		h, ok := w.Healths.Get(e)
		if !ok || h.InvulnerableFor <= 0 {
			continue
		}
		h.InvulnerableFor -= dt
		if h.InvulnerableFor < 0 {
			h.InvulnerableFor = 0
		}
		w.Healths.Set(e, h)
	}
}

func (s *DamageSystem) award(w *engine.World, owner core.Entity, points int) {
	if sc, ok := w.Scores.Get(owner); ok {
		sc.Points += points
		w.Scores.Set(owner, sc)
	}
}
