package system

import (
	"time"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/parameter"
)

// BossSystem runs boss attack cadence: on each fire interval the boss
// launches a slow homing shard locked onto the ship
type BossSystem struct{}

func NewBossSystem() *BossSystem {
	return &BossSystem{}
}

func (s *BossSystem) Name() string { return "boss" }

func (s *BossSystem) Update(w *engine.World, dt time.Duration) error {
	ships := w.Ships.All()
	if len(ships) == 0 {
		return nil
	}
	ship := ships[0]

	for _, e := range w.Query().With(w.Transforms).With(w.Bosses).Execute() {
		b, ok := w.Bosses.Get(e)
		if !ok {
			continue
		}
		b.FireIn -= dt
		if b.FireIn <= 0 {
			b.FireIn = b.FireInterval
			if tr, ok := w.Transforms.Get(e); ok {
				s.fireShard(w, e, tr.Pos, ship)
			}
		}
		w.Bosses.Set(e, b)
	}
	return nil
}

// fireShard launches a homing projectile on the boss-shot layer so it can
// hit the ship but not the boss's own asteroids
func (s *BossSystem) fireShard(w *engine.World, boss core.Entity, pos core.Vec2, target core.Entity) {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{MaxSpeed: parameter.BossShotSpeed})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:  component.ShapeCircle,
		Radius: parameter.BossShotRadius,
		Layer:  parameter.LayerAsteroid,
		Mask:   parameter.MaskBossShot,
	})
	// One hit point so player shots can clear shards
	w.Healths.Set(e, component.HealthComponent{Current: 1, Max: 1})
	w.Homings.Set(e, component.HomingComponent{
		Target:    target,
		BaseSpeed: parameter.BossShotSpeed,
		Accel:     parameter.BossShotSpeed * 2,
		Drag:      2,
	})
	w.Lifetimes.Set(e, component.LifetimeComponent{Remaining: parameter.BossShotTTL})
	w.Sprites.Set(e, component.SpriteComponent{Glyph: '*'})
}
