package system

import (
	"math"
	"math/rand"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/parameter"
)

// Entity construction helpers shared by the gameplay systems and the shell

// SpawnShip creates the player ship at the given position
func SpawnShip(w *engine.World, pos core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, Rot: -math.Pi / 2, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{MaxSpeed: parameter.ShipMaxSpeed})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:  component.ShapeCircle,
		Radius: parameter.ShipRadius,
		Layer:  parameter.LayerShip,
		Mask:   parameter.MaskShip,
	})
	w.Healths.Set(e, component.HealthComponent{Current: parameter.ShipHealth, Max: parameter.ShipHealth})
	w.Ships.Set(e, component.ShipComponent{Thrust: parameter.ShipThrust, TurnRate: parameter.ShipTurnRate})
	w.Weapons.Set(e, component.WeaponComponent{Cooldown: parameter.ShipFireCooldown})
	w.Scores.Set(e, component.ScoreComponent{})
	w.Sprites.Set(e, component.SpriteComponent{Glyph: 'A'})
	return e
}

// SpawnAsteroid creates an asteroid of the given size class
func SpawnAsteroid(w *engine.World, pos, vel core.Vec2, size int) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{Vel: vel, AngVel: 0.8})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:  component.ShapeCircle,
		Radius: float64(size) * parameter.AsteroidBaseRadius,
		Layer:  parameter.LayerAsteroid,
	})
	w.Healths.Set(e, component.HealthComponent{
		Current: size * parameter.AsteroidHealthPerSize,
		Max:     size * parameter.AsteroidHealthPerSize,
	})
	w.Asteroids.Set(e, component.AsteroidComponent{Size: size})
	w.Sprites.Set(e, component.SpriteComponent{Glyph: asteroidGlyph(size)})
	return e
}

func asteroidGlyph(size int) rune {
	switch size {
	case 1:
		return 'o'
	case 2:
		return 'O'
	default:
		return '@'
	}
}

// SpawnProjectile creates a straight-flying shot owned by the shooter
func SpawnProjectile(w *engine.World, owner core.Entity, pos, vel core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{Vel: vel})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:  component.ShapeCircle,
		Radius: parameter.ProjectileRadius,
		Layer:  parameter.LayerProjectile,
		Mask:   parameter.MaskProjectile,
	})
	w.Projectiles.Set(e, component.ProjectileComponent{Damage: parameter.ProjectileDamage, Owner: owner})
	w.Lifetimes.Set(e, component.LifetimeComponent{Remaining: parameter.ProjectileTTL})
	w.Sprites.Set(e, component.SpriteComponent{Glyph: '.'})
	return e
}

// SpawnMissile creates a homing missile locked onto target
func SpawnMissile(w *engine.World, owner, target core.Entity, pos, vel core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{Vel: vel, MaxSpeed: parameter.MissileMaxSpeed})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:  component.ShapeCircle,
		Radius: parameter.MissileRadius,
		Layer:  parameter.LayerProjectile,
		Mask:   parameter.MaskProjectile,
	})
	w.Projectiles.Set(e, component.ProjectileComponent{Damage: parameter.MissileDamage, Owner: owner})
	w.Homings.Set(e, component.HomingComponent{
		Target:    target,
		BaseSpeed: parameter.MissileBaseSpeed,
		Accel:     parameter.MissileAccel,
		Drag:      parameter.MissileDrag,
	})
	w.Lifetimes.Set(e, component.LifetimeComponent{Remaining: parameter.MissileTTL})
	w.Sprites.Set(e, component.SpriteComponent{Glyph: '!'})
	return e
}

// SpawnBoss creates a box-collider boss at the given position
func SpawnBoss(w *engine.World, pos core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, Scale: 1})
	w.Kinetics.Set(e, component.KineticComponent{Vel: core.Vec2{X: 15}})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:       component.ShapeBox,
		HalfExtents: core.Vec2{X: parameter.BossHalfWidth, Y: parameter.BossHalfHeight},
		Layer:       parameter.LayerBoss,
	})
	w.Healths.Set(e, component.HealthComponent{Current: parameter.BossHealth, Max: parameter.BossHealth})
	w.Bosses.Set(e, component.BossComponent{
		FireInterval: parameter.BossFireInterval,
		FireIn:       parameter.BossFireInterval,
	})
	w.Sprites.Set(e, component.SpriteComponent{Glyph: 'W'})
	return e
}

// SpawnPowerUp creates a timed collectible drop
func SpawnPowerUp(w *engine.World, pos core.Vec2, kind component.PowerUpKind) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos, Scale: 1})
	w.Colliders.Set(e, component.ColliderComponent{
		Shape:  component.ShapeCircle,
		Radius: parameter.PowerUpRadius,
		Layer:  parameter.LayerPowerUp,
	})
	w.PowerUps.Set(e, component.PowerUpComponent{Kind: kind})
	w.Lifetimes.Set(e, component.LifetimeComponent{Remaining: parameter.PowerUpTTL})
	w.Sprites.Set(e, component.SpriteComponent{Glyph: '+'})
	return e
}

// randomDirection returns a unit vector at a uniformly random heading
func randomDirection(rng *rand.Rand) core.Vec2 {
	return core.FromAngle(rng.Float64() * 2 * math.Pi)
}
