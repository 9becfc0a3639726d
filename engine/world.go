package engine

import (
	"time"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/event"
)

// System is a stateful unit invoked once per simulation tick
// Systems run in registration order; that order is authoritative for the
// lifetime of the World and is never reordered at runtime. A returned error
// is reported by the scheduler and isolated to that system for that tick
type System interface {
	Name() string
	Update(w *World, dt time.Duration) error
}

// World owns all component data, entity liveness, and the ordered system
// pipeline. Exactly one World is alive per game session; a new session
// constructs a fresh World. The World is exclusively owned by the
// scheduler's execution thread
type World struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}
	systems      []System

	events     *event.Queue
	collisions []CollisionEvent

	// Component stores, public for direct system access
	// Stores do not consult the liveness set: Set on a destroyed handle
	// would resurface it in query results. Attach components only to
	// handles obtained from CreateEntity and not yet destroyed
	Transforms  *Store[component.TransformComponent]
	Kinetics    *Store[component.KineticComponent]
	Colliders   *Store[component.ColliderComponent]
	Healths     *Store[component.HealthComponent]
	Homings     *Store[component.HomingComponent]
	Weapons     *Store[component.WeaponComponent]
	Projectiles *Store[component.ProjectileComponent]
	Asteroids   *Store[component.AsteroidComponent]
	Ships       *Store[component.ShipComponent]
	Bosses      *Store[component.BossComponent]
	PowerUps    *Store[component.PowerUpComponent]
	Effects     *Store[component.EffectComponent]
	Lifetimes   *Store[component.LifetimeComponent]
	Sprites     *Store[component.SpriteComponent]
	Scores      *Store[component.ScoreComponent]

	// Type-erased view of every store, for bulk lifecycle operations
	allStores []AnyStore
}

// NewWorld creates an empty ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		events:       event.NewQueue(),

		Transforms:  NewStore[component.TransformComponent](),
		Kinetics:    NewStore[component.KineticComponent](),
		Colliders:   NewStore[component.ColliderComponent](),
		Healths:     NewStore[component.HealthComponent](),
		Homings:     NewStore[component.HomingComponent](),
		Weapons:     NewStore[component.WeaponComponent](),
		Projectiles: NewStore[component.ProjectileComponent](),
		Asteroids:   NewStore[component.AsteroidComponent](),
		Ships:       NewStore[component.ShipComponent](),
		Bosses:      NewStore[component.BossComponent](),
		PowerUps:    NewStore[component.PowerUpComponent](),
		Effects:     NewStore[component.EffectComponent](),
		Lifetimes:   NewStore[component.LifetimeComponent](),
		Sprites:     NewStore[component.SpriteComponent](),
		Scores:      NewStore[component.ScoreComponent](),
	}

	w.allStores = []AnyStore{
		w.Transforms,
		w.Kinetics,
		w.Colliders,
		w.Healths,
		w.Homings,
		w.Weapons,
		w.Projectiles,
		w.Asteroids,
		w.Ships,
		w.Bosses,
		w.PowerUps,
		w.Effects,
		w.Lifetimes,
		w.Sprites,
		w.Scores,
	}

	return w
}

// CreateEntity allocates a fresh, never-before-live handle; always succeeds
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity retires an entity and purges it from every component store
// Idempotent: destroying a dead or unknown id is a no-op, never an error
func (w *World) DestroyEntity(e core.Entity) {
	if _, ok := w.alive[e]; !ok {
		return
	}
	delete(w.alive, e)
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// IsAlive reports whether an entity handle is currently live
func (w *World) IsAlive(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// Clear removes all entities and components from the world
// Handle allocation continues from where it left off, so cleared handles
// stay retired
func (w *World) Clear() {
	w.alive = make(map[core.Entity]struct{})
	w.collisions = nil
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem appends a system to the pipeline; call order is execution order
func (w *World) AddSystem(system System) {
	if system == nil {
		return
	}
	w.systems = append(w.systems, system)
}

// Systems returns a copy of the registered pipeline in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// PushEvent emits a gameplay event for the shell (audio, HUD) to drain
func (w *World) PushEvent(ev event.GameEvent) {
	w.events.Push(ev)
}

// DrainEvents returns and clears pending gameplay events
// Called by the shell between frames, never during a tick
func (w *World) DrainEvents() []event.GameEvent {
	return w.events.Drain()
}

// PublishCollisions hands this tick's collision events to downstream systems
// Called by the collision system; the buffer is cleared at the next tick start
func (w *World) PublishCollisions(events []CollisionEvent) {
	w.collisions = events
}

// Collisions returns the collision events produced earlier in the current tick
// Systems registered before the collision system see an empty slice
func (w *World) Collisions() []CollisionEvent {
	return w.collisions
}

// beginTick clears transient per-tick state before any system runs
func (w *World) beginTick() {
	w.collisions = nil
}
