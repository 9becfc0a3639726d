package engine

import "github.com/arkadyan/novablast/core"

// CollisionEvent is a transient, per-tick record of one overlapping pair
// Each unordered pair is reported at most once per tick, with A < B
// Events are consumed by downstream systems within the same tick and
// discarded at the start of the next
type CollisionEvent struct {
	A, B     core.Entity
	LayerA   core.Layer
	LayerB   core.Layer
	Distance float64 // Euclidean distance between collider centers
}

// Involves reports whether the event touches the given entity
func (ev CollisionEvent) Involves(e core.Entity) bool {
	return ev.A == e || ev.B == e
}

// Other returns the counterpart of e in the pair, or NoEntity if e is not involved
func (ev CollisionEvent) Other(e core.Entity) core.Entity {
	switch e {
	case ev.A:
		return ev.B
	case ev.B:
		return ev.A
	}
	return core.NoEntity
}
