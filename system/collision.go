package system

import (
	"math"
	"time"

	"github.com/arkadyan/novablast/component"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
)

// CollisionSystem finds all overlapping collider pairs each tick and
// publishes one CollisionEvent per qualifying unordered pair.
//
// Pipeline: rebuild the broad-phase grid from a fresh {Transform, Collider}
// query snapshot, generate candidates from each cell's 3x3 neighborhood,
// filter by layer/mask (symmetric OR), then run the shape-appropriate
// narrow-phase test. Entities are inserted into exactly one cell and an
// entity only pairs with higher-id neighbors, so each unordered pair is
// generated at most once per tick
type CollisionSystem struct {
	grid   *engine.SpatialGrid
	events []engine.CollisionEvent
}

// NewCollisionSystem creates the subsystem with the given broad-phase cell
// size. Fails fast on a non-positive cell size
func NewCollisionSystem(cellSize float64) (*CollisionSystem, error) {
	grid, err := engine.NewSpatialGrid(cellSize)
	if err != nil {
		return nil, err
	}
	return &CollisionSystem{grid: grid}, nil
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Update(w *engine.World, dt time.Duration) error {
	s.events = s.events[:0]

	// Fresh snapshot: entities destroyed earlier this tick never enter the grid
	snapshot := w.Query().With(w.Transforms).With(w.Colliders).Execute()

	s.grid.Reset()
	for _, e := range snapshot {
		if tr, ok := w.Transforms.Get(e); ok {
			s.grid.Insert(e, tr.Pos)
		}
	}

	for _, a := range snapshot {
		ta, ok := w.Transforms.Get(a)
		if !ok {
			continue
		}
		ca, ok := w.Colliders.Get(a)
		if !ok {
			continue
		}

		s.grid.Neighborhood(ta.Pos, func(b core.Entity) {
			if b <= a {
				return
			}
			tb, ok := w.Transforms.Get(b)
			if !ok {
				return
			}
			cb, ok := w.Colliders.Get(b)
			if !ok {
				return
			}

			// One-sided mask declarations are sufficient
			if ca.Mask&cb.Layer == 0 && cb.Mask&ca.Layer == 0 {
				return
			}

			if !overlaps(ta.Pos, ca, tb.Pos, cb) {
				return
			}

			s.events = append(s.events, engine.CollisionEvent{
				A:        a,
				B:        b,
				LayerA:   ca.Layer,
				LayerB:   cb.Layer,
				Distance: core.Distance(ta.Pos, tb.Pos),
			})
		})
	}

	w.PublishCollisions(s.events)
	return nil
}

// overlaps dispatches the narrow-phase test for a shape pair
func overlaps(pa core.Vec2, ca component.ColliderComponent, pb core.Vec2, cb component.ColliderComponent) bool {
	switch {
	case ca.Shape == component.ShapeCircle && cb.Shape == component.ShapeCircle:
		return circleCircle(pa, ca.Radius, pb, cb.Radius)
	case ca.Shape == component.ShapeCircle && cb.Shape == component.ShapeBox:
		return circleBox(pa, ca.Radius, pb, cb.HalfExtents)
	case ca.Shape == component.ShapeBox && cb.Shape == component.ShapeCircle:
		return circleBox(pb, cb.Radius, pa, ca.HalfExtents)
	default:
		return boxBox(pa, ca.HalfExtents, pb, cb.HalfExtents)
	}
}

// circleCircle compares squared center distance against squared radius sum,
// avoiding a square root in the hot path
func circleCircle(pa core.Vec2, ra float64, pb core.Vec2, rb float64) bool {
	sum := ra + rb
	return core.DistanceSq(pa, pb) < sum*sum
}

// circleBox clamps the circle center onto the box and tests the closest point
func circleBox(pc core.Vec2, r float64, pb core.Vec2, half core.Vec2) bool {
	closest := core.Vec2{
		X: math.Max(pb.X-half.X, math.Min(pc.X, pb.X+half.X)),
		Y: math.Max(pb.Y-half.Y, math.Min(pc.Y, pb.Y+half.Y)),
	}
	return core.DistanceSq(pc, closest) < r*r
}

// boxBox is an axis-aligned interval overlap test
func boxBox(pa, halfA, pb, halfB core.Vec2) bool {
	return math.Abs(pa.X-pb.X) < halfA.X+halfB.X &&
		math.Abs(pa.Y-pb.Y) < halfA.Y+halfB.Y
}
