package engine

import (
	"fmt"
	"math"

	"github.com/arkadyan/novablast/core"
)

// cellKey addresses one grid cell; coordinates are floor(position / cellSize)
type cellKey struct {
	X, Y int32
}

// SpatialGrid is a uniform partition of world space into square cells,
// used for broad-phase candidate generation only, never as a source of
// truth. It is rebuilt fully every tick from current Transform+Collider
// data; buckets are retained across rebuilds to avoid allocation churn
type SpatialGrid struct {
	cellSize float64
	cells    map[cellKey][]core.Entity
}

// NewSpatialGrid creates a grid with the given cell size
// Fails fast on a non-positive cell size; that is a programmer error, not
// a runtime condition
func NewSpatialGrid(cellSize float64) (*SpatialGrid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("spatial grid cell size must be positive, got %v", cellSize)
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]core.Entity),
	}, nil
}

// CellSize returns the configured cell size
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// CellOf returns the cell coordinates containing a world position
func (g *SpatialGrid) CellOf(p core.Vec2) (int32, int32) {
	return int32(math.Floor(p.X / g.cellSize)), int32(math.Floor(p.Y / g.cellSize))
}

// Insert places an entity into the single cell containing its center
// Together with the 3x3 neighborhood scan this covers colliders up to a
// radius of cellSize straddling cell boundaries
func (g *SpatialGrid) Insert(e core.Entity, p core.Vec2) {
	x, y := g.CellOf(p)
	key := cellKey{x, y}
	g.cells[key] = append(g.cells[key], e)
}

// Neighborhood invokes fn for every entity in the cell containing p and
// its 8 neighbors. Entities are inserted into exactly one cell, so each
// appears at most once per scan
func (g *SpatialGrid) Neighborhood(p core.Vec2, fn func(core.Entity)) {
	cx, cy := g.CellOf(p)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			for _, e := range g.cells[cellKey{cx + dx, cy + dy}] {
				fn(e)
			}
		}
	}
}

// Reset empties all buckets while keeping their capacity for the next rebuild
func (g *SpatialGrid) Reset() {
	for key, bucket := range g.cells {
		g.cells[key] = bucket[:0]
	}
}

// Len returns the number of entities currently in the grid
func (g *SpatialGrid) Len() int {
	n := 0
	for _, bucket := range g.cells {
		n += len(bucket)
	}
	return n
}
