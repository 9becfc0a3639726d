package system

import (
	"time"

	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/physics"
)

// BoundsSystem wraps entity positions onto the toroidal arena
type BoundsSystem struct {
	width, height float64
}

func NewBoundsSystem(width, height float64) *BoundsSystem {
	return &BoundsSystem{width: width, height: height}
}

func (s *BoundsSystem) Name() string { return "bounds" }

func (s *BoundsSystem) Update(w *engine.World, dt time.Duration) error {
	for _, e := range w.Transforms.All() {
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		if physics.Wrap(&tr.Pos, s.width, s.height) {
			w.Transforms.Set(e, tr)
		}
	}
	return nil
}
