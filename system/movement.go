package system

import (
	"time"

	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/physics"
)

// MovementSystem integrates all {Transform, Kinetic} entities with
// semi-implicit Euler at the fixed step
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Update(w *engine.World, dt time.Duration) error {
	sec := dt.Seconds()

	for _, e := range w.Query().With(w.Transforms).With(w.Kinetics).Execute() {
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		k, ok := w.Kinetics.Get(e)
		if !ok {
			continue
		}

		physics.Integrate(&tr.Pos, &k.Vel, k.Accel, sec)
		physics.CapSpeed(&k.Vel, k.MaxSpeed)
		tr.Rot += k.AngVel * sec

		w.Transforms.Set(e, tr)
		w.Kinetics.Set(e, k)
	}
	return nil
}
