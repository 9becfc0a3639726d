package system

import (
	"time"

	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
)

// ControlSystem converts ship control flags (set by input between frames)
// into acceleration and angular velocity for the movement system
type ControlSystem struct{}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{}
}

func (s *ControlSystem) Name() string { return "control" }

func (s *ControlSystem) Update(w *engine.World, dt time.Duration) error {
	for _, e := range w.Query().With(w.Ships).With(w.Transforms).With(w.Kinetics).Execute() {
		ship, ok := w.Ships.Get(e)
		if !ok {
			continue
		}
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		k, ok := w.Kinetics.Get(e)
		if !ok {
			continue
		}

		k.AngVel = float64(ship.Turning) * ship.TurnRate
		if ship.Thrusting {
			k.Accel = core.FromAngle(tr.Rot).Scale(ship.Thrust)
		} else {
			k.Accel = core.Vec2{}
		}

		w.Kinetics.Set(e, k)
	}
	return nil
}
