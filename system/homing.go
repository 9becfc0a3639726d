package system

import (
	"time"

	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/physics"
)

// HomingSystem steers {Transform, Kinetic, Homing} entities toward their
// target with acceleration-limited steering. Entities whose target has
// died lose the homing component and continue ballistic
type HomingSystem struct{}

func NewHomingSystem() *HomingSystem {
	return &HomingSystem{}
}

func (s *HomingSystem) Name() string { return "homing" }

func (s *HomingSystem) Update(w *engine.World, dt time.Duration) error {
	sec := dt.Seconds()

	var unlock []core.Entity
	for _, e := range w.Query().With(w.Transforms).With(w.Kinetics).With(w.Homings).Execute() {
		h, ok := w.Homings.Get(e)
		if !ok {
			continue
		}

		target, ok := w.Transforms.Get(h.Target)
		if !ok || !w.IsAlive(h.Target) {
			unlock = append(unlock, e)
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

		profile := physics.HomingProfile{
			BaseSpeed:     h.BaseSpeed,
			Accel:         h.Accel,
			Drag:          h.Drag,
			ArrivalRadius: h.ArrivalRadius,
		}
		physics.ApplyHoming(&tr.Pos, &k.Vel, target.Pos, &profile, sec)

		w.Transforms.Set(e, tr)
		w.Kinetics.Set(e, k)
	}

	for _, e := range unlock {
		w.Homings.Remove(e)
	}
	return nil
}
