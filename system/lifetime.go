package system

import (
	"time"

	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
)

// LifetimeSystem destroys entities whose lifetime has expired
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Name() string { return "lifetime" }

func (s *LifetimeSystem) Update(w *engine.World, dt time.Duration) error {
	var expired []core.Entity
	for _, e := range w.Lifetimes.All() {
		lt, ok := w.Lifetimes.Get(e)
		if !ok {
			continue
		}
		lt.Remaining -= dt
		if lt.Remaining <= 0 {
			expired = append(expired, e)
			continue
		}
		w.Lifetimes.Set(e, lt)
	}

	for _, e := range expired {
		w.DestroyEntity(e)
	}
	return nil
}
