package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultFixedStep advances the simulation at 60 ticks per second
	DefaultFixedStep = time.Second / 60

	// DefaultFrameDeltaCap bounds a single frame's wall-clock delta,
	// preventing unbounded catch-up work after a stall
	DefaultFrameDeltaCap = 100 * time.Millisecond
)

// Scheduler owns the fixed-timestep accumulator loop and drives the
// ordered system pipeline. The host delivers a monotonic timestamp each
// display frame via Advance; the scheduler converts consecutive
// timestamps into frame deltas, accumulates them, and runs zero or more
// constant-size ticks. Leftover sub-step time is carried forward, never
// dropped, so the long-run average tick rate converges to wall-clock rate
type Scheduler struct {
	world         *World
	fixedStep     time.Duration
	frameDeltaCap time.Duration

	accumulator time.Duration
	lastTime    time.Duration
	hasLast     bool

	running   atomic.Bool
	tickCount uint64

	log *zap.Logger
}

// NewScheduler creates a scheduler for the given world
// Non-positive step or cap values fail fast at construction, before the
// loop starts. A nil logger is replaced with a no-op logger
func NewScheduler(world *World, fixedStep, frameDeltaCap time.Duration, log *zap.Logger) (*Scheduler, error) {
	if fixedStep <= 0 {
		return nil, fmt.Errorf("fixed timestep must be positive, got %v", fixedStep)
	}
	if frameDeltaCap <= 0 {
		return nil, fmt.Errorf("frame delta cap must be positive, got %v", frameDeltaCap)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		world:         world,
		fixedStep:     fixedStep,
		frameDeltaCap: frameDeltaCap,
		log:           log,
	}, nil
}

// Start transitions Stopped -> Running and resets the frame baseline so a
// stale timestamp from a previous run cannot produce a burst of ticks
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.hasLast = false
		s.log.Info("scheduler started",
			zap.Duration("fixed_step", s.fixedStep),
			zap.Duration("frame_delta_cap", s.frameDeltaCap))
	}
}

// Stop transitions Running -> Stopped
// Only future frames are prevented; an in-flight tick always completes
func (s *Scheduler) Stop() {
	if s.running.CompareAndSwap(true, false) {
		s.log.Info("scheduler stopped", zap.Uint64("ticks", s.tickCount))
	}
}

// IsRunning reports the scheduler state
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

// TickCount returns the number of completed simulation ticks
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount
}

// FixedStep returns the configured simulation step
func (s *Scheduler) FixedStep() time.Duration {
	return s.fixedStep
}

// Advance is the per-display-frame callback
// now must be monotonic (e.g. time.Since of a fixed origin). Returns the
// number of simulation ticks run for this frame: floor(accumulator/step),
// bounded by the frame delta cap. Presentation happens once per frame
// regardless of how many ticks ran
func (s *Scheduler) Advance(now time.Duration) int {
	if !s.running.Load() {
		return 0
	}

	if !s.hasLast {
		s.lastTime = now
		s.hasLast = true
		return 0
	}

	frameDelta := now - s.lastTime
	s.lastTime = now
	if frameDelta < 0 {
		frameDelta = 0
	}
	if frameDelta > s.frameDeltaCap {
		frameDelta = s.frameDeltaCap
	}

	s.accumulator += frameDelta

	ticks := 0
	for s.accumulator >= s.fixedStep {
		s.runTick()
		s.accumulator -= s.fixedStep
		ticks++
	}
	return ticks
}

// runTick executes one simulation tick: every registered system, in
// registration order, exactly once. A tick always runs to completion;
// there is no mid-tick cancellation
func (s *Scheduler) runTick() {
	s.world.beginTick()
	for _, system := range s.world.systems {
		s.runSystem(system)
	}
	s.tickCount++
}

// runSystem isolates one system's failure from the rest of the tick
// A panic or returned error is reported and that system's remaining work
// for the tick is skipped; the pipeline itself never aborts
func (s *Scheduler) runSystem(system System) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("system panicked, skipped for this tick",
				zap.String("system", system.Name()),
				zap.Uint64("tick", s.tickCount),
				zap.Any("panic", r))
		}
	}()

	if err := system.Update(s.world, s.fixedStep); err != nil {
		s.log.Warn("system reported failure",
			zap.String("system", system.Name()),
			zap.Uint64("tick", s.tickCount),
			zap.Error(err))
	}
}
