package engine

import (
	"errors"
	"testing"
	"time"
)

// recordingSystem counts invocations and logs the pipeline order it ran in
type recordingSystem struct {
	name  string
	calls int
	order *[]string
	dts   []time.Duration
}

func (s *recordingSystem) Name() string { return s.name }

func (s *recordingSystem) Update(w *World, dt time.Duration) error {
	s.calls++
	s.dts = append(s.dts, dt)
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
	return nil
}

type panickySystem struct{}

func (s *panickySystem) Name() string                            { return "panicky" }
func (s *panickySystem) Update(w *World, dt time.Duration) error { panic("boom") }

type failingSystem struct{}

func (s *failingSystem) Name() string                            { return "failing" }
func (s *failingSystem) Update(w *World, dt time.Duration) error { return errors.New("broken") }

func TestSchedulerConstructionValidation(t *testing.T) {
	world := NewWorld()

	if _, err := NewScheduler(world, 0, DefaultFrameDeltaCap, nil); err == nil {
		t.Error("Expected error for zero fixed step")
	}
	if _, err := NewScheduler(world, -time.Millisecond, DefaultFrameDeltaCap, nil); err == nil {
		t.Error("Expected error for negative fixed step")
	}
	if _, err := NewScheduler(world, DefaultFixedStep, 0, nil); err == nil {
		t.Error("Expected error for zero frame delta cap")
	}
	if _, err := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil); err != nil {
		t.Errorf("Expected valid construction to succeed, got %v", err)
	}
}

func TestAdvanceBeforeStartDoesNothing(t *testing.T) {
	world := NewWorld()
	sys := &recordingSystem{name: "a"}
	world.AddSystem(sys)

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	if ticks := sched.Advance(time.Second); ticks != 0 {
		t.Errorf("Expected 0 ticks while stopped, got %d", ticks)
	}
	if sys.calls != 0 {
		t.Errorf("Expected no system calls while stopped, got %d", sys.calls)
	}
}

// The first Advance after Start only establishes the frame baseline
func TestFirstAdvanceEstablishesBaseline(t *testing.T) {
	world := NewWorld()
	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()

	if ticks := sched.Advance(5 * time.Second); ticks != 0 {
		t.Errorf("Expected 0 ticks on baseline frame, got %d", ticks)
	}
	if ticks := sched.Advance(5*time.Second + 50*time.Millisecond); ticks != 3 {
		t.Errorf("Expected 3 ticks for 50ms delta, got %d", ticks)
	}
}

// 50ms at a 1/60s step yields exactly 3 ticks with a 1/600s remainder carried
func TestAccumulatorTicksAndRemainder(t *testing.T) {
	world := NewWorld()
	sys := &recordingSystem{name: "a"}
	world.AddSystem(sys)

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(0)

	if ticks := sched.Advance(50 * time.Millisecond); ticks != 3 {
		t.Errorf("Expected 3 ticks for 50ms frame, got %d", ticks)
	}
	if sys.calls != 3 {
		t.Errorf("Expected 3 system calls, got %d", sys.calls)
	}
	if sched.TickCount() != 3 {
		t.Errorf("Expected tick count 3, got %d", sched.TickCount())
	}

	// Remainder carries: another 50ms frame accumulates to 100ms total,
	// which is 6 full steps, so 3 more ticks fire
	if ticks := sched.Advance(100 * time.Millisecond); ticks != 3 {
		t.Errorf("Expected 3 ticks on second 50ms frame, got %d", ticks)
	}
	if sched.TickCount() != 6 {
		t.Errorf("Expected tick count 6, got %d", sched.TickCount())
	}
}

// A stalled frame is capped: 500ms of wall time runs at most cap/step ticks
func TestFrameDeltaCap(t *testing.T) {
	world := NewWorld()
	sys := &recordingSystem{name: "a"}
	world.AddSystem(sys)

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(0)

	ticks := sched.Advance(500 * time.Millisecond)
	if ticks != 6 {
		t.Errorf("Expected 6 ticks for capped 100ms delta, got %d", ticks)
	}
}

func TestNegativeDeltaClampedToZero(t *testing.T) {
	world := NewWorld()
	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(time.Second)

	if ticks := sched.Advance(500 * time.Millisecond); ticks != 0 {
		t.Errorf("Expected 0 ticks for backwards timestamp, got %d", ticks)
	}
}

// Every system runs exactly once per tick, in registration order
func TestSystemsRunInRegistrationOrder(t *testing.T) {
	world := NewWorld()
	var order []string
	world.AddSystem(&recordingSystem{name: "first", order: &order})
	world.AddSystem(&recordingSystem{name: "second", order: &order})
	world.AddSystem(&recordingSystem{name: "third", order: &order})

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(0)
	sched.Advance(2 * DefaultFixedStep)

	want := []string{"first", "second", "third", "first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d invocations, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Invocation %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestSystemsReceiveFixedStep(t *testing.T) {
	world := NewWorld()
	sys := &recordingSystem{name: "a"}
	world.AddSystem(sys)

	step := time.Second / 30
	sched, _ := NewScheduler(world, step, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(0)
	sched.Advance(3 * step)

	for i, dt := range sys.dts {
		if dt != step {
			t.Errorf("Tick %d: expected dt %v, got %v", i, step, dt)
		}
	}
}

// One system panicking must not take down the rest of the tick
func TestSystemPanicIsolation(t *testing.T) {
	world := NewWorld()
	var order []string
	world.AddSystem(&recordingSystem{name: "before", order: &order})
	world.AddSystem(&panickySystem{})
	world.AddSystem(&recordingSystem{name: "after", order: &order})

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(0)
	sched.Advance(DefaultFixedStep)

	want := []string{"before", "after"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d survivors, got %v", len(want), order)
	}
	if sched.TickCount() != 1 {
		t.Errorf("Expected the tick to complete, tick count %d", sched.TickCount())
	}
}

func TestSystemErrorDoesNotAbortTick(t *testing.T) {
	world := NewWorld()
	after := &recordingSystem{name: "after"}
	world.AddSystem(&failingSystem{})
	world.AddSystem(after)

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(0)
	sched.Advance(DefaultFixedStep)

	if after.calls != 1 {
		t.Errorf("Expected downstream system to run once, got %d", after.calls)
	}
}

func TestStopPreventsFutureTicks(t *testing.T) {
	world := NewWorld()
	sys := &recordingSystem{name: "a"}
	world.AddSystem(sys)

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	if !sched.IsRunning() {
		t.Error("Expected running after Start")
	}
	sched.Advance(0)
	sched.Advance(DefaultFixedStep)
	sched.Stop()
	if sched.IsRunning() {
		t.Error("Expected stopped after Stop")
	}

	if ticks := sched.Advance(10 * DefaultFixedStep); ticks != 0 {
		t.Errorf("Expected 0 ticks after Stop, got %d", ticks)
	}
	if sys.calls != 1 {
		t.Errorf("Expected 1 call total, got %d", sys.calls)
	}
}

// Restarting resets the baseline so wall time spent stopped cannot burst
func TestRestartResetsBaseline(t *testing.T) {
	world := NewWorld()
	sys := &recordingSystem{name: "a"}
	world.AddSystem(sys)

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(0)
	sched.Stop()

	sched.Start()
	if ticks := sched.Advance(10 * time.Second); ticks != 0 {
		t.Errorf("Expected baseline frame after restart, got %d ticks", ticks)
	}
}

// The collision buffer is transient per-tick state: publications from one
// tick are never visible in the next
type collisionPublisher struct{}

func (s *collisionPublisher) Name() string { return "publisher" }
func (s *collisionPublisher) Update(w *World, dt time.Duration) error {
	w.PublishCollisions([]CollisionEvent{{A: 1, B: 2}})
	return nil
}

type collisionObserver struct {
	seen []int
}

func (s *collisionObserver) Name() string { return "observer" }
func (s *collisionObserver) Update(w *World, dt time.Duration) error {
	s.seen = append(s.seen, len(w.Collisions()))
	return nil
}

func TestCollisionVisibilityWithinTick(t *testing.T) {
	world := NewWorld()
	upstream := &collisionObserver{}
	downstream := &collisionObserver{}
	world.AddSystem(upstream)
	world.AddSystem(&collisionPublisher{})
	world.AddSystem(downstream)

	sched, _ := NewScheduler(world, DefaultFixedStep, DefaultFrameDeltaCap, nil)
	sched.Start()
	sched.Advance(0)
	sched.Advance(2 * DefaultFixedStep)

	// Upstream runs before the publisher every tick, so it never sees events
	for i, n := range upstream.seen {
		if n != 0 {
			t.Errorf("Tick %d: upstream system saw %d collisions, expected 0", i, n)
		}
	}
	for i, n := range downstream.seen {
		if n != 1 {
			t.Errorf("Tick %d: downstream system saw %d collisions, expected 1", i, n)
		}
	}
}
