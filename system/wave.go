package system

import (
	"math/rand"
	"time"

	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/event"
	"github.com/arkadyan/novablast/parameter"
)

// WaveSystem drives wave progression: when the field is clear of asteroids
// and bosses, the next wave spawns. Every bossInterval-th wave is a boss
// wave; ordinary waves spawn baseCount + perWave*(wave-1) large asteroids
// at the arena edge, aimed loosely inward
type WaveSystem struct {
	rng    *rand.Rand
	width  float64
	height float64

	baseCount    int
	perWave      int
	bossInterval int

	wave int
}

func NewWaveSystem(rng *rand.Rand, width, height float64, baseCount, perWave, bossInterval int) *WaveSystem {
	return &WaveSystem{
		rng:          rng,
		width:        width,
		height:       height,
		baseCount:    baseCount,
		perWave:      perWave,
		bossInterval: bossInterval,
	}
}

func (s *WaveSystem) Name() string { return "wave" }

// Wave returns the current wave number, 0 before the first spawn
func (s *WaveSystem) Wave() int { return s.wave }

// Reset rewinds progression to before the first wave, for session restarts
func (s *WaveSystem) Reset() { s.wave = 0 }

// SetTuning applies live-tuned wave parameters
func (s *WaveSystem) SetTuning(baseCount, perWave, bossInterval int) {
	if baseCount >= 0 {
		s.baseCount = baseCount
	}
	if perWave >= 0 {
		s.perWave = perWave
	}
	if bossInterval > 0 {
		s.bossInterval = bossInterval
	}
}

func (s *WaveSystem) Update(w *engine.World, dt time.Duration) error {
	// The session is over without a ship; progression pauses
	if w.Ships.Count() == 0 {
		return nil
	}
	if w.Asteroids.Count() > 0 || w.Bosses.Count() > 0 {
		return nil
	}

	s.wave++

	if s.wave%s.bossInterval == 0 {
		SpawnBoss(w, core.Vec2{X: s.width / 2, Y: s.height * 0.2})
		w.PushEvent(event.GameEvent{
			Type:    event.BossSpawned,
			Payload: &event.WavePayload{Wave: s.wave},
		})
		return nil
	}

	count := s.baseCount + s.perWave*(s.wave-1)
	for i := 0; i < count; i++ {
		s.spawnEdgeAsteroid(w)
	}
	w.PushEvent(event.GameEvent{
		Type:    event.WaveStarted,
		Payload: &event.WavePayload{Wave: s.wave},
	})
	return nil
}

// spawnEdgeAsteroid places a large asteroid on a random arena edge with a
// velocity biased toward the interior, keeping spawns away from the ship
func (s *WaveSystem) spawnEdgeAsteroid(w *engine.World) {
	var pos core.Vec2
	switch s.rng.Intn(4) {
	case 0:
		pos = core.Vec2{X: s.rng.Float64() * s.width, Y: 0}
	case 1:
		pos = core.Vec2{X: s.rng.Float64() * s.width, Y: s.height - 1}
	case 2:
		pos = core.Vec2{X: 0, Y: s.rng.Float64() * s.height}
	default:
		pos = core.Vec2{X: s.width - 1, Y: s.rng.Float64() * s.height}
	}

	center := core.Vec2{X: s.width / 2, Y: s.height / 2}
	inward := center.Sub(pos).Normalized()
	jitter := randomDirection(s.rng).Scale(0.5)
	speed := parameter.AsteroidMinSpeed + s.rng.Float64()*(parameter.AsteroidMaxSpeed-parameter.AsteroidMinSpeed)
	vel := inward.Add(jitter).Normalized().Scale(speed)

	SpawnAsteroid(w, pos, vel, parameter.AsteroidMaxSize)
}
