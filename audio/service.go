package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/arkadyan/novablast/event"
)

const sampleRate = beep.SampleRate(44100)

// Service plays short generated tone cues for gameplay events
// It subscribes to the drained gameplay event stream, never to raw
// collision events. If the speaker cannot initialize the service stays
// disabled and every call is a no-op
type Service struct {
	enabled bool
	volume  float64
}

// NewService initializes the speaker; a failure disables audio rather than
// aborting the game
func NewService(volume float64) (*Service, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return &Service{}, fmt.Errorf("speaker init: %w", err)
	}
	return &Service{enabled: true, volume: volume}, nil
}

// Enabled reports whether the speaker is available
func (s *Service) Enabled() bool {
	return s.enabled
}

// Handle plays the cue mapped to a gameplay event
func (s *Service) Handle(ev event.GameEvent) {
	if !s.enabled {
		return
	}
	switch ev.Type {
	case event.ProjectileFired:
		s.tone(880, 40*time.Millisecond)
	case event.MissileFired:
		s.tone(660, 90*time.Millisecond)
	case event.AsteroidSplit:
		s.tone(220, 80*time.Millisecond)
	case event.AsteroidDestroyed:
		s.tone(180, 120*time.Millisecond)
	case event.ShipHit:
		s.tone(110, 200*time.Millisecond)
	case event.ShipDestroyed:
		s.tone(80, 500*time.Millisecond)
	case event.PowerUpCollected:
		s.tone(1320, 120*time.Millisecond)
	case event.WaveStarted:
		s.tone(523, 150*time.Millisecond)
	case event.BossSpawned:
		s.tone(147, 400*time.Millisecond)
	case event.BossDefeated:
		s.tone(1047, 400*time.Millisecond)
	}
}

// tone plays a sine blip at the given frequency
func (s *Service) tone(freq float64, d time.Duration) {
	sine, err := generators.SinTone(sampleRate, int(freq))
	if err != nil {
		return
	}
	cue := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   s.volume,
	}
	speaker.Play(cue)
}
