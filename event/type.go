package event

// Type represents the kind of gameplay event
// These are derived from kernel output by gameplay systems; the audio and
// HUD layers subscribe to them, never to raw collision events
type Type int

const (
	// ProjectileFired is emitted when the ship fires. Payload: nil
	ProjectileFired Type = iota

	// MissileFired is emitted when a homing missile launches. Payload: nil
	MissileFired

	// ShipHit is emitted when the ship takes damage. Payload: nil
	ShipHit

	// ShipDestroyed ends the session. Payload: nil
	ShipDestroyed

	// AsteroidSplit is emitted when a destroyed asteroid breaks apart. Payload: nil
	AsteroidSplit

	// AsteroidDestroyed is emitted when an asteroid dies outright. Payload: *ScorePayload
	AsteroidDestroyed

	// PowerUpCollected is emitted on pickup. Payload: nil
	PowerUpCollected

	// WaveStarted announces a new wave. Payload: *WavePayload
	WaveStarted

	// BossSpawned announces a boss wave. Payload: *WavePayload
	BossSpawned

	// BossDefeated is emitted when a boss dies. Payload: *ScorePayload
	BossDefeated
)

// WavePayload carries wave progression data
type WavePayload struct {
	Wave int
}

// ScorePayload carries points awarded for a kill
type ScorePayload struct {
	Points int
}
