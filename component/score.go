package component

// ScoreComponent accumulates points, typically on the player ship
type ScoreComponent struct {
	Points int
}
