package component

// ShipComponent is the player ship's control state
// Turning is -1, 0, or +1; Thrusting accelerates along the facing direction
type ShipComponent struct {
	Thrust    float64 // units/sec^2
	TurnRate  float64 // radians/sec
	Thrusting bool
	Turning   int
}
