package component

import "github.com/arkadyan/novablast/core"

// HomingComponent steers its entity toward a target entity with bounded acceleration
type HomingComponent struct {
	Target        core.Entity
	BaseSpeed     float64 // cruising speed, units/sec
	Accel         float64 // steering acceleration, units/sec^2
	Drag          float64 // deceleration factor when overspeed, 1/sec
	ArrivalRadius float64 // accel ramps down inside this distance, 0 = disabled
}
