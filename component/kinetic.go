package component

import "github.com/arkadyan/novablast/core"

// KineticComponent holds linear and angular motion state
// Integrated every tick by the movement system; MaxSpeed of zero means uncapped
type KineticComponent struct {
	Vel      core.Vec2
	Accel    core.Vec2
	AngVel   float64 // radians per second
	MaxSpeed float64
}
