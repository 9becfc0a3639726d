package physics

import "github.com/arkadyan/novablast/core"

// HomingProfile defines acceleration-limited homing behavior
type HomingProfile struct {
	BaseSpeed float64 // target cruising speed, units/sec
	Accel     float64 // acceleration toward target, units/sec^2
	Drag      float64 // deceleration when overspeed, 1/sec

	// Arrival steering (0 = disabled)
	ArrivalRadius float64 // distance at which accel ramps down

	// Dead zone snap (0 = use default settling distance)
	DeadZone float64
}

const (
	defaultDeadZone      = 0.25 // units
	settleSpeedThreshold = 0.5  // units/sec
)

// ApplyHoming steers velocity toward the target position with bounded
// acceleration. Returns true when the entity has settled: within the dead
// zone and near-stationary, snapped exactly onto the target
func ApplyHoming(pos, vel *core.Vec2, target core.Vec2, profile *HomingProfile, dt float64) bool {
	delta := target.Sub(*pos)
	dist := delta.Len()

	deadZone := profile.DeadZone
	if deadZone == 0 {
		deadZone = defaultDeadZone
	}

	if dist < deadZone && vel.Len() < settleSpeedThreshold {
		*pos = target
		*vel = core.Vec2{}
		return true
	}

	// Arrival steering: ramp acceleration down close to the target
	effectiveAccel := profile.Accel
	if profile.ArrivalRadius > 0 && dist < profile.ArrivalRadius {
		effectiveAccel *= dist / profile.ArrivalRadius
	}

	dir := delta.Normalized()
	vel.X += dir.X * effectiveAccel * dt
	vel.Y += dir.Y * effectiveAccel * dt

	// Drag bleeds off excess speed above the cruising speed
	speed := vel.Len()
	if speed > profile.BaseSpeed && speed > 0 {
		excess := speed - profile.BaseSpeed
		dragAmount := profile.Drag * dt * (excess / speed)
		if dragAmount > 1 {
			dragAmount = 1
		}
		vel.X -= vel.X * dragAmount
		vel.Y -= vel.Y * dragAmount
	}

	return false
}
