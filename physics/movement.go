package physics

import "github.com/arkadyan/novablast/core"

// Integrate performs semi-implicit Euler integration:
// v = v + a*dt; p = p + v*dt. dt is in seconds
func Integrate(pos, vel *core.Vec2, accel core.Vec2, dt float64) {
	vel.X += accel.X * dt
	vel.Y += accel.Y * dt
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}

// CapSpeed limits the velocity magnitude to maxSpeed, preserving direction
// Returns true if velocity was clamped
func CapSpeed(vel *core.Vec2, maxSpeed float64) bool {
	if maxSpeed <= 0 {
		return false
	}
	magSq := vel.LenSq()
	if magSq <= maxSpeed*maxSpeed {
		return false
	}
	*vel = vel.ClampLen(maxSpeed)
	return true
}

// Wrap maps a position onto the toroidal arena [0,width) x [0,height)
// Returns true if the position wrapped on either axis
func Wrap(pos *core.Vec2, width, height float64) bool {
	wrapped := false
	if pos.X < 0 {
		pos.X += width
		wrapped = true
	} else if pos.X >= width {
		pos.X -= width
		wrapped = true
	}
	if pos.Y < 0 {
		pos.Y += height
		wrapped = true
	} else if pos.Y >= height {
		pos.Y -= height
		wrapped = true
	}
	return wrapped
}
