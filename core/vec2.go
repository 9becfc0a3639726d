package core

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns vector magnitude
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns the unit vector, zero-safe
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen limits the vector to maxLen while preserving direction
// Returns the unchanged vector if magnitude <= maxLen
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	s := maxLen / l
	return Vec2{v.X * s, v.Y * s}
}

// Rotated rotates the vector by angle radians counter-clockwise
func (v Vec2) Rotated(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// FromAngle returns the unit vector pointing at angle radians
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// DistanceSq returns squared distance, for hot-path overlap tests
func DistanceSq(a, b Vec2) float64 {
	return a.Sub(b).LenSq()
}
