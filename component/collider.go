package component

import "github.com/arkadyan/novablast/core"

// Shape selects the narrow-phase test for a collider
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeBox
)

// ColliderComponent describes an entity's collision volume and filtering
// Radius is used for circles, HalfExtents for boxes (axis-aligned)
// A pair is tested when either side's mask contains the other side's layer
type ColliderComponent struct {
	Shape       Shape
	Radius      float64
	HalfExtents core.Vec2
	Layer       core.Layer
	Mask        core.Layer
}
