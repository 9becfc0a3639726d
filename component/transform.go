package component

import "github.com/arkadyan/novablast/core"

// TransformComponent is the spatial state of an entity
type TransformComponent struct {
	Pos   core.Vec2
	Rot   float64 // radians, 0 = +X
	Scale float64
}
