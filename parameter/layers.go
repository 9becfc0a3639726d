package parameter

import "github.com/arkadyan/novablast/core"

// Collision layers
const (
	LayerShip core.Layer = 1 << iota
	LayerAsteroid
	LayerProjectile
	LayerPowerUp
	LayerBoss
)

// Collision masks; a one-sided declaration is sufficient since the
// collision system tests masks with a symmetric OR
const (
	MaskShip       = LayerAsteroid | LayerBoss | LayerPowerUp
	MaskProjectile = LayerAsteroid | LayerBoss
	MaskBossShot   core.Layer = LayerShip
)
