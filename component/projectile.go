package component

import "github.com/arkadyan/novablast/core"

// ProjectileComponent marks a damage-dealing transient entity
// Owner receives score credit for kills
type ProjectileComponent struct {
	Damage int
	Owner  core.Entity
}
