package component

// PowerUpKind identifies a collectible effect
type PowerUpKind uint8

const (
	PowerShield PowerUpKind = iota
	PowerRapidFire
	PowerSpreadShot
)

// PowerUpComponent marks a collectible drop
type PowerUpComponent struct {
	Kind PowerUpKind
}
