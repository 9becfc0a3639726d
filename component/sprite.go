package component

// SpriteComponent is presentation-only data read by the renderer after tick boundaries
type SpriteComponent struct {
	Glyph rune
}
