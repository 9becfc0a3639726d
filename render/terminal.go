package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/parameter"
)

// Renderer draws the world onto a tcell screen
// It runs once per display frame, strictly after all ticks for the frame
// have completed, and reads component data without ever mutating it
type Renderer struct {
	screen tcell.Screen
	arenaW float64
	arenaH float64
}

func NewRenderer(screen tcell.Screen, arenaW, arenaH float64) *Renderer {
	return &Renderer{screen: screen, arenaW: arenaW, arenaH: arenaH}
}

// Draw renders all sprite-carrying entities plus the HUD line
func (r *Renderer) Draw(w *engine.World, wave int) {
	r.screen.Clear()

	sw, sh := r.screen.Size()
	if sh > 1 {
		sh-- // top row is the HUD
	}

	for _, e := range w.Query().With(w.Transforms).With(w.Sprites).Execute() {
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		sp, ok := w.Sprites.Get(e)
		if !ok {
			continue
		}

		x := int(tr.Pos.X / r.arenaW * float64(sw))
		y := 1 + int(tr.Pos.Y/r.arenaH*float64(sh))
		if x < 0 || x >= sw || y < 1 || y > sh {
			continue
		}
		r.screen.SetContent(x, y, sp.Glyph, nil, r.styleFor(w, e))
	}

	r.drawHUD(w, wave, sw)
	r.screen.Show()
}

// styleFor colors an entity by its collision layer
func (r *Renderer) styleFor(w *engine.World, e core.Entity) tcell.Style {
	base := tcell.StyleDefault
	c, ok := w.Colliders.Get(e)
	if !ok {
		return base
	}
	switch c.Layer {
	case parameter.LayerShip:
		if h, ok := w.Healths.Get(e); ok && h.InvulnerableFor > 0 {
			return base.Foreground(tcell.ColorDarkGreen)
		}
		return base.Foreground(tcell.ColorGreen)
	case parameter.LayerProjectile:
		return base.Foreground(tcell.ColorYellow)
	case parameter.LayerPowerUp:
		return base.Foreground(tcell.ColorAqua)
	case parameter.LayerBoss:
		return base.Foreground(tcell.ColorRed)
	default:
		return base.Foreground(tcell.ColorSilver)
	}
}

func (r *Renderer) drawHUD(w *engine.World, wave int, width int) {
	score, health, shield := 0, 0, false
	for _, e := range w.Ships.All() {
		if sc, ok := w.Scores.Get(e); ok {
			score = sc.Points
		}
		if h, ok := w.Healths.Get(e); ok {
			health = h.Current
		}
		if fx, ok := w.Effects.Get(e); ok {
			shield = fx.ShieldFor > 0
		}
	}

	text := fmt.Sprintf(" score %d  wave %d  hull %d", score, wave, health)
	if shield {
		text += "  [shield]"
	}
	if w.Ships.Count() == 0 {
		text = " GAME OVER - press r to restart, q to quit"
	}

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		r.screen.SetContent(x, 0, ch, nil, style)
	}
}
