package screen

import (
	"image/color"

	"github.com/deepdig/deepdig/internal/game"
	"github.com/deepdig/deepdig/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	shaftColor  = color.RGBA{R: 30, G: 22, B: 18, A: 255}
	frameColor  = color.RGBA{R: 120, G: 96, B: 70, A: 255}
	minerColor  = render.Palette[render.ColorYellow]
	rockColor   = color.RGBA{R: 110, G: 100, B: 92, A: 255}
	rockEdge    = color.RGBA{R: 60, G: 52, B: 46, A: 255}
	buriedShade = color.RGBA{R: 120, G: 10, B: 10, A: 110}
	clearShade  = color.RGBA{R: 10, G: 110, B: 30, A: 90}
)

// DrawCaveIn renders a run's canvas with its top-left corner at (ox, oy).
func DrawCaveIn(screen *ebiten.Image, v *game.MinigameView, ox, oy float32) {
	w, h := float32(v.CanvasWidth), float32(v.CanvasHeight)
	vector.DrawFilledRect(screen, ox, oy, w, h, shaftColor, false)

	for _, r := range v.Rocks {
		// Rocks enter from above the canvas; clip them to its top edge.
		y0 := max(float32(r.Y), 0)
		y1 := min(float32(r.Y+r.H), h)
		if y1 <= y0 {
			continue
		}
		x := ox + float32(r.X)
		vector.DrawFilledRect(screen, x, oy+y0, float32(r.W), y1-y0, rockColor, false)
		vector.StrokeRect(screen, x, oy+y0, float32(r.W), y1-y0, 1, rockEdge, false)
	}

	p := v.Player
	vector.DrawFilledRect(screen, ox+float32(p.X), oy+float32(p.Y), float32(p.W), float32(p.H), minerColor, false)

	switch v.Outcome {
	case game.OutcomeLost:
		vector.DrawFilledRect(screen, ox, oy, w, h, buriedShade, false)
	case game.OutcomeWon:
		vector.DrawFilledRect(screen, ox, oy, w, h, clearShade, false)
	}
	vector.StrokeRect(screen, ox, oy, w, h, 3, frameColor, false)
}
