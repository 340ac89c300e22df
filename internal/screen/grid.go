// Package screen draws the HUD cell buffer and the cave-in canvas with Ebitengine.
package screen

import (
	"image/color"

	"github.com/deepdig/deepdig/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 glyphs are 7x13; this centers them in a 16x16 cell.
const (
	glyphOffsetX = 4
	glyphOffsetY = 1
)

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	face  *text.GoXFace
	CellW int
	CellH int
}

// NewGridRenderer creates a renderer for the given cell dimensions.
func NewGridRenderer(cellW, cellH int) *GridRenderer {
	return &GridRenderer{
		face:  text.NewGoXFace(basicfont.Face7x13),
		CellW: cellW,
		CellH: cellH,
	}
}

// Draw renders the entire CellBuffer to the screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *render.CellBuffer) {
	cw, ch := float32(r.CellW), float32(r.CellH)
	var op text.DrawOptions

	for y := range buf.Rows {
		for x := range buf.Cols {
			cell := buf.Cells[y*buf.Cols+x]
			px := float32(x * r.CellW)
			py := float32(y * r.CellH)

			if cell.BG != render.ColorBlack {
				vector.DrawFilledRect(screen, px, py, cw, ch, render.Palette[cell.BG], false)
			}

			switch cell.Glyph {
			case ' ', 0:
			case render.GlyphFull:
				vector.DrawFilledRect(screen, px, py+1, cw, ch-2, render.Palette[cell.FG], false)
			case render.GlyphShade:
				c := render.Palette[cell.FG]
				vector.DrawFilledRect(screen, px, py+1, cw, ch-2, color.NRGBA{c.R, c.G, c.B, 64}, false)
			default:
				op = text.DrawOptions{}
				op.GeoM.Translate(float64(px)+glyphOffsetX, float64(py)+glyphOffsetY)
				op.ColorScale.ScaleWithColor(render.Palette[cell.FG])
				text.Draw(screen, string(cell.Glyph), r.face, &op)
			}
		}
	}
}
