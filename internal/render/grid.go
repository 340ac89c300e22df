package render

// Block glyphs the screen renderer fills as solid or stippled cells
// instead of looking them up in the font.
const (
	GlyphFull  = '█'
	GlyphShade = '░'
)

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph rune
	FG    uint8 // palette index
	BG    uint8 // palette index
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph rune, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return blank
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// ClearRect blanks a w x h block starting at (x, y).
func (b *CellBuffer) ClearRect(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, ' ', ColorWhite, ColorBlack)
		}
	}
}

// WriteString writes s starting at (x, y), one rune per cell, and returns
// the column after the last rune.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	for _, ch := range s {
		b.Set(x, y, ch, fg, bg)
		x++
	}
	return x
}

// Bar draws a w-cell gauge at (x, y) filled to frac (clamped to [0, 1]).
func (b *CellBuffer) Bar(x, y, w int, frac float64, fg uint8) {
	frac = min(max(frac, 0), 1)
	filled := int(frac * float64(w))
	for i := range w {
		if i < filled {
			b.Set(x+i, y, GlyphFull, fg, ColorBlack)
		} else {
			b.Set(x+i, y, GlyphShade, ColorDarkGray, ColorBlack)
		}
	}
}

// Row returns the glyphs of row y as a string, trailing blanks included.
func (b *CellBuffer) Row(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	out := make([]rune, b.Cols)
	for x := range b.Cols {
		out[x] = b.Cells[y*b.Cols+x].Glyph
	}
	return string(out)
}
