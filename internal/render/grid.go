package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ashshourov/OrbitSphere/internal/palette"
)

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // atlas code (0-127)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

var blank = Cell{Glyph: ' ', FG: palette.White, BG: palette.Black}

// CellBuffer is a 2D grid of character cells. Each text layer of the
// viewer owns one and is drawn with its group's opacity.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one
// cell; runes outside printable ASCII become '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch < 32 || ch > 126 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// WriteCentered writes s centered on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	b.WriteString((b.Cols-len([]rune(s)))/2, y, s, fg, bg)
}

// Text returns row y as a string with trailing blanks trimmed.
func (b *CellBuffer) Text(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	row := make([]byte, b.Cols)
	end := 0
	for x := 0; x < b.Cols; x++ {
		g := b.Cells[y*b.Cols+x].Glyph
		if g == 0 {
			g = ' '
		}
		row[x] = g
		if g != ' ' {
			end = x + 1
		}
	}
	return string(row[:end])
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders buf to the screen with every cell scaled by alpha. Black
// backgrounds are left transparent so layers stack.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer, alpha float64) {
	if alpha <= 0 {
		return
	}
	a := float32(min(alpha, 1))
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != palette.Black {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(palette.RGBA[cell.BG])
				op.ColorScale.ScaleAlpha(a)
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(palette.RGBA[cell.FG])
				op.ColorScale.ScaleAlpha(a)
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// DrawLabel renders s at sub-pixel screen coordinates. Item labels use it
// because items move smoothly between cells.
func (r *GridRenderer) DrawLabel(screen *ebiten.Image, s string, fg uint8, px, py, alpha float64) {
	if alpha <= 0 {
		return
	}
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)
	for i, ch := range []byte(s) {
		if ch == ' ' || ch > 126 {
			continue
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(px+float64(i*r.CellW), py)
		op.ColorScale.ScaleWithColor(palette.RGBA[fg])
		op.ColorScale.ScaleAlpha(float32(min(alpha, 1)))
		screen.DrawImage(r.Atlas.Glyph(ch), &op)
	}
}
