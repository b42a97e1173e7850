package render

import (
	"strings"

	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/palette"
	"github.com/ashshourov/OrbitSphere/internal/stage"
)

// CellSize is the pixel size of one text cell.
const CellSize = 16

const (
	panelWidth = 28
	feedRows   = 4
)

// View is everything one frame shows.
type View struct {
	Stage   *stage.Stage
	Title   *stage.Group
	Orbits  *stage.Group
	Extras  *stage.Group
	Panel   *stage.DetailPanel
	Restart *stage.Button
	Feed    []string
	Status  string
}

// Layers are the text planes of a frame. Title, HUD and Extras are drawn
// with the opacity of the matching group; Status is always opaque.
type Layers struct {
	Title  *CellBuffer
	HUD    *CellBuffer
	Extras *CellBuffer
	Status *CellBuffer

	cam          Camera
	cellW, cellH int
}

func NewLayers(cam Camera, cellW, cellH int) *Layers {
	cols, rows := cam.Width/cellW, cam.Height/cellH
	return &Layers{
		Title:  NewCellBuffer(cols, rows),
		HUD:    NewCellBuffer(cols, rows),
		Extras: NewCellBuffer(cols, rows),
		Status: NewCellBuffer(cols, rows),
		cam:    cam,
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Compose redraws every layer from v.
func (l *Layers) Compose(v View) {
	l.composeTitle(v.Title)
	l.composeHUD(v.Orbits)
	l.composeExtras(v)
	l.composeStatus(v)
}

func (l *Layers) composeTitle(g *stage.Group) {
	buf := l.Title
	buf.Clear()
	lines := g.Lines()
	top := buf.Rows/2 - len(lines)/2
	for i, line := range lines {
		fg := uint8(palette.LightGray)
		if i == 0 {
			fg = palette.White
		}
		buf.WriteCentered(top+i, line, fg, palette.Black)
	}
}

func (l *Layers) composeHUD(g *stage.Group) {
	buf := l.HUD
	buf.Clear()
	for i, line := range g.Lines() {
		buf.WriteString(2, 1+i, line, palette.LightCyan, palette.Black)
	}
}

func (l *Layers) composeExtras(v View) {
	buf := l.Extras
	buf.Clear()

	if v.Panel.Shown() {
		x := buf.Cols - panelWidth - 1
		buf.WriteString(x, 3, v.Panel.Title(), palette.Yellow, palette.Black)
		buf.WriteString(x, 4, strings.Repeat("-", panelWidth), palette.DarkGray, palette.Black)
		row := 5
		for _, line := range v.Panel.Lines() {
			for _, w := range Wrap(line, panelWidth) {
				buf.WriteString(x, row, w, palette.LightGray, palette.Black)
				row++
			}
		}
	}

	if v.Restart.Valid() {
		b := v.Restart.Bounds()
		col, row := l.cam.Cell(anim.Vec{X: b.Min.X, Y: b.Max.Y}, l.cellW, l.cellH)
		fg := uint8(palette.DarkGray)
		if v.Restart.Enabled() {
			fg = palette.White
		}
		buf.WriteString(col, row, "[ "+v.Restart.Label()+" ]", fg, palette.Black)
	}

	lines := v.Extras.Lines()
	for i, line := range lines {
		buf.WriteCentered(buf.Rows-feedRows-2-len(lines)+i, line, palette.LightGray, palette.Black)
	}
}

func (l *Layers) composeStatus(v View) {
	buf := l.Status
	buf.Clear()
	feed := v.Feed
	if len(feed) > feedRows {
		feed = feed[len(feed)-feedRows:]
	}
	for i, line := range feed {
		buf.WriteString(2, buf.Rows-1-len(feed)+i, line, palette.Cyan, palette.Black)
	}
	if v.Status != "" {
		buf.WriteString(buf.Cols-len(v.Status)-2, buf.Rows-1, v.Status, palette.DarkGray, palette.Black)
	}
}

// Wrap splits s into lines no longer than width, breaking on whitespace.
// Words longer than width get a line of their own.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			out = append(out, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(out, line)
}
