package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/palette"
	"github.com/ashshourov/OrbitSphere/internal/stage"
)

const pathAlpha = 0.6

// Renderer draws a View: orbit paths and items with vector shapes, then the
// text layers on top.
type Renderer struct {
	grid   *GridRenderer
	layers *Layers
	cam    Camera
}

func NewRenderer(cam Camera) *Renderer {
	return &Renderer{
		grid:   NewGridRenderer(NewFontAtlas(), CellSize, CellSize),
		layers: NewLayers(cam, CellSize, CellSize),
		cam:    cam,
	}
}

// Camera returns the camera the renderer projects with.
func (r *Renderer) Camera() Camera { return r.cam }

func (r *Renderer) Draw(screen *ebiten.Image, v View) {
	screen.Fill(palette.RGBA[palette.Black])
	r.layers.Compose(v)

	r.drawStage(screen, v.Stage)
	r.grid.Draw(screen, r.layers.HUD, v.Orbits.Opacity())
	r.grid.Draw(screen, r.layers.Title, v.Title.Opacity())
	r.grid.Draw(screen, r.layers.Extras, v.Extras.Opacity())
	r.grid.Draw(screen, r.layers.Status, 1)
}

func (r *Renderer) drawStage(screen *ebiten.Image, st *stage.Stage) {
	if st == nil {
		return
	}
	for _, it := range st.Items() {
		sp := it.Sprite()
		if it.PathVisible() {
			r.drawPath(screen, it.Orbit(), it.Path().Segments, sp.Opacity)
		}
		if !sp.Visible || sp.Opacity <= 0 {
			continue
		}
		x, y := r.cam.WorldToScreen(it.Position())
		radius := sp.Size * r.cam.Scale
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), palette.Faded(sp.Color, sp.Opacity), true)
		r.grid.DrawLabel(screen, it.Name(), palette.LightGray, x+radius+4, y-CellSize/2, sp.Opacity)
	}
}

func (r *Renderer) drawPath(screen *ebiten.Image, o stage.Orbit, segments int, alpha float64) {
	clr := palette.Faded(palette.DarkGray, alpha*pathAlpha)
	pts := PathPoints(o, segments)
	for i := 1; i < len(pts); i++ {
		x0, y0 := r.cam.WorldToScreen(pts[i-1])
		x1, y1 := r.cam.WorldToScreen(pts[i])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	}
}

// PathPoints returns the closed polyline approximating an orbit circle:
// segments+1 points, the last equal to the first.
func PathPoints(o stage.Orbit, segments int) []anim.Vec {
	if segments < 3 {
		segments = stage.DefaultPathSegments
	}
	pts := make([]anim.Vec, segments+1)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = anim.Vec{X: o.Center.X + math.Cos(a)*o.Radius, Y: o.Center.Y + math.Sin(a)*o.Radius}
	}
	pts[segments] = pts[0]
	return pts
}
