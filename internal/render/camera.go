package render

import (
	"math"

	"github.com/ashshourov/OrbitSphere/internal/anim"
)

// Camera maps world units to screen pixels. The world origin sits at the
// screen center and world Y grows upward.
type Camera struct {
	Width  int     // screen width in pixels
	Height int     // screen height in pixels
	Scale  float64 // pixels per world unit
}

// WorldToScreen converts a world point to pixel coordinates.
func (c Camera) WorldToScreen(p anim.Vec) (x, y float64) {
	return float64(c.Width)/2 + p.X*c.Scale, float64(c.Height)/2 - p.Y*c.Scale
}

// ScreenToWorld converts pixel coordinates to a world point.
func (c Camera) ScreenToWorld(x, y float64) anim.Vec {
	if c.Scale == 0 {
		return anim.Vec{}
	}
	return anim.Vec{
		X: (x - float64(c.Width)/2) / c.Scale,
		Y: (float64(c.Height)/2 - y) / c.Scale,
	}
}

// Cell returns the text cell under a world point for cells of cellW x cellH
// pixels.
func (c Camera) Cell(p anim.Vec, cellW, cellH int) (col, row int) {
	x, y := c.WorldToScreen(p)
	return int(math.Floor(x / float64(cellW))), int(math.Floor(y / float64(cellH)))
}
