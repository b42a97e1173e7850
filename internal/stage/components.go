package stage

import "github.com/ashshourov/OrbitSphere/internal/anim"

// ECS components attached to every item entity.

// Transform is an item's world position.
type Transform struct {
	Pos anim.Vec
}

// Orbit rotates an item around Center at a fixed Radius.
type Orbit struct {
	Center  anim.Vec
	Radius  float64
	Speed   float64 // degrees per second
	Angle   float64 // radians
	Enabled bool
}

// Sprite is how an item is drawn.
type Sprite struct {
	Size    float64 // world units, also the pick radius
	Color   uint8   // palette index
	Opacity float64
	Visible bool
}

// Path is the orbit visualizer for an item.
type Path struct {
	Visible  bool
	Segments int
}

// Info carries the text shown by the detail panel.
type Info struct {
	Name        string
	Description []string
}

const (
	DefaultOrbitRadius  = 3.0
	DefaultOrbitSpeed   = 90.0
	DefaultPathSegments = 64
)
