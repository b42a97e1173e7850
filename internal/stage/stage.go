package stage

import (
	"math"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/ashshourov/OrbitSphere/internal/anim"
)

// ItemSpec describes one selectable orbiting item.
type ItemSpec struct {
	Name        string
	Center      anim.Vec
	Radius      float64 // orbit radius, DefaultOrbitRadius when zero
	Speed       float64 // degrees per second, DefaultOrbitSpeed when zero
	Phase       float64 // starting angle in degrees
	Size        float64
	Color       uint8
	Segments    int
	Description []string
}

// Stage owns the ECS world holding every item. Items are kept in
// registration order.
type Stage struct {
	world *ecs.World

	transforms *ecs.Map[Transform]
	orbits     *ecs.Map[Orbit]
	sprites    *ecs.Map[Sprite]
	paths      *ecs.Map[Path]
	infos      *ecs.Map[Info]
	spawner    *ecs.Map5[Transform, Orbit, Sprite, Path, Info]
	rotating   *ecs.Filter2[Transform, Orbit]

	items []ecs.Entity
}

// New creates an empty stage.
func New() *Stage {
	w := ecs.NewWorld(64)
	return &Stage{
		world:      w,
		transforms: ecs.NewMap[Transform](w),
		orbits:     ecs.NewMap[Orbit](w),
		sprites:    ecs.NewMap[Sprite](w),
		paths:      ecs.NewMap[Path](w),
		infos:      ecs.NewMap[Info](w),
		spawner:    ecs.NewMap5[Transform, Orbit, Sprite, Path, Info](w),
		rotating:   ecs.NewFilter2[Transform, Orbit](w),
	}
}

// Add creates an item from spec. The item starts visible, opaque and
// orbiting, placed on its circle at spec.Phase.
func (s *Stage) Add(spec ItemSpec) Item {
	radius := spec.Radius
	if radius <= 0 {
		radius = DefaultOrbitRadius
	}
	speed := spec.Speed
	if speed == 0 {
		speed = DefaultOrbitSpeed
	}
	segments := spec.Segments
	if segments <= 2 {
		segments = DefaultPathSegments
	}
	size := spec.Size
	if size <= 0 {
		size = 0.5
	}
	angle := spec.Phase * math.Pi / 180

	e := s.spawner.NewEntity(
		&Transform{Pos: onCircle(spec.Center, radius, angle)},
		&Orbit{Center: spec.Center, Radius: radius, Speed: speed, Angle: angle, Enabled: true},
		&Sprite{Size: size, Color: spec.Color, Opacity: 1, Visible: true},
		&Path{Visible: true, Segments: segments},
		&Info{Name: spec.Name, Description: slices.Clone(spec.Description)},
	)
	s.items = append(s.items, e)
	return Item{st: s, e: e}
}

// Remove destroys an item. Handles to it become stale.
func (s *Stage) Remove(it Item) {
	if it.st != s || !it.Valid() {
		return
	}
	s.items = slices.DeleteFunc(s.items, func(e ecs.Entity) bool { return e == it.e })
	s.world.RemoveEntity(it.e)
}

// Items returns handles to every live item in registration order.
func (s *Stage) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for _, e := range s.items {
		if s.world.Alive(e) {
			out = append(out, Item{st: s, e: e})
		}
	}
	return out
}

// Len returns the number of live items.
func (s *Stage) Len() int { return len(s.Items()) }

// Find returns the first item with the given name.
func (s *Stage) Find(name string) (Item, bool) {
	for _, it := range s.Items() {
		if it.Name() == name {
			return it, true
		}
	}
	return Item{}, false
}

// Names lists item names in registration order.
func (s *Stage) Names() []string {
	items := s.Items()
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name()
	}
	return names
}

// Tick advances every enabled orbit by dt seconds.
func (s *Stage) Tick(dt float64) {
	query := s.rotating.Query()
	for query.Next() {
		tr, orb := query.Get()
		if !orb.Enabled {
			continue
		}
		orb.Angle = math.Mod(orb.Angle+orb.Speed*math.Pi/180*dt, 2*math.Pi)
		tr.Pos = onCircle(orb.Center, orb.Radius, orb.Angle)
	}
}

// SetAllOrbiting starts or stops rotation on every item.
func (s *Stage) SetAllOrbiting(on bool) {
	for _, it := range s.Items() {
		it.SetOrbiting(on)
	}
}

// SetAllPathsVisible shows or hides every orbit path.
func (s *Stage) SetAllPathsVisible(on bool) {
	for _, it := range s.Items() {
		it.SetPathVisible(on)
	}
}

func onCircle(center anim.Vec, radius, angle float64) anim.Vec {
	return anim.Vec{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}
