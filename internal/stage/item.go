package stage

import (
	"math"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/ashshourov/OrbitSphere/internal/anim"
)

// Item is a weak handle to an item entity. Once the entity is removed every
// accessor returns a zero value and every setter is ignored.
type Item struct {
	st *Stage
	e  ecs.Entity
}

// Valid reports whether the item still exists.
func (it Item) Valid() bool {
	return it.st != nil && it.st.world.Alive(it.e)
}

// Entity returns the underlying ECS entity.
func (it Item) Entity() ecs.Entity { return it.e }

func (it Item) Name() string {
	if !it.Valid() {
		return ""
	}
	return it.st.infos.Get(it.e).Name
}

func (it Item) Description() []string {
	if !it.Valid() {
		return nil
	}
	return slices.Clone(it.st.infos.Get(it.e).Description)
}

func (it Item) Position() anim.Vec {
	if !it.Valid() {
		return anim.Vec{}
	}
	return it.st.transforms.Get(it.e).Pos
}

func (it Item) SetPosition(p anim.Vec) {
	if !it.Valid() {
		return
	}
	it.st.transforms.Get(it.e).Pos = p
}

func (it Item) Opacity() float64 {
	if !it.Valid() {
		return 0
	}
	return it.st.sprites.Get(it.e).Opacity
}

func (it Item) SetOpacity(alpha float64) {
	if !it.Valid() {
		return
	}
	it.st.sprites.Get(it.e).Opacity = clamp01(alpha)
}

func (it Item) Visible() bool {
	return it.Valid() && it.st.sprites.Get(it.e).Visible
}

func (it Item) SetVisible(on bool) {
	if !it.Valid() {
		return
	}
	it.st.sprites.Get(it.e).Visible = on
}

// Sprite returns a copy of the item's sprite component.
func (it Item) Sprite() Sprite {
	if !it.Valid() {
		return Sprite{}
	}
	return *it.st.sprites.Get(it.e)
}

// Orbit returns a copy of the item's orbit component.
func (it Item) Orbit() Orbit {
	if !it.Valid() {
		return Orbit{}
	}
	return *it.st.orbits.Get(it.e)
}

func (it Item) Orbiting() bool {
	return it.Valid() && it.st.orbits.Get(it.e).Enabled
}

// SetOrbiting starts or stops rotation. Starting recomputes the angle from
// the item's current offset to its center so it resumes where it stands.
func (it Item) SetOrbiting(on bool) {
	if !it.Valid() {
		return
	}
	orb := it.st.orbits.Get(it.e)
	if on && !orb.Enabled {
		off := it.st.transforms.Get(it.e).Pos.Sub(orb.Center)
		if off.X != 0 || off.Y != 0 {
			orb.Angle = math.Atan2(off.Y, off.X)
		}
	}
	orb.Enabled = on
}

func (it Item) PathVisible() bool {
	return it.Valid() && it.st.paths.Get(it.e).Visible
}

func (it Item) SetPathVisible(on bool) {
	if !it.Valid() {
		return
	}
	it.st.paths.Get(it.e).Visible = on
}

// Path returns a copy of the item's orbit path component.
func (it Item) Path() Path {
	if !it.Valid() {
		return Path{}
	}
	return *it.st.paths.Get(it.e)
}

// Contains reports whether p lies within the item's sprite.
func (it Item) Contains(p anim.Vec) bool {
	if !it.Valid() {
		return false
	}
	return it.Position().Dist(p) <= it.st.sprites.Get(it.e).Size
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
