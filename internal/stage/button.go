package stage

import (
	"slices"

	"github.com/ashshourov/OrbitSphere/internal/anim"
)

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	Min, Max anim.Vec
}

func (r Rect) Contains(p anim.Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

type pressListener struct {
	id int
	fn func()
}

// Button is a clickable region with its own listener list. Presses are
// ignored while it is disabled.
type Button struct {
	label     string
	bounds    Rect
	enabled   bool
	listeners []pressListener
	nextID    int
}

// NewButton creates a disabled button.
func NewButton(label string, bounds Rect) *Button {
	return &Button{label: label, bounds: bounds}
}

func (b *Button) Valid() bool { return b != nil }

func (b *Button) Label() string {
	if b == nil {
		return ""
	}
	return b.label
}

func (b *Button) Bounds() Rect {
	if b == nil {
		return Rect{}
	}
	return b.bounds
}

func (b *Button) Enabled() bool { return b != nil && b.enabled }

func (b *Button) SetEnabled(on bool) {
	if b == nil {
		return
	}
	b.enabled = on
}

// OnPress adds fn to the listener list.
func (b *Button) OnPress(fn func()) (remove func()) {
	if b == nil || fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, pressListener{id: id, fn: fn})
	return func() {
		b.listeners = slices.DeleteFunc(b.listeners, func(l pressListener) bool { return l.id == id })
	}
}

// Listeners returns the number of live listeners.
func (b *Button) Listeners() int {
	if b == nil {
		return 0
	}
	return len(b.listeners)
}

// Press notifies listeners if the button is enabled.
func (b *Button) Press() bool {
	if !b.Enabled() {
		return false
	}
	for _, l := range slices.Clone(b.listeners) {
		l.fn()
	}
	return true
}

// Click presses the button when at falls inside its bounds.
func (b *Button) Click(at anim.Vec) bool {
	if !b.Enabled() || !b.bounds.Contains(at) {
		return false
	}
	return b.Press()
}
