package anim

import (
	"fmt"
	"math"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Vec is a point or offset in world units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64  { return v.Sub(o).Len() }
func (v Vec) String() string      { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }

// Opacity is anything with a readable and writable alpha in [0,1].
type Opacity interface {
	Opacity() float64
	SetOpacity(alpha float64)
}

// Positionable is anything with a readable and writable world position.
type Positionable interface {
	Position() Vec
	SetPosition(p Vec)
}

// validator is implemented by handles that can go stale (destroyed entities,
// nil group pointers).
type validator interface {
	Valid() bool
}

func absent(target any) bool {
	if target == nil {
		return true
	}
	if v, ok := target.(validator); ok {
		return !v.Valid()
	}
	return false
}

// Monotone easing curves accepted by Fade and Move.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
}

// EasingByName looks up a curve by its config name.
func EasingByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// EasingNames lists the accepted curve names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Option configures a Fade or Move.
type Option func(*clock)

// WithEasing selects the progress curve. Nil keeps linear.
func WithEasing(fn ease.TweenFunc) Option {
	return func(c *clock) {
		if fn != nil {
			c.easing = fn
		}
	}
}

// clock tracks elapsed time for a primitive and maps it to eased progress.
type clock struct {
	duration float64
	elapsed  float64
	easing   ease.TweenFunc
	curve    *gween.Tween
	started  bool
	finished bool
}

func newClock(duration float64, opts []Option) clock {
	if duration < 0 || math.IsNaN(duration) {
		duration = 0
	}
	c := clock{duration: duration, easing: ease.Linear}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// advance adds dt and returns the eased progress in [0,1] and whether the
// duration has been reached.
func (c *clock) advance(dt float64) (float64, bool) {
	if dt > 0 {
		c.elapsed += dt
	}
	if c.elapsed >= c.duration {
		return 1, true
	}
	if c.curve == nil {
		c.curve = gween.New(0, 1, float32(c.duration), c.easing)
	}
	p, _ := c.curve.Set(float32(c.elapsed))
	return clamp01(float64(p)), false
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// lerp interpolates and keeps the result inside [a,b] so rounding never
// overshoots the final snap.
func lerp(a, b, p float64) float64 {
	v := a + (b-a)*p
	lo, hi := math.Min(a, b), math.Max(a, b)
	return math.Max(lo, math.Min(hi, v))
}

type fade struct {
	clock
	target   Opacity
	from, to float64
}

// Fade animates target's opacity from one value to another over duration
// seconds. The first poll forces the value to from. An absent target makes
// the fade a no-op that finishes on its first poll.
func Fade(target Opacity, from, to, duration float64, opts ...Option) Task {
	return &fade{clock: newClock(duration, opts), target: target, from: from, to: to}
}

func (f *fade) Poll(dt float64) Status {
	if f.finished {
		return Done
	}
	if !f.started {
		f.started = true
		if absent(f.target) {
			f.finished = true
			return Done
		}
		f.target.SetOpacity(f.from)
		return Running
	}
	p, done := f.advance(dt)
	if done {
		f.target.SetOpacity(f.to)
		f.finished = true
		return Done
	}
	f.target.SetOpacity(lerp(f.from, f.to, p))
	return Running
}

type move struct {
	clock
	target Positionable
	start  Vec
	to     Vec
}

// Move animates target from wherever it is when the move starts to the
// given point over duration seconds.
func Move(target Positionable, to Vec, duration float64, opts ...Option) Task {
	return &move{clock: newClock(duration, opts), target: target, to: to}
}

func (m *move) Poll(dt float64) Status {
	if m.finished {
		return Done
	}
	if !m.started {
		m.started = true
		if absent(m.target) {
			m.finished = true
			return Done
		}
		m.start = m.target.Position()
		return Running
	}
	p, done := m.advance(dt)
	if done {
		m.target.SetPosition(m.to)
		m.finished = true
		return Done
	}
	m.target.SetPosition(Vec{
		X: lerp(m.start.X, m.to.X, p),
		Y: lerp(m.start.Y, m.to.Y, p),
	})
	return Running
}
