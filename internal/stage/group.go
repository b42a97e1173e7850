package stage

import "slices"

// Group is an opacity-bearing layer of UI text with an interactive flag,
// such as the title card or the orbit HUD. A nil *Group is a valid but
// absent handle: reads return zero values and writes are ignored.
type Group struct {
	name        string
	alpha       float64
	interactive bool
	lines       []string
}

// NewGroup creates a hidden, non-interactive group.
func NewGroup(name string, lines ...string) *Group {
	return &Group{name: name, lines: lines}
}

func (g *Group) Valid() bool { return g != nil }

func (g *Group) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

func (g *Group) Opacity() float64 {
	if g == nil {
		return 0
	}
	return g.alpha
}

func (g *Group) SetOpacity(alpha float64) {
	if g == nil {
		return
	}
	g.alpha = clamp01(alpha)
}

func (g *Group) Interactive() bool { return g != nil && g.interactive }

func (g *Group) SetInteractive(on bool) {
	if g == nil {
		return
	}
	g.interactive = on
}

// Hide snaps the group to transparent and non-interactive.
func (g *Group) Hide() {
	g.SetInteractive(false)
	g.SetOpacity(0)
}

func (g *Group) Lines() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.lines)
}

func (g *Group) SetLines(lines ...string) {
	if g == nil {
		return
	}
	g.lines = lines
}
