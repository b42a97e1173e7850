package stage

import "slices"

// DetailPanel shows the name and description of one item.
type DetailPanel struct {
	shown bool
	title string
	lines []string
}

func NewDetailPanel() *DetailPanel { return &DetailPanel{} }

func (p *DetailPanel) Valid() bool { return p != nil }

// Show fills the panel from it. A stale item leaves the panel hidden.
func (p *DetailPanel) Show(it Item) {
	if p == nil || !it.Valid() {
		return
	}
	p.title = it.Name()
	p.lines = it.Description()
	p.shown = true
}

func (p *DetailPanel) Hide() {
	if p == nil {
		return
	}
	p.shown = false
}

func (p *DetailPanel) Shown() bool { return p != nil && p.shown }

func (p *DetailPanel) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *DetailPanel) Lines() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.lines)
}
