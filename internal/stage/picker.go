package stage

import (
	"slices"

	"github.com/ashshourov/OrbitSphere/internal/anim"
)

type pickObserver struct {
	id int
	fn func(Item)
}

// Picker is the click detector for items. Subscribers are notified with the
// item under a click while the picker is enabled. Whoever subscribes is
// responsible for calling the returned unsubscribe func on teardown.
type Picker struct {
	stage     *Stage
	enabled   bool
	observers []pickObserver
	nextID    int
}

// NewPicker creates a disabled picker over st.
func NewPicker(st *Stage) *Picker {
	return &Picker{stage: st}
}

func (p *Picker) Valid() bool { return p != nil }

func (p *Picker) Enabled() bool { return p != nil && p.enabled }

func (p *Picker) SetEnabled(on bool) {
	if p == nil {
		return
	}
	p.enabled = on
}

// Subscribe adds fn to the observer list.
func (p *Picker) Subscribe(fn func(Item)) (unsubscribe func()) {
	if p == nil || fn == nil {
		return func() {}
	}
	p.nextID++
	id := p.nextID
	p.observers = append(p.observers, pickObserver{id: id, fn: fn})
	return func() {
		p.observers = slices.DeleteFunc(p.observers, func(o pickObserver) bool { return o.id == id })
	}
}

// Subscribers returns the number of live subscriptions.
func (p *Picker) Subscribers() int {
	if p == nil {
		return 0
	}
	return len(p.observers)
}

// Hit returns the topmost visible, non-transparent item containing at.
// Later items draw on top of earlier ones.
func (p *Picker) Hit(at anim.Vec) (Item, bool) {
	if p == nil || p.stage == nil {
		return Item{}, false
	}
	items := p.stage.Items()
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.Visible() && it.Opacity() > 0 && it.Contains(at) {
			return it, true
		}
	}
	return Item{}, false
}

// Click hit-tests at and notifies subscribers. It reports whether an item
// was chosen.
func (p *Picker) Click(at anim.Vec) bool {
	it, ok := p.Hit(at)
	if !ok {
		return false
	}
	return p.Pick(it)
}

// Pick notifies subscribers with it as if it had been clicked, bypassing
// the hit test. Hidden, transparent and removed items cannot be picked.
func (p *Picker) Pick(it Item) bool {
	if !p.Enabled() || !it.Valid() || !it.Visible() || it.Opacity() <= 0 {
		return false
	}
	for _, o := range slices.Clone(p.observers) {
		o.fn(it)
	}
	return true
}
