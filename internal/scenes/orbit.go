package scenes

import (
	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/config"
	"github.com/ashshourov/OrbitSphere/internal/scene"
	"github.com/ashshourov/OrbitSphere/internal/stage"
)

// Orbit shows every item rotating on its path and turns a pick into a
// selection followed by the detail view.
type Orbit struct {
	base
	cfg config.OrbitConfig
	sel *stage.Selection

	live        bool
	unsubscribe func()
}

// NewOrbit subscribes to the picker; Close releases the subscription.
func NewOrbit(d Deps, cfg config.OrbitConfig) *Orbit {
	o := &Orbit{base: newBase(scene.Orbit, d), cfg: cfg, sel: d.Selection}
	if o.check(d.Elements.Picker.Valid(), "picker") {
		o.unsubscribe = d.Elements.Picker.Subscribe(o.onPick)
	}
	return o
}

func (o *Orbit) Enter() anim.Task {
	return anim.Sequence(
		anim.Do(o.prepare),
		anim.Lazy(func() anim.Task {
			tasks := []anim.Task{o.fade(o.el.Orbits, "orbits group", 0, 1, o.cfg.FadeIn)}
			for _, it := range o.items() {
				tasks = append(tasks, anim.Fade(it, 0, 1, o.cfg.FadeIn.Seconds(), o.tween...))
			}
			return anim.Parallel(tasks...)
		}),
		anim.Do(func() {
			o.el.Orbits.SetInteractive(true)
			o.el.Picker.SetEnabled(true)
			o.live = true
		}),
	)
}

func (o *Orbit) Exit() anim.Task {
	return anim.Sequence(
		anim.Do(func() {
			o.live = false
			o.el.Picker.SetEnabled(false)
			o.el.Orbits.SetInteractive(false)
			for _, it := range o.items() {
				it.SetOrbiting(false)
			}
		}),
		o.fade(o.el.Orbits, "orbits group", 1, 0, o.cfg.FadeOut),
	)
}

// Close releases the picker subscription.
func (o *Orbit) Close() {
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
}

func (o *Orbit) prepare() {
	o.el.Title.Hide()
	o.el.Extras.Hide()
	o.el.Panel.Hide()
	o.el.Restart.SetEnabled(false)
	o.el.Picker.SetEnabled(false)
	o.el.Orbits.Hide()
	for _, it := range o.items() {
		it.SetOpacity(0)
		it.SetVisible(true)
		it.SetOrbiting(true)
		it.SetPathVisible(true)
	}
}

func (o *Orbit) onPick(it stage.Item) {
	if !o.live || !o.active() {
		o.log.Debug("pick ignored, orbit view not active", "item", it.Name())
		return
	}
	if !o.check(o.sel != nil, "selection") {
		return
	}
	o.sel.Set(it)
	o.live = false
	o.log.Info("item selected", "item", it.Name())
	o.request(scene.Detail)
}
