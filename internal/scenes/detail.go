package scenes

import (
	"math"

	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/config"
	"github.com/ashshourov/OrbitSphere/internal/scene"
	"github.com/ashshourov/OrbitSphere/internal/stage"
)

// maxDisplayCoord bounds the display point; anything further out falls back
// to the origin.
const maxDisplayCoord = 100

// Detail brings the selected item to the display point and shows its
// description until the restart button is pressed.
type Detail struct {
	base
	cfg     config.DetailConfig
	sel     *stage.Selection
	display anim.Vec

	focus    stage.Item
	hasFocus bool
	returnTo anim.Vec

	live        bool
	removePress func()
}

// NewDetail fixes the display point and subscribes to the restart button;
// Close releases the subscription.
func NewDetail(d Deps, cfg config.DetailConfig) *Detail {
	m := &Detail{base: newBase(scene.Detail, d), cfg: cfg, sel: d.Selection}

	p := anim.Vec{X: cfg.DisplayPoint.X, Y: cfg.DisplayPoint.Y}
	if math.Abs(p.X) > maxDisplayCoord || math.Abs(p.Y) > maxDisplayCoord {
		m.log.Warn("display point out of range, using origin", "display_point", p.String())
		p = anim.Vec{}
	}
	m.display = p

	if m.check(d.Elements.Restart.Valid(), "restart button") {
		m.removePress = d.Elements.Restart.OnPress(m.onRestart)
	}
	return m
}

// DisplayPoint returns where the selected item is shown.
func (m *Detail) DisplayPoint() anim.Vec { return m.display }

func (m *Detail) Enter() anim.Task {
	return anim.Sequence(
		anim.Do(m.prepare),
		anim.Lazy(func() anim.Task {
			if !m.hasFocus {
				return nil
			}
			return anim.Move(m.focus, m.display, m.cfg.Move.Seconds(), m.tween...)
		}),
		anim.Do(func() {
			if m.hasFocus && m.check(m.el.Panel.Valid(), "detail panel") {
				m.el.Panel.Show(m.focus)
			}
		}),
		m.fade(m.el.Extras, "extras group", 0, 1, m.cfg.ExtrasFadeIn),
		anim.Do(func() {
			m.el.Extras.SetInteractive(true)
			m.el.Restart.SetEnabled(true)
			m.live = true
		}),
	)
}

func (m *Detail) Exit() anim.Task {
	return anim.Sequence(
		anim.Do(func() {
			m.live = false
			m.el.Restart.SetEnabled(false)
			m.el.Extras.SetInteractive(false)
			m.el.Panel.Hide()
		}),
		anim.Lazy(func() anim.Task {
			tasks := []anim.Task{m.fade(m.el.Extras, "extras group", 1, 0, m.cfg.FadeOut)}
			if m.hasFocus {
				tasks = append(tasks, anim.Move(m.focus, m.returnTo, m.cfg.FadeOut.Seconds(), m.tween...))
			}
			return anim.Parallel(tasks...)
		}),
		anim.Do(func() {
			if m.hasFocus {
				m.focus.SetVisible(true)
				m.focus.SetOrbiting(true)
			}
		}),
		anim.Wait(m.cfg.Settle.Seconds()),
		anim.Do(m.restore),
	)
}

// Close releases the restart subscription.
func (m *Detail) Close() {
	if m.removePress != nil {
		m.removePress()
		m.removePress = nil
	}
}

// prepare stops the orbit view and isolates the selected item.
func (m *Detail) prepare() {
	items := m.items()
	for _, it := range items {
		it.SetOrbiting(false)
		it.SetPathVisible(false)
	}
	m.el.Orbits.Hide()
	m.el.Title.Hide()
	m.el.Picker.SetEnabled(false)

	m.focus, m.hasFocus = stage.Item{}, false
	if !m.check(m.sel != nil, "selection") {
		return
	}
	it, ok := m.sel.Get()
	if !ok {
		m.log.Warn("no selected item, skipping item steps", "scene", m.kind.String())
		return
	}
	m.focus, m.hasFocus = it, true
	m.returnTo = it.Position()

	for _, other := range items {
		if other != it {
			other.SetVisible(false)
		}
	}
	it.SetVisible(true)
	it.SetOpacity(1)
}

// restore puts every item back on its orbit and reveals the orbit HUD.
func (m *Detail) restore() {
	for _, it := range m.items() {
		it.SetVisible(true)
		it.SetOpacity(1)
		it.SetPathVisible(true)
		it.SetOrbiting(true)
	}
	m.el.Orbits.SetOpacity(1)
	m.focus, m.hasFocus = stage.Item{}, false
}

func (m *Detail) onRestart() {
	if !m.live || !m.active() {
		m.log.Debug("restart ignored, detail view not active")
		return
	}
	m.live = false
	m.request(scene.Title)
}
