package scenes

import (
	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/config"
	"github.com/ashshourov/OrbitSphere/internal/scene"
)

// Title shows the title card and advances to the orbit view on its own
// after a hold.
type Title struct {
	base
	cfg   config.TitleConfig
	sched *anim.Scheduler

	// generation invalidates auto-advance timers armed by an earlier Enter.
	generation uint64
}

func NewTitle(d Deps, cfg config.TitleConfig) *Title {
	return &Title{base: newBase(scene.Title, d), cfg: cfg, sched: d.Scheduler}
}

func (t *Title) Enter() anim.Task {
	return anim.Sequence(
		anim.Do(t.hideOthers),
		t.fade(t.el.Title, "title group", 0, 1, t.cfg.FadeIn),
		anim.Do(func() {
			t.el.Title.SetInteractive(true)
			t.armAutoAdvance()
		}),
	)
}

func (t *Title) Exit() anim.Task {
	return anim.Sequence(
		anim.Do(func() {
			t.generation++
			t.el.Title.SetInteractive(false)
		}),
		t.fade(t.el.Title, "title group", 1, 0, t.cfg.FadeOut),
	)
}

// Close cancels a pending auto-advance.
func (t *Title) Close() {
	t.generation++
}

func (t *Title) hideOthers() {
	for _, it := range t.items() {
		it.SetOrbiting(false)
		it.SetVisible(false)
		it.SetPathVisible(false)
	}
	t.el.Orbits.Hide()
	t.el.Extras.Hide()
	t.el.Panel.Hide()
	t.el.Restart.SetEnabled(false)
	t.el.Picker.SetEnabled(false)
	t.el.Title.SetInteractive(false)
}

// armAutoAdvance runs the hold timer as its own task so Enter completes and
// the title becomes active while the timer counts down.
func (t *Title) armAutoAdvance() {
	if !t.check(t.sched != nil, "scheduler") {
		return
	}
	gen := t.generation
	t.sched.Go(anim.Sequence(
		anim.Wait(t.cfg.Hold.Seconds()),
		anim.Do(func() {
			if gen != t.generation {
				return
			}
			t.log.Debug("title hold elapsed", "hold", t.cfg.Hold)
			t.request(scene.Orbit)
		}),
	))
}
