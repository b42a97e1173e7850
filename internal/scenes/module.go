package scenes

import (
	"time"

	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/scene"
	"github.com/ashshourov/OrbitSphere/internal/stage"
)

// Elements bundles the visual handles the modules animate. Any of them may
// be nil; the step that needs a missing handle is reported and skipped.
type Elements struct {
	Stage   *stage.Stage
	Title   *stage.Group
	Orbits  *stage.Group
	Extras  *stage.Group
	Panel   *stage.DetailPanel
	Restart *stage.Button
	Picker  *stage.Picker
}

// Deps is what every module is constructed with.
type Deps struct {
	Elements  Elements
	Changer   scene.Changer
	Scheduler *anim.Scheduler
	Selection *stage.Selection
	Logger    scene.Logger
	Tween     []anim.Option
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// base carries what the three modules share.
type base struct {
	kind     scene.State
	el       Elements
	changer  scene.Changer
	log      scene.Logger
	tween    []anim.Option
	reported map[string]bool
}

func newBase(kind scene.State, d Deps) base {
	logger := d.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	return base{
		kind:     kind,
		el:       d.Elements,
		changer:  d.Changer,
		log:      logger,
		tween:    d.Tween,
		reported: make(map[string]bool),
	}
}

func (b *base) Kind() scene.State { return b.kind }

// check reports a missing element the first time it is needed.
func (b *base) check(ok bool, element string) bool {
	if ok {
		return true
	}
	if !b.reported[element] {
		b.reported[element] = true
		b.log.Error("scene element missing, skipping step", "scene", b.kind.String(), "element", element)
	}
	return false
}

// items returns the stage items, or none when the stage is missing.
func (b *base) items() []stage.Item {
	if !b.check(b.el.Stage != nil, "stage") {
		return nil
	}
	return b.el.Stage.Items()
}

// fade builds a fade on a group, or a no-op when the group is missing.
func (b *base) fade(g *stage.Group, element string, from, to float64, d time.Duration) anim.Task {
	if !b.check(g.Valid(), element) {
		return anim.Nop()
	}
	return anim.Fade(g, from, to, d.Seconds(), b.tween...)
}

// active reports whether the orchestrator considers this module's state
// active. It is false for the whole of a transition, including the frames
// before the module's Exit first runs.
func (b *base) active() bool {
	if !b.check(b.changer != nil, "changer") {
		return false
	}
	s, ok := b.changer.Active()
	return ok && s == b.kind
}

func (b *base) request(target scene.State) {
	if !b.check(b.changer != nil, "changer") {
		return
	}
	b.changer.ChangeScene(target)
}
