package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/config"
	"github.com/ashshourov/OrbitSphere/internal/logging"
	"github.com/ashshourov/OrbitSphere/internal/render"
	"github.com/ashshourov/OrbitSphere/internal/scene"
	"github.com/ashshourov/OrbitSphere/internal/scenes"
	"github.com/ashshourov/OrbitSphere/internal/stage"
	"github.com/ashshourov/OrbitSphere/internal/world"
)

const (
	feedSize  = 32
	feedWidth = 60
	feedShown = 4
)

// ErrUnknownItem is returned when a selection names no item on the stage.
var ErrUnknownItem = errors.New("app: unknown item")

// App wires the stage, the scheduler, the orchestrator and the three scene
// modules. It is driven by Tick from a frame loop or a headless runner and
// is not safe for concurrent use.
type App struct {
	cfg    *config.Config
	log    *logging.Logger
	layout *world.Layout

	sched *anim.Scheduler
	orch  *scene.Orchestrator
	stage *stage.Stage
	sel   *stage.Selection
	el    scenes.Elements

	title  *scenes.Title
	orbit  *scenes.Orbit
	detail *scenes.Detail

	feed   *Feed
	dt     float64
	unsubs []func()
}

// New builds the app. A nil cfg uses defaults, a nil logger discards, and a
// nil layout loads the embedded one.
func New(cfg *config.Config, logger *logging.Logger, layout *world.Layout) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if layout == nil {
		l, err := world.LoadDefault()
		if err != nil {
			return nil, err
		}
		layout = l
	}
	easing, err := anim.EasingByName(cfg.Scenes.Easing)
	if err != nil {
		return nil, fmt.Errorf("scene easing: %w", err)
	}

	a := &App{
		cfg:    cfg,
		log:    logger,
		layout: layout,
		sched:  anim.NewScheduler(),
		stage:  stage.New(),
		sel:    &stage.Selection{},
		feed:   NewFeed(feedSize, feedWidth),
		dt:     1 / float64(max(cfg.Window.TPS, 1)),
	}
	a.orch = scene.New(a.sched)
	a.orch.SetLogger(logger.With("component", "scene"))

	layout.Build(a.stage)
	a.el = scenes.Elements{
		Stage:   a.stage,
		Title:   stage.NewGroup("title", layout.Title...),
		Orbits:  stage.NewGroup("orbits", layout.HUD...),
		Extras:  stage.NewGroup("extras", layout.Hint...),
		Panel:   stage.NewDetailPanel(),
		Restart: stage.NewButton("Restart", layout.RestartRect()),
		Picker:  stage.NewPicker(a.stage),
	}

	deps := scenes.Deps{
		Elements:  a.el,
		Changer:   a.orch,
		Scheduler: a.sched,
		Selection: a.sel,
		Logger:    logger.With("component", "scenes"),
		Tween:     []anim.Option{anim.WithEasing(easing)},
	}
	a.title = scenes.NewTitle(deps, cfg.Scenes.Title)
	a.orbit = scenes.NewOrbit(deps, cfg.Scenes.Orbit)
	a.detail = scenes.NewDetail(deps, cfg.Scenes.Detail)
	for _, m := range []scene.Module{a.title, a.orbit, a.detail} {
		if err := a.orch.Register(m); err != nil {
			return nil, fmt.Errorf("register %s module: %w", m.Kind(), err)
		}
	}
	a.unsubs = append(a.unsubs, a.orch.Subscribe(a.onSceneChange))
	return a, nil
}

// Start begins the transition into the title.
func (a *App) Start() error {
	if err := a.orch.Start(); err != nil {
		return fmt.Errorf("start orchestrator: %w", err)
	}
	a.log.Info("orbitsphere started", "layout", a.layout.Name, "items", a.stage.Len(), "tps", a.cfg.Window.TPS)
	return nil
}

// Tick advances one frame at the configured rate.
func (a *App) Tick() { a.Step(a.dt) }

// Step advances the stage rotation and every running task by dt seconds.
func (a *App) Step(dt float64) {
	a.stage.Tick(dt)
	a.sched.Tick(dt)
}

// Click routes a world-space click: the restart button first, then the item
// picker. It reports whether anything handled it.
func (a *App) Click(at anim.Vec) bool {
	if a.el.Restart.Click(at) {
		return true
	}
	return a.el.Picker.Click(at)
}

// Select picks the named item directly, so an item drawn on top of it
// cannot take the pick. Names match case-insensitively. It reports whether
// the pick was handled, which fails outside the orbit view.
func (a *App) Select(name string) (bool, error) {
	for _, it := range a.stage.Items() {
		if strings.EqualFold(it.Name(), name) {
			return a.el.Picker.Pick(it), nil
		}
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownItem, name)
}

// Restart presses the restart button.
func (a *App) Restart() bool { return a.el.Restart.Press() }

// OnSceneChange registers fn for every state change, with the scheduler time
// at which it happened.
func (a *App) OnSceneChange(fn func(s scene.State, at float64)) (unsubscribe func()) {
	return a.orch.Subscribe(func(s scene.State) { fn(s, a.sched.Elapsed()) })
}

// Close cancels pending timers and releases every subscription.
func (a *App) Close() {
	a.title.Close()
	a.orbit.Close()
	a.detail.Close()
	for _, unsub := range a.unsubs {
		unsub()
	}
	a.unsubs = nil
}

// View is the frame the renderer draws.
func (a *App) View() render.View {
	return render.View{
		Stage:   a.stage,
		Title:   a.el.Title,
		Orbits:  a.el.Orbits,
		Extras:  a.el.Extras,
		Panel:   a.el.Panel,
		Restart: a.el.Restart,
		Feed:    a.feed.Lines(feedShown),
		Status:  a.Status(),
	}
}

// Status is a one-line summary of the orchestrator.
func (a *App) Status() string {
	if from, to, ok := a.orch.Transition(); ok {
		return fmt.Sprintf("%s -> %s", from, to)
	}
	return fmt.Sprintf("%s  %.1fs", a.orch.Current(), a.sched.Elapsed())
}

func (a *App) Orchestrator() *scene.Orchestrator { return a.orch }
func (a *App) Stage() *stage.Stage               { return a.stage }
func (a *App) Elements() scenes.Elements         { return a.el }
func (a *App) Selection() *stage.Selection       { return a.sel }
func (a *App) Feed() *Feed                       { return a.feed }
func (a *App) Config() *config.Config            { return a.cfg }
func (a *App) Elapsed() float64                  { return a.sched.Elapsed() }

func (a *App) onSceneChange(s scene.State) {
	at := a.sched.Elapsed()
	a.feed.Add(fmt.Sprintf("%6.2fs  entering %s", at, s), PriorityScene, at)
	if s == scene.Detail {
		if it, ok := a.sel.Get(); ok {
			a.feed.Add("inspecting "+it.Name(), PriorityInfo, at)
		} else {
			a.feed.Add("nothing selected", PriorityWarning, at)
		}
	}
	a.log.Info("scene changed", "state", s.String(), "at", at)
}
