package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/ashshourov/OrbitSphere/internal/anim"
)

// Module is one presentation state's choreography. Enter and Exit are called
// once per transition, at the moment that step begins, and must return tasks
// that finish within their stated durations even when visual handles are
// missing. A nil task counts as already finished.
type Module interface {
	Kind() State
	Enter() anim.Task
	Exit() anim.Task
}

// Changer is the inbound command surface handed to collaborators that
// request transitions. Active lets them route input only while their own
// state is active.
type Changer interface {
	ChangeScene(target State)
	Active() (State, bool)
}

type observer struct {
	id int
	fn func(State)
}

// flight describes the transition currently in progress.
type flight struct {
	id        string
	from, to  State
	startTick uint64
	startTime float64
}

// Orchestrator owns the current state and serializes every change of it.
//
// All methods must be called from the scheduler's timeline (the host frame
// loop or tasks running on it); the orchestrator is not safe for concurrent
// use.
type Orchestrator struct {
	sched   *anim.Scheduler
	logger  Logger
	modules map[State]Module

	started bool
	phase   Phase
	current State
	flight  *flight

	observers []observer
	nextObs   int
}

// New creates an orchestrator whose transitions run on sched.
func New(sched *anim.Scheduler) *Orchestrator {
	return &Orchestrator{
		sched:   sched,
		logger:  noopLogger{},
		modules: make(map[State]Module, len(stateNames)),
	}
}

// SetLogger sets the logger for the orchestrator.
func (o *Orchestrator) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	o.logger = logger
}

// Register adds the module for m.Kind(). Each state takes exactly one module
// and the registry closes once Start succeeds.
func (o *Orchestrator) Register(m Module) error {
	if m == nil {
		return ErrNilModule
	}
	if o.started {
		return ErrRegistryClosed
	}
	kind := m.Kind()
	if !kind.Valid() {
		return fmt.Errorf("registering %s: %w", kind, ErrUnknownState)
	}
	if _, ok := o.modules[kind]; ok {
		return fmt.Errorf("registering %s: %w", kind, ErrDuplicateModule)
	}
	o.modules[kind] = m
	o.logger.Debug("scene module registered", "state", kind.String())
	return nil
}

// Start begins the initial transition into Title. It fails, and the
// orchestrator stays uninitialized, unless every state has a module.
func (o *Orchestrator) Start() error {
	if o.started {
		return ErrAlreadyStarted
	}
	var missing []string
	for _, s := range States() {
		if _, ok := o.modules[s]; !ok {
			missing = append(missing, s.String())
		}
	}
	if len(missing) > 0 {
		o.logger.Error("scene registry incomplete", "missing", strings.Join(missing, ","))
		return fmt.Errorf("%w: missing %s", ErrIncompleteRegistry, strings.Join(missing, ", "))
	}

	o.started = true
	o.begin(Title)
	return nil
}

// ChangeScene requests a transition to target. The request is dropped when
// target is already current, a transition is in flight, or the orchestrator
// has not started. Unknown targets are reported and leave the state as is.
func (o *Orchestrator) ChangeScene(target State) {
	if _, ok := o.modules[target]; !ok {
		o.logger.Error("scene change rejected",
			"target", target.String(),
			"current", o.current.String(),
			"error", ErrUnknownState,
		)
		return
	}
	switch {
	case !o.started:
		o.logger.Warn("scene change dropped", "target", target.String(), "reason", "not started")
		return
	case o.phase == Transitioning:
		o.logger.Debug("scene change dropped",
			"target", target.String(),
			"reason", "transition in flight",
			"transition_id", o.flight.id,
		)
		return
	case target == o.current:
		o.logger.Debug("scene change dropped", "target", target.String(), "reason", "already current")
		return
	}
	o.begin(target)
}

// begin marks the orchestrator as transitioning and schedules the
// exit, swap, enter hand-off as a single task.
func (o *Orchestrator) begin(target State) {
	f := &flight{
		id:        uuid.NewString(),
		from:      o.current,
		to:        target,
		startTick: o.sched.Ticks(),
		startTime: o.sched.Elapsed(),
	}
	o.flight = f
	o.phase = Transitioning
	o.logger.Info("scene transition started",
		"transition_id", f.id,
		"from", f.from.String(),
		"to", f.to.String(),
	)

	o.sched.Go(anim.Sequence(
		anim.Lazy(func() anim.Task { return o.exitTask(f.from) }),
		anim.Do(func() { o.swap(f) }),
		anim.Lazy(func() anim.Task { return o.modules[f.to].Enter() }),
		anim.Do(func() { o.finish(f) }),
	))
}

func (o *Orchestrator) exitTask(from State) anim.Task {
	m, ok := o.modules[from]
	if !ok {
		return anim.Nop()
	}
	return m.Exit()
}

func (o *Orchestrator) swap(f *flight) {
	o.current = f.to
	o.logger.Debug("scene exited", "transition_id", f.id, "state", f.from.String())
	o.notify(f.to)
}

func (o *Orchestrator) finish(f *flight) {
	o.phase = Active
	o.flight = nil
	o.logger.Info("scene transition complete",
		"transition_id", f.id,
		"state", f.to.String(),
		"ticks", o.sched.Ticks()-f.startTick,
		"seconds", o.sched.Elapsed()-f.startTime,
	)
}

// Subscribe registers fn to receive every scene-changed notification. It is
// called after the current state flips and before the new state's Enter
// runs. The returned function removes the subscription.
func (o *Orchestrator) Subscribe(fn func(State)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	o.nextObs++
	id := o.nextObs
	o.observers = append(o.observers, observer{id: id, fn: fn})
	return func() {
		o.observers = slices.DeleteFunc(o.observers, func(ob observer) bool { return ob.id == id })
	}
}

func (o *Orchestrator) notify(s State) {
	for _, ob := range slices.Clone(o.observers) {
		o.deliver(ob, s)
	}
}

// deliver isolates the transition from a misbehaving observer.
func (o *Orchestrator) deliver(ob observer, s State) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("scene observer panicked", "observer", ob.id, "state", s.String(), "panic", r)
		}
	}()
	ob.fn(s)
}

// Current returns the state the orchestrator considers current. It flips to
// the target between the outgoing Exit and the incoming Enter, and is None
// until the first transition gets that far.
func (o *Orchestrator) Current() State { return o.current }

// Phase returns the orchestrator lifecycle phase.
func (o *Orchestrator) Phase() Phase { return o.phase }

// Active returns the state whose Enter has completed and whose Exit has not
// started. During a transition no state is active.
func (o *Orchestrator) Active() (State, bool) {
	if o.phase != Active {
		return None, false
	}
	return o.current, true
}

// InFlight reports whether a transition is running.
func (o *Orchestrator) InFlight() bool { return o.phase == Transitioning }

// Transition returns the endpoints of the in-flight transition.
func (o *Orchestrator) Transition() (from, to State, ok bool) {
	if o.flight == nil {
		return None, None, false
	}
	return o.flight.from, o.flight.to, true
}
