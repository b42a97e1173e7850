package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashshourov/OrbitSphere/internal/anim"
)

const dt = 0.25

// recorder captures choreography steps across all fake modules.
type recorder struct {
	events     []string
	running    int
	maxRunning int
}

func (r *recorder) add(e string) { r.events = append(r.events, e) }

func (r *recorder) step(name string, d float64) anim.Task {
	return anim.Sequence(
		anim.Do(func() {
			r.running++
			r.maxRunning = max(r.maxRunning, r.running)
			r.add(name + " begin")
		}),
		anim.Wait(d),
		anim.Do(func() {
			r.running--
			r.add(name + " end")
		}),
	)
}

type fakeModule struct {
	kind        State
	rec         *recorder
	enter, exit float64
}

func (m *fakeModule) Kind() State      { return m.kind }
func (m *fakeModule) Enter() anim.Task { return m.rec.step("enter "+m.kind.String(), m.enter) }
func (m *fakeModule) Exit() anim.Task  { return m.rec.step("exit "+m.kind.String(), m.exit) }

type logEntry struct {
	level string
	msg   string
}

type captureLogger struct{ entries []logEntry }

func (l *captureLogger) Debug(msg string, _ ...any) { l.entries = append(l.entries, logEntry{"debug", msg}) }
func (l *captureLogger) Info(msg string, _ ...any)  { l.entries = append(l.entries, logEntry{"info", msg}) }
func (l *captureLogger) Warn(msg string, _ ...any)  { l.entries = append(l.entries, logEntry{"warn", msg}) }
func (l *captureLogger) Error(msg string, _ ...any) { l.entries = append(l.entries, logEntry{"error", msg}) }

func (l *captureLogger) count(level string) int {
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

type harness struct {
	sched *anim.Scheduler
	orch  *Orchestrator
	rec   *recorder
	log   *captureLogger
}

func newHarness(t *testing.T, states ...State) *harness {
	t.Helper()
	if len(states) == 0 {
		states = States()
	}
	h := &harness{sched: anim.NewScheduler(), rec: &recorder{}, log: &captureLogger{}}
	h.orch = New(h.sched)
	h.orch.SetLogger(h.log)
	for _, s := range states {
		require.NoError(t, h.orch.Register(&fakeModule{kind: s, rec: h.rec, enter: 0.5, exit: 0.5}))
	}
	return h
}

// settle ticks until the orchestrator is idle in an active state.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 100; i++ {
		h.sched.Tick(dt)
		if h.orch.Phase() == Active && h.sched.Len() == 0 {
			return
		}
	}
	t.Fatalf("orchestrator did not settle, phase=%s", h.orch.Phase())
}

func (h *harness) startInTitle(t *testing.T) {
	t.Helper()
	require.NoError(t, h.orch.Start())
	h.settle(t)
	h.rec.events = nil
}

func TestStartTransitionsIntoTitle(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	var notified []State
	h.orch.Subscribe(func(s State) { notified = append(notified, s) })

	require.Equal(t, Uninitialized, h.orch.Phase())
	require.NoError(t, h.orch.Start())
	require.Equal(t, Transitioning, h.orch.Phase())
	_, ok := h.orch.Active()
	require.False(t, ok)

	h.settle(t)

	active, ok := h.orch.Active()
	require.True(t, ok)
	require.Equal(t, Title, active)
	require.Equal(t, []string{"enter title begin", "enter title end"}, h.rec.events)
	require.Equal(t, []State{Title}, notified)

	require.ErrorIs(t, h.orch.Start(), ErrAlreadyStarted)
}

func TestStartRequiresAllModules(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Title, Detail)
	err := h.orch.Start()
	require.ErrorIs(t, err, ErrIncompleteRegistry)
	require.Contains(t, err.Error(), "orbit")
	require.Equal(t, Uninitialized, h.orch.Phase())
	require.Equal(t, 1, h.log.count("error"))

	h.orch.ChangeScene(Title)
	h.sched.Tick(dt)
	require.Equal(t, Uninitialized, h.orch.Phase())
	require.Equal(t, None, h.orch.Current())
	require.Empty(t, h.rec.events)

	require.NoError(t, h.orch.Register(&fakeModule{kind: Orbit, rec: h.rec}))
	require.NoError(t, h.orch.Start())
}

func TestRegisterRules(t *testing.T) {
	t.Parallel()

	h := newHarness(t, Title)
	require.ErrorIs(t, h.orch.Register(nil), ErrNilModule)
	require.ErrorIs(t, h.orch.Register(&fakeModule{kind: Title, rec: h.rec}), ErrDuplicateModule)
	require.ErrorIs(t, h.orch.Register(&fakeModule{kind: None, rec: h.rec}), ErrUnknownState)
	require.ErrorIs(t, h.orch.Register(&fakeModule{kind: State(9), rec: h.rec}), ErrUnknownState)

	require.NoError(t, h.orch.Register(&fakeModule{kind: Orbit, rec: h.rec}))
	require.NoError(t, h.orch.Register(&fakeModule{kind: Detail, rec: h.rec}))
	require.NoError(t, h.orch.Start())
	require.ErrorIs(t, h.orch.Register(&fakeModule{kind: Orbit, rec: h.rec}), ErrRegistryClosed)
}

func TestChangeSceneRunsExitThenEnter(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.startInTitle(t)

	var notified []State
	h.orch.Subscribe(func(s State) {
		notified = append(notified, s)
		h.rec.add("notify " + s.String())
		require.Equal(t, Transitioning, h.orch.Phase())
	})

	h.orch.ChangeScene(Orbit)
	require.True(t, h.orch.InFlight())
	from, to, ok := h.orch.Transition()
	require.True(t, ok)
	require.Equal(t, Title, from)
	require.Equal(t, Orbit, to)

	h.sched.Tick(dt)
	require.Equal(t, Title, h.orch.Current(), "current holds until exit completes")
	_, ok = h.orch.Active()
	require.False(t, ok)

	h.settle(t)

	require.Equal(t, []string{
		"exit title begin",
		"exit title end",
		"notify orbit",
		"enter orbit begin",
		"enter orbit end",
	}, h.rec.events)
	require.Equal(t, []State{Orbit}, notified)
	active, ok := h.orch.Active()
	require.True(t, ok)
	require.Equal(t, Orbit, active)
	require.Equal(t, 1, h.rec.maxRunning)
}

func TestChangeSceneToCurrentIsNoop(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.startInTitle(t)
	notified := 0
	h.orch.Subscribe(func(State) { notified++ })

	h.orch.ChangeScene(Title)
	require.Equal(t, Active, h.orch.Phase())
	require.Zero(t, h.sched.Len())
	h.sched.Tick(dt)
	require.Empty(t, h.rec.events)
	require.Zero(t, notified)
}

func TestChangeSceneDroppedWhileInFlight(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.startInTitle(t)

	h.orch.ChangeScene(Orbit)
	h.orch.ChangeScene(Orbit)
	h.sched.Tick(dt)
	h.orch.ChangeScene(Orbit)
	h.orch.ChangeScene(Detail)
	h.settle(t)

	require.Equal(t, []string{
		"exit title begin",
		"exit title end",
		"enter orbit begin",
		"enter orbit end",
	}, h.rec.events)
	require.Equal(t, Orbit, h.orch.Current())
}

func TestChangeSceneUnknownTarget(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.startInTitle(t)
	errorsBefore := h.log.count("error")

	h.orch.ChangeScene(State(42))
	h.orch.ChangeScene(None)

	require.Equal(t, Title, h.orch.Current())
	require.Equal(t, Active, h.orch.Phase())
	require.Zero(t, h.sched.Len())
	require.Equal(t, errorsBefore+2, h.log.count("error"))
}

func TestObserverPanicDoesNotBlockTransition(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.startInTitle(t)

	h.orch.Subscribe(func(State) { panic("boom") })
	late := 0
	h.orch.Subscribe(func(State) { late++ })

	h.orch.ChangeScene(Detail)
	h.settle(t)

	require.Equal(t, Detail, h.orch.Current())
	require.Equal(t, 1, late)
	require.Equal(t, 1, h.log.count("error"))
}

func TestObserverRequestDuringNotifyIsDropped(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.startInTitle(t)
	h.orch.Subscribe(func(s State) {
		if s == Orbit {
			h.orch.ChangeScene(Detail)
		}
	})

	h.orch.ChangeScene(Orbit)
	h.settle(t)
	require.Equal(t, Orbit, h.orch.Current())
}

func TestUnsubscribe(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.startInTitle(t)
	calls := 0
	unsubscribe := h.orch.Subscribe(func(State) { calls++ })
	noop := h.orch.Subscribe(nil)

	h.orch.ChangeScene(Orbit)
	h.settle(t)
	unsubscribe()
	unsubscribe()
	noop()

	h.orch.ChangeScene(Title)
	h.settle(t)
	require.Equal(t, 1, calls)
}

func TestRandomRequestsKeepOneTransitionInFlight(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	h := newHarness(t)
	require.NoError(t, h.orch.Start())

	changes := 0
	h.orch.Subscribe(func(State) {
		changes++
		require.Equal(t, Transitioning, h.orch.Phase())
	})

	targets := []State{Title, Orbit, Detail, State(5)}
	for i := 0; i < 2000; i++ {
		if rng.Intn(3) == 0 {
			before := h.orch.Current()
			busy := h.orch.InFlight()
			target := targets[rng.Intn(len(targets))]
			h.orch.ChangeScene(target)
			if busy || target == before || !target.Valid() {
				require.Equal(t, busy, h.orch.InFlight(), "dropped request must not change phase")
			}
		}
		h.sched.Tick(dt)
		require.LessOrEqual(t, h.sched.Len(), 1)
	}

	require.Equal(t, 1, h.rec.maxRunning, "exit and enter never overlap")
	require.Positive(t, changes)

	var enters, exits int
	for _, e := range h.rec.events {
		var verb, state, edge string
		_, err := fmt.Sscanf(e, "%s %s %s", &verb, &state, &edge)
		require.NoError(t, err)
		if edge != "begin" {
			continue
		}
		switch verb {
		case "enter":
			enters++
		case "exit":
			exits++
		}
	}
	require.Equal(t, changes, enters)
	require.LessOrEqual(t, enters-exits, 1)
}

func TestParseState(t *testing.T) {
	t.Parallel()

	for _, s := range States() {
		got, err := ParseState(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := ParseState(" Detail ")
	require.NoError(t, err)
	require.Equal(t, Detail, got)

	_, err = ParseState("none")
	require.True(t, errors.Is(err, ErrUnknownState))
	require.Equal(t, "state(42)", State(42).String())
	require.Equal(t, "transitioning", Transitioning.String())
}
