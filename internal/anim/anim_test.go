package anim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type alpha struct{ v float64 }

func (a *alpha) Opacity() float64     { return a.v }
func (a *alpha) SetOpacity(v float64) { a.v = v }

type point struct{ p Vec }

func (p *point) Position() Vec     { return p.p }
func (p *point) SetPosition(v Vec) { p.p = v }

type stale struct{ alpha }

func (*stale) Valid() bool { return false }

func run(t *testing.T, task Task, dt float64, maxTicks int) int {
	t.Helper()
	for i := 1; i <= maxTicks; i++ {
		if task.Poll(dt) == Done {
			return i
		}
	}
	t.Fatalf("task still running after %d polls", maxTicks)
	return 0
}

func TestFadeEndpointsAndMonotonic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		from, to float64
		easing   string
	}{
		{"in linear", 0, 1, "linear"},
		{"out linear", 1, 0, "linear"},
		{"in cubic", 0.2, 0.9, "in-out-cubic"},
		{"out sine", 0.75, 0.1, "out-sine"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fn, err := EasingByName(tc.easing)
			require.NoError(t, err)

			a := &alpha{v: 0.5}
			f := Fade(a, tc.from, tc.to, 1.5, WithEasing(fn))

			require.Equal(t, Running, f.Poll(0.25))
			require.Equal(t, tc.from, a.v, "first poll forces from")

			prev := a.v
			for i := 0; i < 5; i++ {
				require.Equal(t, Running, f.Poll(0.25))
				if tc.from < tc.to {
					require.GreaterOrEqual(t, a.v, prev)
				} else {
					require.LessOrEqual(t, a.v, prev)
				}
				prev = a.v
			}
			require.Equal(t, Done, f.Poll(0.25))
			require.Equal(t, tc.to, a.v, "last poll snaps exactly to the end value")
			require.Equal(t, Done, f.Poll(0.25))
			require.Equal(t, tc.to, a.v)
		})
	}
}

func TestFadeLinearMidpoint(t *testing.T) {
	t.Parallel()

	a := &alpha{}
	f := Fade(a, 0, 1, 1)
	f.Poll(0.5)
	require.Equal(t, Running, f.Poll(0.5))
	require.Equal(t, 0.5, a.v)
	require.Equal(t, Done, f.Poll(0.5))
	require.Equal(t, 1.0, a.v)
}

func TestZeroDurationTakesAStep(t *testing.T) {
	t.Parallel()

	a := &alpha{v: 0.3}
	f := Fade(a, 0, 1, 0)
	require.Equal(t, Running, f.Poll(0))
	require.Equal(t, 0.0, a.v)
	require.Equal(t, Done, f.Poll(0))
	require.Equal(t, 1.0, a.v)

	p := &point{}
	m := Move(p, Vec{X: 3, Y: -2}, 0)
	require.Equal(t, Running, m.Poll(1))
	require.Equal(t, Vec{}, p.p)
	require.Equal(t, Done, m.Poll(0))
	require.Equal(t, Vec{X: 3, Y: -2}, p.p)

	require.Equal(t, 2, run(t, Wait(0), 0.25, 5))
	require.Equal(t, 2, run(t, Wait(-1), 0.25, 5))
}

func TestAbsentTargetIsNoop(t *testing.T) {
	t.Parallel()

	require.Equal(t, Done, Fade(nil, 0, 1, 2).Poll(0.25))
	require.Equal(t, Done, Move(nil, Vec{X: 1}, 2).Poll(0.25))

	s := &stale{alpha{v: 0.4}}
	require.Equal(t, Done, Fade(s, 0, 1, 2).Poll(0.25))
	require.Equal(t, 0.4, s.v)
}

func TestMoveReadsLivePosition(t *testing.T) {
	t.Parallel()

	p := &point{p: Vec{X: 1, Y: 1}}
	m := Move(p, Vec{X: 3, Y: -3}, 1)
	p.p = Vec{X: -1, Y: 1}

	require.Equal(t, Running, m.Poll(0.25))
	require.Equal(t, Vec{X: -1, Y: 1}, p.p)
	require.Equal(t, Running, m.Poll(0.5))
	require.Equal(t, Vec{X: 1, Y: -1}, p.p)
	require.Equal(t, Done, m.Poll(0.5))
	require.Equal(t, Vec{X: 3, Y: -3}, p.p)
}

func TestMoveEndsExactly(t *testing.T) {
	t.Parallel()

	p := &point{p: Vec{X: 0.1, Y: 0.7}}
	target := Vec{X: -4.3, Y: 1.0 / 3}
	ticks := run(t, Move(p, target, 1.2), 1.0/60, 200)
	require.Equal(t, target, p.p)
	require.GreaterOrEqual(t, ticks, 72)
}

func TestSequenceRunsInOrder(t *testing.T) {
	t.Parallel()

	var log []string
	a := &alpha{}
	seq := Sequence(
		Do(func() { log = append(log, "first") }),
		nil,
		Fade(a, 0, 1, 0.5),
		Do(func() { log = append(log, "after fade") }),
	)

	require.Equal(t, Running, seq.Poll(0.25))
	require.Equal(t, []string{"first"}, log)
	require.Equal(t, 0.0, a.v)

	require.Equal(t, Running, seq.Poll(0.25))
	require.Equal(t, []string{"first"}, log)

	require.Equal(t, Done, seq.Poll(0.25))
	require.Equal(t, []string{"first", "after fade"}, log)
	require.Equal(t, 1.0, a.v)
}

func TestParallelJoinsOnSlowest(t *testing.T) {
	t.Parallel()

	fast, slow := &alpha{}, &alpha{}
	par := Parallel(Fade(fast, 0, 1, 0.25), Fade(slow, 0, 1, 1), nil)

	require.Equal(t, Running, par.Poll(0.25))
	require.Equal(t, Running, par.Poll(0.25))
	require.Equal(t, 1.0, fast.v)
	require.Equal(t, 0.25, slow.v)

	ticks := run(t, par, 0.25, 10)
	require.Equal(t, 3, ticks)
	require.Equal(t, 1.0, slow.v)

	require.Equal(t, Done, Parallel().Poll(0))
}

func TestLazyBuildsOnFirstPoll(t *testing.T) {
	t.Parallel()

	built := 0
	l := Lazy(func() Task {
		built++
		return Wait(0.25)
	})
	require.Zero(t, built)
	require.Equal(t, Running, l.Poll(0.25))
	require.Equal(t, 1, built)
	require.Equal(t, Done, l.Poll(0.25))
	require.Equal(t, 1, built)

	require.Equal(t, Done, Lazy(func() Task { return nil }).Poll(0))
}

func TestSchedulerDefersFirstPoll(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	a := &alpha{v: 0.9}
	s.Go(Fade(a, 0, 1, 0))
	s.Go(nil)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 0.9, a.v, "Go never polls synchronously")

	s.Tick(0.25)
	require.Equal(t, 0.0, a.v)
	require.Equal(t, 1, s.Len())

	s.Tick(0.25)
	require.Equal(t, 1.0, a.v)
	require.Zero(t, s.Len())
	require.Equal(t, uint64(2), s.Ticks())
	require.Equal(t, 0.5, s.Elapsed())
}

func TestSchedulerGoFromInsideTask(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	polled := 0
	s.Go(Do(func() {
		s.Go(TaskFunc(func(float64) Status {
			polled++
			return Done
		}))
	}))

	s.Tick(0.25)
	require.Zero(t, polled)
	require.Equal(t, 1, s.Len())
	s.Tick(0.25)
	require.Equal(t, 1, polled)
	require.Zero(t, s.Len())
}

func TestEasingNames(t *testing.T) {
	t.Parallel()

	names := EasingNames()
	require.Contains(t, names, "linear")
	require.IsIncreasing(t, names)
	for _, n := range names {
		_, err := EasingByName(n)
		require.NoError(t, err)
	}
	_, err := EasingByName("out-elastic")
	require.Error(t, err)
}
