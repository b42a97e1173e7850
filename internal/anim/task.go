package anim

// Status is the result of polling a Task.
type Status uint8

const (
	Running Status = iota
	Done
)

func (s Status) String() string {
	if s == Done {
		return "done"
	}
	return "running"
}

// Task is a unit of work driven by the scheduler clock. Poll advances the
// task by dt seconds and reports whether it has finished.
//
// The first Poll of any task in this package starts it and consumes no time,
// so a task never completes synchronously with the call that launched it.
type Task interface {
	Poll(dt float64) Status
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func(dt float64) Status

func (f TaskFunc) Poll(dt float64) Status { return f(dt) }

type nop struct{}

func (nop) Poll(float64) Status { return Done }

// Nop returns a task that finishes on its first poll.
func Nop() Task { return nop{} }

type do struct {
	fn   func()
	done bool
}

// Do runs fn on the first poll and finishes. A nil fn behaves like Nop.
func Do(fn func()) Task { return &do{fn: fn} }

func (d *do) Poll(float64) Status {
	if !d.done {
		d.done = true
		if d.fn != nil {
			d.fn()
		}
	}
	return Done
}

type wait struct {
	duration float64
	elapsed  float64
	started  bool
}

// Wait finishes once d seconds have elapsed after its first poll.
func Wait(d float64) Task {
	if d < 0 {
		d = 0
	}
	return &wait{duration: d}
}

func (w *wait) Poll(dt float64) Status {
	if !w.started {
		w.started = true
		return Running
	}
	if w.elapsed >= w.duration {
		return Done
	}
	if dt > 0 {
		w.elapsed += dt
	}
	if w.elapsed >= w.duration {
		return Done
	}
	return Running
}

type lazy struct {
	build func() Task
	task  Task
	built bool
}

// Lazy defers building a task until its first poll. Choreographies use it to
// read live state (positions, selection) at the moment a step begins rather
// than when the choreography is assembled.
func Lazy(build func() Task) Task { return &lazy{build: build} }

func (l *lazy) Poll(dt float64) Status {
	if !l.built {
		l.built = true
		if l.build != nil {
			l.task = l.build()
		}
	}
	if l.task == nil {
		return Done
	}
	return l.task.Poll(dt)
}

type sequence struct {
	tasks []Task
	next  int
}

// Sequence runs tasks one after another. When a task finishes, the next one
// receives its first poll in the same tick. Nil entries are skipped.
func Sequence(tasks ...Task) Task { return &sequence{tasks: tasks} }

func (s *sequence) Poll(dt float64) Status {
	for s.next < len(s.tasks) {
		t := s.tasks[s.next]
		if t != nil && t.Poll(dt) == Running {
			return Running
		}
		s.next++
	}
	return Done
}

type parallel struct {
	tasks []Task
	done  []bool
	left  int
}

// Parallel polls every unfinished task each tick and finishes when the
// slowest one has finished.
func Parallel(tasks ...Task) Task {
	return &parallel{tasks: tasks, done: make([]bool, len(tasks)), left: len(tasks)}
}

func (p *parallel) Poll(dt float64) Status {
	for i, t := range p.tasks {
		if p.done[i] {
			continue
		}
		if t == nil || t.Poll(dt) == Done {
			p.done[i] = true
			p.left--
		}
	}
	if p.left == 0 {
		return Done
	}
	return Running
}
