package anim

// Scheduler multiplexes tasks on a single frame-driven timeline. It is not
// safe for concurrent use; the host loop owns it.
type Scheduler struct {
	active  []Task
	pending []Task
	ticks   uint64
	elapsed float64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Go launches t. It is first polled on the next Tick, even when Go is called
// from inside a running task.
func (s *Scheduler) Go(t Task) {
	if t == nil {
		return
	}
	s.pending = append(s.pending, t)
}

// Tick advances the clock by dt seconds and polls every live task once.
func (s *Scheduler) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.ticks++
	s.elapsed += dt

	if len(s.pending) > 0 {
		s.active = append(s.active, s.pending...)
		clear(s.pending)
		s.pending = s.pending[:0]
	}

	live := s.active[:0]
	for _, t := range s.active {
		if t.Poll(dt) == Running {
			live = append(live, t)
		}
	}
	clear(s.active[len(live):])
	s.active = live
}

// Len returns the number of tasks that have not finished, including ones
// waiting for their first tick.
func (s *Scheduler) Len() int { return len(s.active) + len(s.pending) }

// Ticks returns how many times Tick has run.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Elapsed returns the total simulated time in seconds.
func (s *Scheduler) Elapsed() float64 { return s.elapsed }
