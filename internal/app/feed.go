package app

import "github.com/ashshourov/OrbitSphere/internal/render"

// Priority controls how an event is colored.
type Priority uint8

const (
	PriorityInfo    Priority = iota // cyan
	PriorityWarning                 // yellow
	PriorityScene                   // green
)

// Event is a single line in the feed.
type Event struct {
	Text     string
	Priority Priority
	At       float64 // scheduler time in seconds
}

// Feed is a bounded FIFO of events. Long texts are wrapped into several
// entries.
type Feed struct {
	events  []Event
	maxSize int
	width   int
}

// NewFeed creates a feed that keeps the most recent maxSize lines, each at
// most width characters.
func NewFeed(maxSize, width int) *Feed {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Feed{events: make([]Event, 0, maxSize), maxSize: maxSize, width: width}
}

// Add appends text, evicting the oldest lines when full.
func (f *Feed) Add(text string, priority Priority, at float64) {
	for _, line := range render.Wrap(text, f.width) {
		ev := Event{Text: line, Priority: priority, At: at}
		if len(f.events) >= f.maxSize {
			copy(f.events, f.events[1:])
			f.events[len(f.events)-1] = ev
			continue
		}
		f.events = append(f.events, ev)
	}
}

// Recent returns the last n events, or fewer if the feed is shorter.
func (f *Feed) Recent(n int) []Event {
	n = max(0, min(n, len(f.events)))
	out := make([]Event, n)
	copy(out, f.events[len(f.events)-n:])
	return out
}

// Lines returns the text of the last n events.
func (f *Feed) Lines(n int) []string {
	events := f.Recent(n)
	lines := make([]string, len(events))
	for i, ev := range events {
		lines[i] = ev.Text
	}
	return lines
}

func (f *Feed) Len() int { return len(f.events) }
