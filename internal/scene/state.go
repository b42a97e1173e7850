package scene

import (
	"fmt"
	"strings"
)

// State is one of the mutually exclusive presentation modes.
type State uint8

const (
	// None is the state before the first transition completes its exit step.
	// It is never a valid ChangeScene target.
	None State = iota
	Title
	Orbit
	Detail
)

var stateNames = [...]string{
	None:   "none",
	Title:  "title",
	Orbit:  "orbit",
	Detail: "detail",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Valid reports whether s names a registrable state.
func (s State) Valid() bool {
	return s >= Title && s <= Detail
}

// States returns every registrable state in presentation order.
func States() []State {
	return []State{Title, Orbit, Detail}
}

// ParseState is the inverse of State.String for registrable states.
func ParseState(name string) (State, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range States() {
		if s.String() == n {
			return s, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// Phase is the orchestrator's own lifecycle.
type Phase uint8

const (
	Uninitialized Phase = iota
	Active
	Transitioning
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case Transitioning:
		return "transitioning"
	default:
		return "uninitialized"
	}
}
