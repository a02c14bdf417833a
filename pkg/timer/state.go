package timer

import "fmt"

// State is a Timer lifecycle state, derived from which marks exist.
type State string

const (
	StateEmpty   State = "empty"   // no marks; initial and post-reset
	StateStarted State = "started" // start mark recorded, stop mark pending
	StateStopped State = "stopped" // both marks recorded, measurement complete
)

// validTransitions maps from-state to allowed to-states. Reset is absent
// because it is allowed from every state.
var validTransitions = map[State]map[State]bool{
	StateEmpty: {
		StateStarted: true, // Empty → Started (start mark recorded)
	},
	StateStarted: {
		StateStopped: true, // Started → Stopped (stop mark recorded)
	},
	// Stopped is terminal for a single measurement; only Reset leaves it.
	StateStopped: {},
}

// validateTransition checks whether a lifecycle transition is allowed.
func validateTransition(from, to State) error {
	allowed, ok := validTransitions[from]
	if !ok {
		return fmt.Errorf("unknown source state: %s", from)
	}
	if !allowed[to] {
		return fmt.Errorf("invalid transition from %s to %s", from, to)
	}
	return nil
}

// IsComplete reports whether the state holds a finished measurement.
func (s State) IsComplete() bool { return s == StateStopped }
