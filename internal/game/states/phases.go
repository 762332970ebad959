package states

import "fmt"

// GamePhase represents the current lifecycle phase of an engine
type GamePhase int

const (
	// PhaseInitializing - board generation, unit spawn
	PhaseInitializing GamePhase = iota

	// PhaseRunning - clicks are accepted and ticks resolve movement
	PhaseRunning

	// PhasePaused - ticks are no-ops, selections are still recorded
	PhasePaused

	// PhaseEnded - window closed or simulation finished
	PhaseEnded
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if no further transitions are possible
func (p GamePhase) IsTerminal() bool {
	return p == PhaseEnded
}

// ResolvesMovement returns true if ticks in this phase run the movement step
func (p GamePhase) ResolvesMovement() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhaseRunning, PhaseEnded}
	case PhaseRunning:
		return []GamePhase{PhasePaused, PhaseEnded}
	case PhasePaused:
		return []GamePhase{PhaseRunning, PhaseEnded}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	switch s {
	case "Initializing":
		return PhaseInitializing, nil
	case "Running":
		return PhaseRunning, nil
	case "Paused":
		return PhasePaused, nil
	case "Ended":
		return PhaseEnded, nil
	default:
		return PhaseInitializing, fmt.Errorf("unknown phase %q", s)
	}
}
