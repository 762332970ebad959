package core

// MoveOutcome describes what a movement step did
type MoveOutcome int

const (
	// MoveNone means no selection was pending
	MoveNone MoveOutcome = iota
	// MoveApplied means the target was on the board and movable units were relocated
	MoveApplied
	// MoveRejected means the target was not an available tile
	MoveRejected
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveNone:
		return "none"
	case MoveApplied:
		return "applied"
	case MoveRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MoveResult reports the result of a single ResolveMovement call
type MoveResult struct {
	Outcome MoveOutcome
	Target  HexCoord
	Moved   []EntityID
}

// ResolveMovement consumes the pending selection and, if the target is an
// available tile, moves every movable unit onto it. The selection is always
// empty afterwards. Illegal targets are dropped without error.
func ResolveMovement(sel *Selection, board *Board, units *UnitStore) MoveResult {
	target, ok := sel.Take()
	if !ok {
		return MoveResult{Outcome: MoveNone}
	}

	if !board.Contains(target) {
		return MoveResult{Outcome: MoveRejected, Target: target}
	}

	return MoveResult{
		Outcome: MoveApplied,
		Target:  target,
		Moved:   units.relocate(TagMovable, target),
	}
}
