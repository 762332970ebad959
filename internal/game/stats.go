package game

import "github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"

// Stats counts what the engine has done since it started
type Stats struct {
	Ticks         uint64
	Selections    uint64
	MovesApplied  uint64
	MovesRejected uint64
	LastMoveTick  uint64
}

// record folds one movement result into the counters
func (s *Stats) record(tick uint64, result core.MoveResult) {
	switch result.Outcome {
	case core.MoveApplied:
		s.MovesApplied++
		s.LastMoveTick = tick
	case core.MoveRejected:
		s.MovesRejected++
	}
}
