package search

import (
	"fmt"
	"time"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

/*

Run records

*/

// A Result is the structured record of one solver invocation,
// built by the caller after the engine returns.  The engine
// itself performs no timing, so ExecutionTime is whatever wall
// clock the caller measured.  The JSON field names match the
// benchmark files the analysis tooling consumes.
type Result struct {
	Algorithm     string  `json:"algorithm"`
	Heuristic     string  `json:"heuristic,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	BoardSize     string  `json:"board_size"`
	Success       bool    `json:"success"`
	PathLength    int     `json:"path_length"`
	ExecutionTime float64 `json:"execution_time"`
	Timestamp     string  `json:"timestamp"`
}

// NewResult builds the record for one finished run.
func NewResult(ad *AlgorithmDescriptor, s *puzzle.State, success bool,
	path []puzzle.Action, elapsed time.Duration) Result {
	return Result{
		Algorithm:     ad.Names[0],
		Heuristic:     ad.Heuristic,
		Weight:        ad.Weight,
		BoardSize:     BoardSizeLabel(s),
		Success:       success,
		PathLength:    len(path),
		ExecutionTime: elapsed.Seconds(),
		Timestamp:     time.Now().Format(time.RFC3339),
	}
}

// BoardSizeLabel renders a state's board dimensions the way run
// records report them, e.g. "4x4".
func BoardSizeLabel(s *puzzle.State) string {
	return fmt.Sprintf("%dx%d", s.Board.Rows(), s.Board.Cols())
}

// Replay applies a solver's action list, in order, to a clone of
// the initial state.  It returns the terminal state and whether
// every action applied cleanly.  A path returned by any strategy
// must replay cleanly against the state it was computed from;
// callers use this to drive displays and to double-check
// solutions.
func Replay(initial *puzzle.State, path []puzzle.Action) (*puzzle.State, bool) {
	s := initial.Clone()
	for _, action := range path {
		if ok, _ := s.Place(action.Row, action.Col, action.Plate); !ok {
			return s, false
		}
	}
	return s, true
}
