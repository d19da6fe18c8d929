package search

/*

Heuristic evaluators

All evaluators take a read-only look at a node's state and
return a non-negative estimate; lower means "closer to done".
None of them is proven admissible, and Combined's weights were
tuned empirically, so A* and weighted A* are best-first searches
under this scoring rather than guaranteed-optimal planners.
That behavior is intentional and preserved.

*/

import (
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

// A Heuristic estimates how far a node is from a winning
// terminal.  Heuristics never mutate the state they score.
type Heuristic func(*Node) float64

// virtualPenalty is the clustering distance charged for any pair
// involving a plate that is not on the board yet.
const virtualPenalty = 5

// Combined's weights, in FreeSlots, MissingSlices,
// ClusteredSlices, EstimatedMoves order.
const (
	freeSlotsWeight      = 1.0
	missingSlicesWeight  = 2.0
	clusteredWeight      = 1.5
	estimatedMovesWeight = 3.0
)

// FreeSlots scores a node by how many board cells are occupied.
func FreeSlots(node *Node) float64 {
	return float64(node.State.Board.CountOccupied())
}

// MissingSlices counts, over every slice type present anywhere
// (board, visible window or queue), the slices still needed to
// round the type's total up to a multiple of a full cake.
func MissingSlices(node *Node) float64 {
	counts := sliceCounts(node.State)
	missing := 0
	for _, count := range counts {
		if rem := count % puzzle.PlateSlots; rem > 0 {
			missing += puzzle.PlateSlots - rem
		}
	}
	return float64(missing)
}

// sliceCounts tallies every slice in the state by type.
func sliceCounts(s *puzzle.State) [puzzle.MaxSliceType + 1]int {
	var counts [puzzle.MaxSliceType + 1]int
	forEachSlice(s, func(t puzzle.SliceType, _, _ int) {
		counts[t]++
	})
	return counts
}

// forEachSlice visits every slice in the state with its
// position.  Board slices report their cell; plates still in the
// supply report virtual positions with negative row sentinels:
// -1 for the visible window, -2 for the queue, with the plate
// index as the column.
func forEachSlice(s *puzzle.State, visit func(t puzzle.SliceType, row, col int)) {
	for r := 0; r < s.Board.Rows(); r++ {
		for c := 0; c < s.Board.Cols(); c++ {
			plate, ok := s.Board.PlateAt(r, c)
			if !ok {
				continue
			}
			for _, t := range plate {
				if t != 0 {
					visit(t, r, c)
				}
			}
		}
	}
	for i, plate := range s.Supply.Visible() {
		for _, t := range plate {
			if t != 0 {
				visit(t, -1, i)
			}
		}
	}
	for i, plate := range s.Supply.Queued() {
		for _, t := range plate {
			if t != 0 {
				visit(t, -2, i)
			}
		}
	}
}

// ClusteredSlices measures how scattered each slice type is: for
// every pair of same-typed slices it adds the Manhattan distance
// between their plates' cells, or a fixed penalty when either
// slice is still in the supply.  Slices sharing one plate are
// distance zero, which rewards stacking a type on a single
// plate.
func ClusteredSlices(node *Node) float64 {
	type position struct{ row, col int }
	var positions [puzzle.MaxSliceType + 1][]position
	forEachSlice(node.State, func(t puzzle.SliceType, row, col int) {
		positions[t] = append(positions[t], position{row, col})
	})

	dispersion := 0
	for _, ps := range positions {
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				if ps[i].row < 0 || ps[j].row < 0 {
					dispersion += virtualPenalty
				} else {
					dispersion += abs(ps[i].row-ps[j].row) + abs(ps[i].col-ps[j].col)
				}
			}
		}
	}
	return float64(dispersion)
}

// EstimatedMoves scores a node by the placements still to make:
// every plate left in the window and the queue.
func EstimatedMoves(node *Node) float64 {
	s := node.State.Supply
	return float64(s.VisibleCount() + s.QueueCount())
}

// Combined is the weighted sum of the four component heuristics.
// It is the default scoring for the informed strategies.
func Combined(node *Node) float64 {
	return freeSlotsWeight*FreeSlots(node) +
		missingSlicesWeight*MissingSlices(node) +
		clusteredWeight*ClusteredSlices(node) +
		estimatedMovesWeight*EstimatedMoves(node)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

/*

Registered heuristics

*/

// knownHeuristics is the lookup table for evaluators, keyed by
// the names run records use.
var knownHeuristics = map[string]Heuristic{
	"free":      FreeSlots,
	"missing":   MissingSlices,
	"clustered": ClusteredSlices,
	"moves":     EstimatedMoves,
	"combined":  Combined,
}

// LookupHeuristicByName is how callers pick an evaluator.  The
// boolean return value tells you whether the name is known,
// similar to a map lookup.
func LookupHeuristicByName(name string) (Heuristic, bool) {
	h, ok := knownHeuristics[name]
	return h, ok
}

// HeuristicNames returns the registered evaluator names, in no
// particular order.
func HeuristicNames() []string {
	names := make([]string, 0, len(knownHeuristics))
	for name := range knownHeuristics {
		names = append(names, name)
	}
	return names
}
