package search

import (
	"math/rand"
	"time"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

/*

Uninformed strategies

All strategies share the same skeleton: a frontier of nodes, a
visited set of canonical state fingerprints, and lazy duplicate
filtering.  A state may be enqueued several times through
different parents; it is marked visited when removed from the
frontier for expansion, and later removals of the same
fingerprint are skipped.  This trades some frontier memory for
never re-expanding a state.

Depth-first search deliberately shuffles each node's successors
before pushing them, so repeated runs explore the tree in
different orders.  That anti-bias randomization means DFS is the
one strategy whose returned path is not reproducible; everything
else is deterministic for a fixed initial state.

Iterative deepening re-runs the depth-limited search with a
growing bound, and also keeps the shortest exhausted-supply path
it has seen anywhere in the tree.  If its wall-clock budget runs
out, or every depth bound is exhausted without reaching a goal,
that remembered path is returned as a best-effort partial
solution.  This relaxation is part of the strategy's contract,
not a fallback bug.

*/

// DefaultIDSBudget is the wall-clock allowance for iterative
// deepening before it settles for a partial solution.
const DefaultIDSBudget = 600 * time.Second

// BFS runs breadth-first search from the initial state.  It
// returns the first goal reached in expansion order, or
// (false, nil) once the frontier empties.
func BFS(initial *puzzle.State) (bool, []puzzle.Action) {
	root := newRoot(initial)
	if IsGoal(root) {
		return true, []puzzle.Action{}
	}
	queue := []*Node{root}
	visited := make(map[string]bool)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		repr := node.State.Representation()
		if visited[repr] {
			continue
		}
		visited[repr] = true

		if IsGoal(node) {
			return true, SolutionPath(node)
		}
		queue = append(queue, Successors(node)...)
	}
	return false, nil
}

// DFS runs depth-limited depth-first search.  Nodes at or past
// depthLimit are dropped, not expanded; a non-positive limit
// defaults to twice the game's plate limit.  Successors are
// shuffled with rng before being pushed; a nil rng gets a
// clock-seeded one.
func DFS(initial *puzzle.State, depthLimit int, rng *rand.Rand) (bool, []puzzle.Action) {
	root := newRoot(initial)
	if IsGoal(root) {
		return true, []puzzle.Action{}
	}
	if depthLimit <= 0 {
		depthLimit = 2 * initial.Supply.Limit()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	stack := []*Node{root}
	visited := make(map[string]bool)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.Depth >= depthLimit {
			continue
		}
		repr := node.State.Representation()
		if visited[repr] {
			continue
		}
		visited[repr] = true

		if IsGoal(node) {
			return true, SolutionPath(node)
		}
		successors := Successors(node)
		rng.Shuffle(len(successors), func(i, j int) {
			successors[i], successors[j] = successors[j], successors[i]
		})
		stack = append(stack, successors...)
	}
	return false, nil
}

// IDS runs iterative-deepening search with depth bounds from 1
// up to maxDepth (defaulting to the game's plate limit when
// non-positive) and the given wall-clock budget (defaulting to
// DefaultIDSBudget).  A true goal ends the search immediately.
// On budget expiry, or after the last depth bound, IDS returns
// (true, path) with the shortest exhausted-supply path observed
// so far if there was one, else (false, nil).
func IDS(initial *puzzle.State, maxDepth int, budget time.Duration) (bool, []puzzle.Action) {
	start := time.Now()
	if maxDepth <= 0 {
		maxDepth = initial.Supply.Limit()
	}
	if budget <= 0 {
		budget = DefaultIDSBudget
	}
	root := newRoot(initial)
	if IsGoal(root) {
		return true, []puzzle.Action{}
	}

	var best []puzzle.Action
	for depthLimit := 1; depthLimit <= maxDepth; depthLimit++ {
		stack := []*Node{root}
		visited := make(map[string]bool)
		for len(stack) > 0 {
			if time.Since(start) > budget {
				if best != nil {
					return true, best
				}
				return false, nil
			}
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			// goal test happens before duplicate or depth
			// filtering, so a goal found at the bound still
			// counts
			if IsGoal(node) {
				return true, SolutionPath(node)
			}
			repr := node.State.Representation()
			if visited[repr] || node.Depth >= depthLimit {
				continue
			}
			visited[repr] = true

			if node.State.Supply.IsExhausted() {
				if solution := SolutionPath(node); best == nil || len(solution) < len(best) {
					best = solution
				}
			}
			stack = append(stack, Successors(node)...)
		}
	}
	if best != nil {
		return true, best
	}
	return false, nil
}
