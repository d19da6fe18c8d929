package search

import (
	"container/heap"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

/*

Cost-based and informed strategies

The heap-ordered strategies differ only in how they key the
frontier.  Uniform-cost keys on path cost alone and makes no
promise about the order of equal-cost nodes.  The informed
strategies key on (score, insertion counter): the counter is a
monotonically increasing tag that breaks score ties in first-in
order purely so heap comparisons are total and runs are
deterministic; it carries no meaning.

*/

// DefaultAStarWeight is the heuristic inflation used by the
// registry's weighted A* binding.
const DefaultAStarWeight = 1.5

// costHeap orders nodes by path cost only.
type costHeap []*Node

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].Cost < h[j].Cost }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(*Node)) }
func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// UCS runs uniform-cost search.  Unlike the other strategies it
// tests the goal as successors are generated, before they join
// the frontier.
func UCS(initial *puzzle.State) (bool, []puzzle.Action) {
	root := newRoot(initial)
	if IsGoal(root) {
		return true, []puzzle.Action{}
	}
	frontier := &costHeap{root}
	heap.Init(frontier)
	visited := make(map[string]bool)
	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*Node)

		repr := node.State.Representation()
		if visited[repr] {
			continue
		}
		visited[repr] = true

		for _, successor := range Successors(node) {
			if IsGoal(successor) {
				return true, SolutionPath(successor)
			}
			heap.Push(frontier, successor)
		}
	}
	return false, nil
}

// A scoredEntry is a frontier slot for the informed strategies:
// the node, its score under the strategy's keying, and the
// insertion tag that breaks ties.
type scoredEntry struct {
	node  *Node
	score float64
	seq   int
}

// scoredHeap orders entries by score, then insertion order.
type scoredHeap []scoredEntry

func (h scoredHeap) Len() int { return len(h) }
func (h scoredHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq < h[j].seq
}
func (h scoredHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x interface{}) { *h = append(*h, x.(scoredEntry)) }
func (h *scoredHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = scoredEntry{}
	*h = old[:n-1]
	return entry
}

// bestFirst is the shared engine of Greedy, A* and weighted A*:
// a best-first search whose frontier is keyed by the given
// scoring function.
func bestFirst(initial *puzzle.State, score func(*Node) float64) (bool, []puzzle.Action) {
	root := newRoot(initial)
	if IsGoal(root) {
		return true, []puzzle.Action{}
	}
	seq := 0
	frontier := &scoredHeap{{node: root, score: score(root), seq: seq}}
	heap.Init(frontier)
	visited := make(map[string]bool)
	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(scoredEntry).node

		repr := node.State.Representation()
		if visited[repr] {
			continue
		}
		visited[repr] = true

		if IsGoal(node) {
			return true, SolutionPath(node)
		}
		for _, successor := range Successors(node) {
			seq++
			heap.Push(frontier, scoredEntry{node: successor, score: score(successor), seq: seq})
		}
	}
	return false, nil
}

// Greedy runs greedy best-first search under the given
// heuristic: frontier keyed by the heuristic alone.
func Greedy(initial *puzzle.State, h Heuristic) (bool, []puzzle.Action) {
	return bestFirst(initial, func(n *Node) float64 {
		return h(n)
	})
}

// AStar runs A* under the given heuristic: frontier keyed by
// path cost plus heuristic.
func AStar(initial *puzzle.State, h Heuristic) (bool, []puzzle.Action) {
	return bestFirst(initial, func(n *Node) float64 {
		return float64(n.Cost) + h(n)
	})
}

// WeightedAStar runs A* with the heuristic inflated by weight.
// Weights above 1 trade path quality for search speed; a
// non-positive weight defaults to DefaultAStarWeight.
func WeightedAStar(initial *puzzle.State, weight float64, h Heuristic) (bool, []puzzle.Action) {
	if weight <= 0 {
		weight = DefaultAStarWeight
	}
	return bestFirst(initial, func(n *Node) float64 {
		return float64(n.Cost) + weight*h(n)
	})
}
