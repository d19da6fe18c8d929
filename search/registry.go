// cakesort - a cake-sorting puzzle game and AI solver.
// Copyright (C) 2025 Maria João Vieira.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package search

import (
	"fmt"
	"strings"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

/*

Registered algorithms

*/

// A Solver runs one configured strategy against an initial
// state.  The initial state is not mutated; all exploration
// happens on clones.  A false result with a nil path means the
// strategy exhausted its frontier or its budget without finding
// a goal, which is a legitimate outcome, not an error.
type Solver func(*puzzle.State) (bool, []puzzle.Action)

// An AlgorithmDescriptor registers a strategy: its names (all
// unique among those registered), the heuristic name and weight
// its binding uses (empty and zero for the uninformed ones, kept
// here so run records can report them), and the Solver itself.
type AlgorithmDescriptor struct {
	Names     []string
	Heuristic string
	Weight    float64
	Solve     Solver
}

// The registry of known algorithms.  A linear list is fine for
// seven entries, and registration order gives Names() a stable
// order for menus and usage strings.
var knownAlgorithms []*AlgorithmDescriptor

// LookupAlgorithmByName finds a registered strategy.  Lookup is
// case-insensitive.  The boolean return value tells you whether
// the name is registered, similar to a map lookup.
func LookupAlgorithmByName(name string) (*AlgorithmDescriptor, bool) {
	name = strings.ToLower(name)
	for _, ad := range knownAlgorithms {
		for _, n := range ad.Names {
			if n == name {
				return ad, true
			}
		}
	}
	return nil, false
}

// RegisterAlgorithm is how you tell the module about new
// strategies.  The built-in seven register themselves at
// initialization.
func RegisterAlgorithm(ad *AlgorithmDescriptor) error {
	if ad == nil {
		return fmt.Errorf("Can't register a nil algorithm")
	}
	if len(ad.Names) == 0 || len(ad.Names[0]) == 0 {
		return fmt.Errorf("Can't register an algorithm with no name")
	}
	if ad.Solve == nil {
		return fmt.Errorf("Can't register algorithm %q with no solver", ad.Names[0])
	}
	for _, n := range ad.Names {
		if prior, ok := LookupAlgorithmByName(n); ok {
			return fmt.Errorf("Algorithm %q is already using name %q", prior.Names[0], n)
		}
	}
	knownAlgorithms = append(knownAlgorithms, ad)
	return nil
}

// AlgorithmNames returns the primary name of every registered
// strategy, in registration order.
func AlgorithmNames() []string {
	names := make([]string, len(knownAlgorithms))
	for i, ad := range knownAlgorithms {
		names[i] = ad.Names[0]
	}
	return names
}

// The default bindings: depth-first gets three times the plate
// limit as its depth bound, iterative deepening gets twice the
// plate limit and the standard wall-clock budget, and the
// informed strategies all use the combined heuristic, with
// weighted A* at the default weight.
func init() {
	builtins := []*AlgorithmDescriptor{
		{
			Names: []string{"bfs", "breadth-first"},
			Solve: BFS,
		},
		{
			Names: []string{"dfs", "depth-first"},
			Solve: func(s *puzzle.State) (bool, []puzzle.Action) {
				return DFS(s, 3*s.Supply.Limit(), nil)
			},
		},
		{
			Names: []string{"ids", "iterative-deepening"},
			Solve: func(s *puzzle.State) (bool, []puzzle.Action) {
				return IDS(s, 2*s.Supply.Limit(), DefaultIDSBudget)
			},
		},
		{
			Names: []string{"ucs", "uniform-cost"},
			Solve: UCS,
		},
		{
			Names:     []string{"greedy"},
			Heuristic: "combined",
			Solve: func(s *puzzle.State) (bool, []puzzle.Action) {
				return Greedy(s, Combined)
			},
		},
		{
			Names:     []string{"astar", "a*"},
			Heuristic: "combined",
			Solve: func(s *puzzle.State) (bool, []puzzle.Action) {
				return AStar(s, Combined)
			},
		},
		{
			Names:     []string{"wastar", "weighted-a*"},
			Heuristic: "combined",
			Weight:    DefaultAStarWeight,
			Solve: func(s *puzzle.State) (bool, []puzzle.Action) {
				return WeightedAStar(s, DefaultAStarWeight, Combined)
			},
		},
	}
	for _, ad := range builtins {
		if err := RegisterAlgorithm(ad); err != nil {
			panic(err)
		}
	}
}
