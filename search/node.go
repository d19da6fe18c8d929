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

// Package search explores the state space of cake-sorting games
// to find a sequence of placements that wins.  It offers seven
// interchangeable strategies (breadth-first, depth-first,
// iterative deepening, uniform cost, greedy best-first, A* and
// weighted A*) over a shared node abstraction, plus the
// heuristic evaluators the informed strategies rank nodes with.
//
// The engine is synchronous and performs no I/O and no timing of
// its own; callers measure wall clocks and build run records.
package search

import (
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

// A Node is one vertex of the search tree: a game state, the
// node it was expanded from, the placement that produced it, and
// its path cost and depth.  Parent links are read-only
// provenance used for path reconstruction; nodes never form
// cycles.
type Node struct {
	State  *puzzle.State
	Parent *Node
	Action puzzle.Action
	Cost   int
	Depth  int
}

// newRoot wraps an initial state in a parentless node.
func newRoot(s *puzzle.State) *Node {
	return &Node{State: s}
}

// Successors expands a node: for every empty board cell in
// row-major order, for every plate in the visible window in
// index order, clone the state and attempt the placement.  Each
// successful placement becomes a successor with cost and depth
// one more than the parent's.  The enumeration order is part of
// the contract; the uninformed strategies inherit their
// exploration order from it.
func Successors(node *Node) []*Node {
	var successors []*Node
	state := node.State
	for r := 0; r < state.Board.Rows(); r++ {
		for c := 0; c < state.Board.Cols(); c++ {
			if !state.Board.IsEmpty(r, c) {
				continue
			}
			for i := 0; i < state.Supply.VisibleCount(); i++ {
				next := state.Clone()
				if ok, _ := next.Place(r, c, i); !ok {
					continue
				}
				successors = append(successors, &Node{
					State:  next,
					Parent: node,
					Action: puzzle.Action{Row: r, Col: c, Plate: i},
					Cost:   node.Cost + 1,
					Depth:  node.Depth + 1,
				})
			}
		}
	}
	return successors
}

// IsGoal reports whether a node's state is a winning terminal:
// either the state already flags the win, or the supply has been
// exhausted without the board being full.  The two conditions
// normally coincide; tests guard against them diverging.
func IsGoal(node *Node) bool {
	s := node.State
	return s.Win || (s.Supply.IsExhausted() && !s.Board.IsFull())
}

// SolutionPath walks the parent chain back to the root and
// returns the actions along it, in execution order.
func SolutionPath(node *Node) []puzzle.Action {
	var path []puzzle.Action
	for current := node; current.Parent != nil; current = current.Parent {
		path = append(path, current.Action)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
