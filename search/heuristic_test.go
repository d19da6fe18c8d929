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
	"testing"
)

/*

Heuristic fixtures

The mixed game below has known contents everywhere a heuristic
looks: two 1-slices on the board at (0, 0), a window of three
plates holding {1, 2}, {2} and {1}, and a queue of one plate
holding {3}.  Component values are worked out by hand in each
test.

*/

var mixedHeuristicGame = `level 2
score 0 moves 1 used 1 limit 5 win false over false
board 2 2
1,1,None,None,None,None,None,None | Empty
Empty | Empty
plates
1,2,None,None,None,None,None,None;2,None,None,None,None,None,None,None;1,None,None,None,None,None,None,None;3,None,None,None,None,None,None,None
`

// Two single-slice plates of the same type on opposite board
// corners and nothing left in the supply.
var cornersHeuristicGame = `level 1
score 0 moves 2 used 2 limit 2 win false over false
board 2 2
1,None,None,None,None,None,None,None | Empty
Empty | 1,None,None,None,None,None,None,None
plates

`

func TestFreeSlots(t *testing.T) {
	node := newRoot(mustRead(t, mixedHeuristicGame))
	if got := FreeSlots(node); got != 1 {
		t.Errorf("Got occupancy score %v, expected 1", got)
	}
	if got := FreeSlots(newRoot(mustRead(t, wonGame))); got != 0 {
		t.Errorf("An empty board scored %v, expected 0", got)
	}
}

func TestMissingSlices(t *testing.T) {
	// type 1 has 4 slices (4 short of a cake), type 2 has 2
	// (6 short), type 3 has 1 (7 short): 17 missing in all
	node := newRoot(mustRead(t, mixedHeuristicGame))
	if got := MissingSlices(node); got != 17 {
		t.Errorf("Got %v missing slices, expected 17", got)
	}
	if got := MissingSlices(newRoot(mustRead(t, wonGame))); got != 0 {
		t.Errorf("A won game scored %v missing slices, expected 0", got)
	}
}

func TestClusteredSlicesOnBoard(t *testing.T) {
	// one same-typed pair at (0,0) and (1,1): Manhattan 2
	node := newRoot(mustRead(t, cornersHeuristicGame))
	if got := ClusteredSlices(node); got != 2 {
		t.Errorf("Got dispersion %v, expected 2", got)
	}
}

func TestClusteredSlicesChargesSupplyPairs(t *testing.T) {
	// type 1: the board pair is on one plate (distance 0) and
	// the other five pairs each involve a supply plate, at the
	// fixed penalty of 5 apiece; type 2's only pair is entirely
	// in the window, another 5.  30 in all.
	node := newRoot(mustRead(t, mixedHeuristicGame))
	if got := ClusteredSlices(node); got != 30 {
		t.Errorf("Got dispersion %v, expected 30", got)
	}
}

func TestEstimatedMoves(t *testing.T) {
	node := newRoot(mustRead(t, mixedHeuristicGame))
	if got := EstimatedMoves(node); got != 4 {
		t.Errorf("Got %v estimated moves, expected 4 (3 visible + 1 queued)", got)
	}
}

func TestCombined(t *testing.T) {
	// 1.0*1 + 2.0*17 + 1.5*30 + 3.0*4
	node := newRoot(mustRead(t, mixedHeuristicGame))
	if got := Combined(node); got != 92 {
		t.Errorf("Got combined score %v, expected 92", got)
	}
	if got := Combined(newRoot(mustRead(t, wonGame))); got != 0 {
		t.Errorf("A won game got combined score %v, expected 0", got)
	}
}

func TestLookupHeuristicByName(t *testing.T) {
	for _, name := range []string{"free", "missing", "clustered", "moves", "combined"} {
		if _, ok := LookupHeuristicByName(name); !ok {
			t.Errorf("Heuristic %q isn't registered", name)
		}
	}
	if _, ok := LookupHeuristicByName("oracle"); ok {
		t.Errorf("An unregistered heuristic name resolved")
	}
}

func TestHeuristicNames(t *testing.T) {
	names := HeuristicNames()
	if len(names) != 5 {
		t.Errorf("Got %d heuristic names, expected 5: %v", len(names), names)
	}
	for _, name := range names {
		if _, ok := LookupHeuristicByName(name); !ok {
			t.Errorf("Listed heuristic %q doesn't resolve", name)
		}
	}
}
