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
	"time"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

func TestBoardSizeLabel(t *testing.T) {
	if label := BoardSizeLabel(mustRead(t, twoByTwoChoicesGame)); label != "1x2" {
		t.Errorf("Got board size label %q, expected %q", label, "1x2")
	}
	state := puzzle.NewState(puzzle.Config{Level: 3, Seed: 1})
	if label := BoardSizeLabel(state); label != "5x5" {
		t.Errorf("Got board size label %q, expected %q", label, "5x5")
	}
}

func TestNewResult(t *testing.T) {
	ad, ok := LookupAlgorithmByName("wastar")
	if !ok {
		t.Fatalf("The weighted A* binding isn't registered")
	}
	state := mustRead(t, oneMoveWinGame)
	path := []puzzle.Action{{Row: 0, Col: 0, Plate: 0}}
	result := NewResult(ad, state, true, path, 1500*time.Millisecond)
	if result.Algorithm != "wastar" {
		t.Errorf("Got algorithm %q, expected %q", result.Algorithm, "wastar")
	}
	if result.Heuristic != "combined" || result.Weight != DefaultAStarWeight {
		t.Errorf("Got heuristic %q weight %v, expected %q at %v",
			result.Heuristic, result.Weight, "combined", DefaultAStarWeight)
	}
	if result.BoardSize != "1x1" {
		t.Errorf("Got board size %q, expected %q", result.BoardSize, "1x1")
	}
	if !result.Success || result.PathLength != 1 {
		t.Errorf("Got success %t path length %d, expected true and 1",
			result.Success, result.PathLength)
	}
	if result.ExecutionTime != 1.5 {
		t.Errorf("Got execution time %v, expected 1.5", result.ExecutionTime)
	}
	if _, err := time.Parse(time.RFC3339, result.Timestamp); err != nil {
		t.Errorf("Timestamp %q isn't RFC 3339: %v", result.Timestamp, err)
	}
}

func TestReplay(t *testing.T) {
	initial := mustRead(t, oneMoveWinGame)
	terminal, clean := Replay(initial, []puzzle.Action{{Row: 0, Col: 0, Plate: 0}})
	if !clean || !terminal.Win {
		t.Errorf("A legal path replayed with clean %t win %t", clean, terminal.Win)
	}
	if initial.Moves != 0 {
		t.Errorf("Replay mutated the initial state: %d moves", initial.Moves)
	}

	// an out-of-range plate index stops the replay where it failed
	if _, clean := Replay(initial, []puzzle.Action{{Row: 0, Col: 0, Plate: 5}}); clean {
		t.Errorf("An illegal placement replayed cleanly")
	}
}
