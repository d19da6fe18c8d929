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
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

/*

Strategy tests

DFS is exercised separately with a fixed random source; with a
clock-seeded source its exploration order, and so its path, is
deliberately not reproducible.

*/

var deterministicSolvers = []struct {
	name  string
	solve Solver
}{
	{"bfs", BFS},
	{"ucs", UCS},
	{"greedy", func(s *puzzle.State) (bool, []puzzle.Action) {
		return Greedy(s, Combined)
	}},
	{"astar", func(s *puzzle.State) (bool, []puzzle.Action) {
		return AStar(s, Combined)
	}},
	{"wastar", func(s *puzzle.State) (bool, []puzzle.Action) {
		return WeightedAStar(s, 0, Combined)
	}},
	{"ids", func(s *puzzle.State) (bool, []puzzle.Action) {
		return IDS(s, 0, 0)
	}},
	{"dfs", func(s *puzzle.State) (bool, []puzzle.Action) {
		return DFS(s, 0, rand.New(rand.NewSource(13)))
	}},
}

func TestSolversWinInOneMove(t *testing.T) {
	for _, solver := range deterministicSolvers {
		initial := mustRead(t, oneMoveWinGame)
		ok, path := solver.solve(initial)
		if !ok {
			t.Errorf("%s failed on a one-move game", solver.name)
			continue
		}
		if len(path) != 1 {
			t.Errorf("%s found a %d-move path on a one-move game: %+v",
				solver.name, len(path), path)
			continue
		}
		terminal, clean := Replay(initial, path)
		if !clean {
			t.Errorf("%s returned a path that didn't replay", solver.name)
			continue
		}
		if !terminal.Win || terminal.GameOver {
			t.Errorf("%s's path ended with win %t over %t, expected a win",
				solver.name, terminal.Win, terminal.GameOver)
		}
	}
}

func TestSolversReturnEmptyPathWhenAlreadyWon(t *testing.T) {
	for _, solver := range deterministicSolvers {
		ok, path := solver.solve(mustRead(t, wonGame))
		if !ok || len(path) != 0 {
			t.Errorf("%s got (%t, %+v) on a won game, expected (true, empty)",
				solver.name, ok, path)
		}
	}
}

func TestSolversReportStuckGames(t *testing.T) {
	for _, solver := range deterministicSolvers {
		ok, path := solver.solve(mustRead(t, stuckGame))
		if ok || path != nil {
			t.Errorf("%s got (%t, %+v) on a stuck game, expected (false, nil)",
				solver.name, ok, path)
		}
	}
}

func TestDeterministicSolversRepeatTheirPaths(t *testing.T) {
	for _, solver := range deterministicSolvers {
		if solver.name == "dfs" {
			continue
		}
		initial := puzzle.NewState(puzzle.Config{
			Level: 1, Rows: 1, Cols: 2, PlateLimit: 3, Seed: 42,
		})
		firstOK, firstPath := solver.solve(initial.Clone())
		secondOK, secondPath := solver.solve(initial.Clone())
		if firstOK != secondOK || !reflect.DeepEqual(firstPath, secondPath) {
			t.Errorf("%s isn't reproducible: got (%t, %+v) then (%t, %+v)",
				solver.name, firstOK, firstPath, secondOK, secondPath)
		}
	}
}

func TestDFSReproducibleWithFixedSource(t *testing.T) {
	initial := puzzle.NewState(puzzle.Config{
		Level: 1, Rows: 1, Cols: 2, PlateLimit: 3, Seed: 42,
	})
	firstOK, firstPath := DFS(initial.Clone(), 0, rand.New(rand.NewSource(7)))
	secondOK, secondPath := DFS(initial.Clone(), 0, rand.New(rand.NewSource(7)))
	if firstOK != secondOK || !reflect.DeepEqual(firstPath, secondPath) {
		t.Errorf("Identically seeded runs diverged: (%t, %+v) vs (%t, %+v)",
			firstOK, firstPath, secondOK, secondPath)
	}
	if firstOK {
		if _, clean := Replay(initial, firstPath); !clean {
			t.Errorf("The found path didn't replay: %+v", firstPath)
		}
	}
}

func TestDFSHonorsDepthBound(t *testing.T) {
	// the goal sits at depth 1; a bound of 1 prunes it, a bound
	// of 2 admits it
	rng := rand.New(rand.NewSource(7))
	if ok, _ := DFS(mustRead(t, oneMoveWinGame), 1, rng); ok {
		t.Errorf("A depth bound of 1 still reached the depth-1 goal")
	}
	if ok, _ := DFS(mustRead(t, oneMoveWinGame), 2, rng); !ok {
		t.Errorf("A depth bound of 2 missed the depth-1 goal")
	}
}

func TestIDSSettlesForPartialPath(t *testing.T) {
	// placing the one incomplete plate drains the supply but
	// fills the board, so there's no winning terminal anywhere
	if ok, _ := BFS(mustRead(t, oneMoveLossGame)); ok {
		t.Fatalf("Breadth-first won a game with no winning terminal")
	}
	ok, path := IDS(mustRead(t, oneMoveLossGame), 2, 0)
	if !ok || len(path) != 1 {
		t.Fatalf("Got (%t, %+v), expected the one-move exhausted-supply path",
			ok, path)
	}
	terminal, clean := Replay(mustRead(t, oneMoveLossGame), path)
	if !clean {
		t.Fatalf("The partial path didn't replay: %+v", path)
	}
	if terminal.Win || !terminal.GameOver {
		t.Errorf("The partial path ended with win %t over %t, expected a loss",
			terminal.Win, terminal.GameOver)
	}
}

func TestIDSBudgetExpiry(t *testing.T) {
	// with no exhausted-supply path banked yet, an expired
	// budget reports failure even on a solvable game
	ok, path := IDS(mustRead(t, oneMoveWinGame), 0, time.Nanosecond)
	if ok || path != nil {
		t.Errorf("Got (%t, %+v) under an expired budget, expected (false, nil)",
			ok, path)
	}
}
