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

// Command-line client for playing and solving cake-sorting
// games.  Games are local to the process; save and load move
// them to disk in the text encoding.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/bench"
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/search"
)

var log = logrus.New()

func main() {
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.Out = os.Stderr

	game = puzzle.NewState(puzzle.Config{Level: 1})
	err := listener(os.Stdout, os.Stdin)
	if err != nil {
		log.Fatalf("CLI failure: %v", err)
	}
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// listener reads lines and dispatches them to handlers
func listener(out *os.File, in *os.File) error {
	// if we are on a terminal, we do prompting
	// (see http://stackoverflow.com/questions/22744443/ for source)
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "cakesort> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			r := &request{inline: strings.Trim(string(input[:n]), " \t\r\n")}
			args := strings.Split(r.inline, " ")
			r.command = strings.ToLower(args[0])
			switch r.command {
			case "":
				continue
			case "quit":
				fallthrough
			case "exit":
				return nil
			}
			for _, arg := range args[1:] {
				if len(arg) > 0 {
					r.args = append(r.args, arg)
				}
			}
			dispatchCommand(out, r)
		case io.EOF:
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			return err
		}
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*os.File, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"bench", "algo[,algo...] [runs]", "time algorithms against this game", benchHandler},
		{"load", "file", "load a saved game", loadHandler},
		{"new", "[level]", "start a new game", newHandler},
		{"place", "row col plate", "place a visible plate on a cell", placeHandler},
		{"plates", "", "show the visible and queued plates", platesHandler},
		{"save", "file", "save the game to a file", saveHandler},
		{"solve", "[algorithm]", "find a winning move sequence", solveHandler},
		{"state", "", "show the current game", stateHandler},
		{"step", "", "play the next solver move", stepHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(w *os.File, r *request) {
	defer func() {
		if err := recover(); err != nil {
			errorHandler(err, w, r)
		}
	}()

	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w, r)
	} else {
		ci.handler(w, r)
	}
}

/*

request handlers

*/

// client state
var (
	game     *puzzle.State   // the game being played
	solution []puzzle.Action // remaining solver moves, if any
)

func newHandler(w *os.File, r *request) {
	level := 1
	if len(r.args) > 0 {
		l, err := strconv.Atoi(r.args[0])
		if err != nil || l < 1 {
			usageHandler(fmt.Sprintf("level (%s) must be a positive number", r.args[0]), w, r)
			return
		}
		level = l
	}
	game = puzzle.NewState(puzzle.Config{Level: level})
	solution = nil
	fmt.Fprintf(w, "Started a level %d game on a %dx%d board (%d plates).\n",
		level, game.Board.Rows(), game.Board.Cols(), game.Supply.Limit())
	stateHandler(w, r)
}

func stateHandler(w *os.File, r *request) {
	fmt.Fprintf(w, "%s", game)
	if game.Win {
		fmt.Fprintf(w, "You won with %d points in %d moves!\n", game.Score, game.Moves)
	} else if game.GameOver {
		fmt.Fprintf(w, "Game over at %d points after %d moves.\n", game.Score, game.Moves)
	}
}

func platesHandler(w *os.File, r *request) {
	for i, p := range game.Supply.Visible() {
		fmt.Fprintf(w, "  %d: %s\n", i, encodePlateLine(p))
	}
	fmt.Fprintf(w, "%d queued, %d of %d used.\n",
		game.Supply.QueueCount(), game.Supply.Used(), game.Supply.Limit())
}

func placeHandler(w *os.File, r *request) {
	if len(r.args) != 3 {
		usageHandler(fmt.Sprintf("%s requires three arguments", r.command), w, r)
		return
	}
	var vals [3]int
	for i, arg := range r.args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			usageHandler(fmt.Sprintf("%s argument (%s) must be a number", r.command, arg), w, r)
			return
		}
		vals[i] = v
	}
	ok, effects := game.Place(vals[0], vals[1], vals[2])
	if !ok {
		fmt.Fprintf(w, "Place failed: cell occupied, out of range, or no such plate.\n")
		return
	}
	solution = nil
	if n := len(effects.Movements); n > 0 {
		fmt.Fprintf(w, "Moved slices %d times.\n", n)
	}
	if effects.CompletedCakes > 0 {
		fmt.Fprintf(w, "Completed %d cake(s)!\n", effects.CompletedCakes)
	}
	stateHandler(w, r)
}

func solveHandler(w *os.File, r *request) {
	name := "astar"
	if len(r.args) > 0 {
		name = r.args[0]
	}
	ad, ok := search.LookupAlgorithmByName(name)
	if !ok {
		usageHandler(fmt.Sprintf("%q is not a known algorithm (have: %s)",
			name, strings.Join(search.AlgorithmNames(), ", ")), w, r)
		return
	}
	start := time.Now()
	success, path := ad.Solve(game.Clone())
	elapsed := time.Since(start)
	if !success {
		fmt.Fprintf(w, "%s found no solution in %v.\n", ad.Names[0], elapsed)
		return
	}
	solution = path
	fmt.Fprintf(w, "%s found a %d-move solution in %v.  Use 'step' to play it.\n",
		ad.Names[0], len(path), elapsed)
}

func stepHandler(w *os.File, r *request) {
	if len(solution) == 0 {
		fmt.Fprintf(w, "No solver moves pending; use 'solve' first.\n")
		return
	}
	// solver paths are computed against this game, so replaying
	// them in order keeps the supply in step
	action := solution[0]
	ok, _ := game.Place(action.Row, action.Col, action.Plate)
	if !ok {
		fmt.Fprintf(w, "Solver move no longer applies; use 'solve' again.\n")
		solution = nil
		return
	}
	solution = solution[1:]
	fmt.Fprintf(w, "Placed plate at (%d, %d); %d solver move(s) left.\n",
		action.Row, action.Col, len(solution))
	stateHandler(w, r)
}

func benchHandler(w *os.File, r *request) {
	if len(r.args) < 1 {
		usageHandler(fmt.Sprintf("%s requires an algorithm list", r.command), w, r)
		return
	}
	algorithms := strings.Split(r.args[0], ",")
	runs := 1
	if len(r.args) > 1 {
		n, err := strconv.Atoi(r.args[1])
		if err != nil || n < 1 {
			usageHandler(fmt.Sprintf("run count (%s) must be a positive number", r.args[1]), w, r)
			return
		}
		runs = n
	}
	results, err := bench.Run(game, algorithms, runs)
	if err != nil {
		fmt.Fprintf(w, "Benchmark failed: %v\n", err)
		return
	}
	for _, agg := range bench.ByAlgorithm(results) {
		fmt.Fprintf(w, "%-18s %3d runs, %5.1f%% solved, avg %.3fs, avg %.1f moves\n",
			agg.Key, agg.Runs, agg.SuccessRate()*100, agg.AvgTime, agg.AvgPathLength)
	}
}

func saveHandler(w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires a file name", r.command), w, r)
		return
	}
	f, err := os.Create(r.args[0])
	if err != nil {
		fmt.Fprintf(w, "Can't create %q: %v\n", r.args[0], err)
		return
	}
	defer f.Close()
	if err := game.Write(f); err != nil {
		fmt.Fprintf(w, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Saved game to %q.\n", r.args[0])
}

func loadHandler(w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires a file name", r.command), w, r)
		return
	}
	f, err := os.Open(r.args[0])
	if err != nil {
		fmt.Fprintf(w, "Can't open %q: %v\n", r.args[0], err)
		return
	}
	defer f.Close()
	loaded, err := puzzle.Read(f)
	if err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	game = loaded
	solution = nil
	fmt.Fprintf(w, "Loaded game from %q.\n", r.args[0])
	stateHandler(w, r)
}

func usageHandler(msg string, w *os.File, r *request) {
	fmt.Fprintf(w, "Error: %s\nUsage:\n", msg)
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %8s %-22s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func errorHandler(err interface{}, w *os.File, r *request) {
	fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
	log.Errorf("Error executing %q: %v", r.inline, err)
}

// encodePlateLine renders a plate for the plates listing.
func encodePlateLine(p puzzle.Plate) string {
	parts := make([]string, 0, len(p))
	for _, s := range p {
		if s == 0 {
			parts = append(parts, ".")
		} else {
			parts = append(parts, strconv.Itoa(int(s)))
		}
	}
	return strings.Join(parts, " ")
}
