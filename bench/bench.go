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

// Package bench runs solver batches and aggregates their run
// records.  It sits outside the engine: it clones states, works
// the wall clock, and reads and writes the JSON record files the
// analysis tooling consumes.
package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/search"
)

// Run invokes each named algorithm runs times against fresh
// clones of the initial state and returns one record per
// invocation.  Unknown algorithm names fail the whole batch
// before anything runs.
func Run(initial *puzzle.State, algorithms []string, runs int) ([]search.Result, error) {
	if runs < 1 {
		runs = 1
	}
	descriptors := make([]*search.AlgorithmDescriptor, len(algorithms))
	for i, name := range algorithms {
		ad, ok := search.LookupAlgorithmByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q", name)
		}
		descriptors[i] = ad
	}
	var results []search.Result
	for _, ad := range descriptors {
		for i := 0; i < runs; i++ {
			state := initial.Clone()
			start := time.Now()
			success, path := ad.Solve(state)
			elapsed := time.Since(start)
			results = append(results, search.NewResult(ad, initial, success, path, elapsed))
		}
	}
	return results, nil
}

// ReadFile loads the JSON array of records at path.  A missing
// file reads as an empty batch.
func ReadFile(path string) ([]search.Result, error) {
	bytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var results []search.Result
	if err := json.Unmarshal(bytes, &results); err != nil {
		return nil, fmt.Errorf("can't parse record file %q: %v", path, err)
	}
	return results, nil
}

// WriteFile stores records as a JSON array at path, replacing
// whatever was there.
func WriteFile(path string, results []search.Result) error {
	bytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0644)
}

// AppendFile adds records to the JSON array at path, creating
// the file if needed.
func AppendFile(path string, results []search.Result) error {
	existing, err := ReadFile(path)
	if err != nil {
		return err
	}
	return WriteFile(path, append(existing, results...))
}
