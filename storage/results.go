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

package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/search"
)

/*

solver run records

*/

// SaveResult: append one solver run record to the database.
// Meant to be used inside a handler, because database errors
// panic back to the caller.
func SaveResult(result search.Result) {
	body := func(ctx context.Context, tx pgx.Tx) (err error) {
		_, err = tx.Exec(ctx,
			"INSERT INTO solverRuns "+
				"(algorithm, heuristic, weight, boardSize, success, pathLength, executionTime, recorded) "+
				"VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
			result.Algorithm, result.Heuristic, result.Weight, result.BoardSize,
			result.Success, result.PathLength, result.ExecutionTime, result.Timestamp)
		if err != nil {
			err = fmt.Errorf("Database error saving %q run: %v", result.Algorithm, err)
		}
		return
	}
	pgExecute(body)
}

// SaveResults: append a batch of run records in one transaction.
func SaveResults(results []search.Result) {
	body := func(ctx context.Context, tx pgx.Tx) error {
		for _, result := range results {
			_, err := tx.Exec(ctx,
				"INSERT INTO solverRuns "+
					"(algorithm, heuristic, weight, boardSize, success, pathLength, executionTime, recorded) "+
					"VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
				result.Algorithm, result.Heuristic, result.Weight, result.BoardSize,
				result.Success, result.PathLength, result.ExecutionTime, result.Timestamp)
			if err != nil {
				return fmt.Errorf("Database error saving %q run: %v", result.Algorithm, err)
			}
		}
		return nil
	}
	pgExecute(body)
}

// RecentResults: load the most recent run records, newest first.
// A non-positive count loads everything.
func RecentResults(count int) []search.Result {
	query := "SELECT algorithm, heuristic, weight, boardSize, success, " +
		"pathLength, executionTime, recorded FROM solverRuns ORDER BY recorded DESC"
	args := []interface{}{}
	if count > 0 {
		query += " LIMIT $1"
		args = append(args, count)
	}
	return queryResults(query, args...)
}

// AlgorithmResults: load all the run records for one algorithm,
// newest first.
func AlgorithmResults(algorithm string) []search.Result {
	return queryResults(
		"SELECT algorithm, heuristic, weight, boardSize, success, "+
			"pathLength, executionTime, recorded FROM solverRuns "+
			"WHERE algorithm = $1 ORDER BY recorded DESC",
		algorithm)
}

// queryResults: run a query whose columns match the run record
// layout and collect the rows.
func queryResults(query string, args ...interface{}) []search.Result {
	var results []search.Result
	body := func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("Database error loading solver runs: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			var result search.Result
			err := rows.Scan(&result.Algorithm, &result.Heuristic, &result.Weight,
				&result.BoardSize, &result.Success, &result.PathLength,
				&result.ExecutionTime, &result.Timestamp)
			if err != nil {
				return fmt.Errorf("Database error reading solver run: %v", err)
			}
			results = append(results, result)
		}
		return rows.Err()
	}
	pgExecute(body)
	return results
}
