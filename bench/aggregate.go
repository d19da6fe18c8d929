package bench

import (
	"fmt"
	"sort"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/search"
)

/*

Record aggregation

*/

// An Aggregate summarizes the records sharing one key: how many
// ran, how many succeeded, and the average wall-clock time and
// path length.
type Aggregate struct {
	Key           string  `json:"key"`
	Runs          int     `json:"runs"`
	Successes     int     `json:"successes"`
	AvgTime       float64 `json:"avg_time"`
	AvgPathLength float64 `json:"avg_path_length"`
}

// SuccessRate returns the fraction of runs that succeeded.
func (a Aggregate) SuccessRate() float64 {
	if a.Runs == 0 {
		return 0
	}
	return float64(a.Successes) / float64(a.Runs)
}

// recordKey names the bucket a record aggregates into.  Weighted
// A* buckets split by weight, since the weight changes the
// strategy being measured.
func recordKey(r search.Result) string {
	if r.Weight != 0 {
		return fmt.Sprintf("%s (w=%g)", r.Algorithm, r.Weight)
	}
	return r.Algorithm
}

// ByAlgorithm buckets records per algorithm (weighted A* split
// by weight) and summarizes each bucket.  Buckets come back
// sorted by key.
func ByAlgorithm(results []search.Result) []Aggregate {
	return aggregate(results, recordKey)
}

// ByHeuristic keeps only the records produced under the named
// heuristic, then buckets them per algorithm.  Useful for
// comparing the informed strategies under one scoring.
func ByHeuristic(results []search.Result, heuristic string) []Aggregate {
	var filtered []search.Result
	for _, r := range results {
		if r.Heuristic == heuristic {
			filtered = append(filtered, r)
		}
	}
	return aggregate(filtered, recordKey)
}

// aggregate buckets records by key and averages each bucket.
func aggregate(results []search.Result, key func(search.Result) string) []Aggregate {
	buckets := make(map[string]*Aggregate)
	for _, r := range results {
		k := key(r)
		a, ok := buckets[k]
		if !ok {
			a = &Aggregate{Key: k}
			buckets[k] = a
		}
		a.Runs++
		if r.Success {
			a.Successes++
		}
		a.AvgTime += r.ExecutionTime
		a.AvgPathLength += float64(r.PathLength)
	}
	out := make([]Aggregate, 0, len(buckets))
	for _, a := range buckets {
		a.AvgTime /= float64(a.Runs)
		a.AvgPathLength /= float64(a.Runs)
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
