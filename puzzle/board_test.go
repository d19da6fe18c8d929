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

package puzzle

import (
	"reflect"
	"testing"
)

/*

Test Values

*/

var (
	threeOnesPlate = Plate{1, 1, 1, 0, 0, 0, 0, 0}
	oneOnePlate    = Plate{1, 0, 0, 0, 0, 0, 0, 0}
	completePlate  = Plate{4, 4, 4, 4, 4, 4, 4, 4}
	mixedPlate     = Plate{1, 1, 2, 0, 0, 0, 0, 0}
	mixedPlate2    = Plate{1, 2, 2, 0, 0, 0, 0, 0}
	fullTarget     = Plate{1, 1, 1, 1, 1, 1, 2, 2}
)

/*

Plates

*/

func TestPlateCounts(t *testing.T) {
	p := mixedPlate
	if c := p.Count(1); c != 2 {
		t.Errorf("Count(1) of %v: got %d, expected 2", p, c)
	}
	if c := p.Count(2); c != 1 {
		t.Errorf("Count(2) of %v: got %d, expected 1", p, c)
	}
	if c := p.EmptySlots(); c != 5 {
		t.Errorf("EmptySlots of %v: got %d, expected 5", p, c)
	}
	if p.IsEmpty() {
		t.Errorf("%v reported empty", p)
	}
	empty := Plate{}
	if !empty.IsEmpty() {
		t.Errorf("zero plate not reported empty")
	}
}

func TestPlateIsComplete(t *testing.T) {
	if !completePlate.IsComplete() {
		t.Errorf("%v not reported complete", completePlate)
	}
	if threeOnesPlate.IsComplete() {
		t.Errorf("%v reported complete", threeOnesPlate)
	}
	empty := Plate{}
	if empty.IsComplete() {
		t.Errorf("empty plate reported complete")
	}
	mixed := Plate{4, 4, 4, 4, 4, 4, 4, 3}
	if mixed.IsComplete() {
		t.Errorf("%v reported complete", mixed)
	}
}

/*

Board basics

*/

func TestBoardPlacement(t *testing.T) {
	b := NewBoard(4, 4)
	if b.Rows() != 4 || b.Cols() != 4 {
		t.Fatalf("NewBoard(4, 4) dimensions: got %dx%d", b.Rows(), b.Cols())
	}
	if !b.Place(1, 2, threeOnesPlate) {
		t.Fatalf("Placement on empty cell failed")
	}
	if b.Place(1, 2, oneOnePlate) {
		t.Errorf("Placement on occupied cell succeeded")
	}
	if b.Place(4, 0, oneOnePlate) || b.Place(-1, 0, oneOnePlate) {
		t.Errorf("Placement off the board succeeded")
	}
	got, ok := b.PlateAt(1, 2)
	if !ok || got != threeOnesPlate {
		t.Errorf("PlateAt(1, 2): got %v, %t; expected %v, true", got, ok, threeOnesPlate)
	}
	if _, ok := b.PlateAt(0, 0); ok {
		t.Errorf("PlateAt of empty cell reported a plate")
	}
	if b.CountOccupied() != 1 {
		t.Errorf("CountOccupied: got %d, expected 1", b.CountOccupied())
	}
	if b.IsEmpty(1, 2) {
		t.Errorf("Occupied cell reported empty")
	}
	if b.IsEmpty(4, 4) {
		t.Errorf("Invalid cell reported empty")
	}
}

func TestBoardIsFull(t *testing.T) {
	b := NewBoard(2, 2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if b.IsFull() {
				t.Fatalf("Board full with %d plates", b.CountOccupied())
			}
			b.Place(r, c, oneOnePlate)
		}
	}
	if !b.IsFull() {
		t.Errorf("Board with every cell occupied not reported full")
	}
}

/*

Adjacency optimization

*/

func TestOptimizeConsolidatesOntoLarger(t *testing.T) {
	b := NewBoard(4, 4)
	b.Place(0, 0, threeOnesPlate)
	b.Place(0, 1, oneOnePlate)

	optimized, movements := b.OptimizeAdjacent(0, 0, 0, 1)
	if !optimized {
		t.Fatalf("No optimization of %v and %v", threeOnesPlate, oneOnePlate)
	}
	expected := []Movement{{FromRow: 0, FromCol: 1, ToRow: 0, ToCol: 0, Slice: 1, Count: 1}}
	if !reflect.DeepEqual(movements, expected) {
		t.Errorf("Movements: got %+v, expected %+v", movements, expected)
	}
	got, _ := b.PlateAt(0, 0)
	if got.Count(1) != 4 {
		t.Errorf("Receiving plate has %d ones, expected 4", got.Count(1))
	}
	donor, ok := b.PlateAt(0, 1)
	if ok && !donor.IsEmpty() {
		t.Errorf("Donor plate not drained: %v", donor)
	}
}

func TestOptimizeTieFirstOperandReceives(t *testing.T) {
	b := NewBoard(4, 4)
	p := Plate{2, 0, 0, 0, 0, 0, 0, 0}
	b.Place(2, 2, p)
	b.Place(2, 3, p)

	optimized, _ := b.OptimizeAdjacent(2, 2, 2, 3)
	if !optimized {
		t.Fatalf("No optimization of tied plates")
	}
	first, _ := b.PlateAt(2, 2)
	if first.Count(2) != 2 {
		t.Errorf("First operand has %d twos, expected 2", first.Count(2))
	}
}

func TestOptimizeMultipleSharedTypes(t *testing.T) {
	b := NewBoard(4, 4)
	b.Place(0, 0, mixedPlate)  // 1,1,2
	b.Place(0, 1, mixedPlate2) // 1,2,2

	optimized, movements := b.OptimizeAdjacent(0, 0, 0, 1)
	if !optimized {
		t.Fatalf("No optimization of %v and %v", mixedPlate, mixedPlate2)
	}
	if len(movements) != 2 {
		t.Fatalf("Movements: got %d, expected 2 (%+v)", len(movements), movements)
	}
	first, _ := b.PlateAt(0, 0)
	second, _ := b.PlateAt(0, 1)
	if first.Count(1) != 3 || first.Count(2) != 0 {
		t.Errorf("First plate after optimize: %v, expected three 1s and no 2s", first)
	}
	if second.Count(2) != 3 || second.Count(1) != 0 {
		t.Errorf("Second plate after optimize: %v, expected three 2s and no 1s", second)
	}
}

func TestOptimizeFullTargetSwapsLeastCommon(t *testing.T) {
	b := NewBoard(4, 4)
	b.Place(0, 0, fullTarget)  // six 1s, two 2s, no free slot
	b.Place(1, 0, oneOnePlate) // one 1, seven free slots

	optimized, movements := b.OptimizeAdjacent(0, 0, 1, 0)
	if !optimized {
		t.Fatalf("No optimization of full target %v and %v", fullTarget, oneOnePlate)
	}
	target, _ := b.PlateAt(0, 0)
	source, _ := b.PlateAt(1, 0)
	if target.Count(1) != 7 {
		t.Errorf("Target has %d ones after swap, expected 7 (%v)", target.Count(1), target)
	}
	if target.Count(2) != 0 {
		t.Errorf("Target still has twos after swap: %v", target)
	}
	if source.Count(2) != 2 || source.Count(1) != 0 {
		t.Errorf("Source after swap: %v, expected two 2s and no 1s", source)
	}
	// the movement record covers the consolidated type only
	expected := []Movement{{FromRow: 1, FromCol: 0, ToRow: 0, ToCol: 0, Slice: 1, Count: 1}}
	if !reflect.DeepEqual(movements, expected) {
		t.Errorf("Movements: got %+v, expected %+v", movements, expected)
	}
}

func TestOptimizeNoSharedTypes(t *testing.T) {
	b := NewBoard(4, 4)
	b.Place(0, 0, Plate{1, 1, 0, 0, 0, 0, 0, 0})
	b.Place(0, 1, Plate{2, 2, 0, 0, 0, 0, 0, 0})

	optimized, movements := b.OptimizeAdjacent(0, 0, 0, 1)
	if optimized || movements != nil {
		t.Errorf("Optimization of disjoint plates: %t, %+v", optimized, movements)
	}
}

func TestOptimizeNeedsTwoPlates(t *testing.T) {
	b := NewBoard(4, 4)
	b.Place(0, 0, threeOnesPlate)
	if optimized, _ := b.OptimizeAdjacent(0, 0, 0, 1); optimized {
		t.Errorf("Optimization against an empty cell succeeded")
	}
	if optimized, _ := b.OptimizeAdjacent(0, 0, 0, -1); optimized {
		t.Errorf("Optimization against an invalid cell succeeded")
	}
}

/*

Cake completion

*/

func TestCheckCompletedCakes(t *testing.T) {
	b := NewBoard(4, 4)
	b.Place(0, 0, completePlate)
	b.Place(0, 1, threeOnesPlate)
	b.Place(0, 2, Plate{}) // drained plate, swept with the cakes

	if n := b.CheckCompletedCakes(); n != 1 {
		t.Errorf("Completed cakes: got %d, expected 1", n)
	}
	if !b.IsEmpty(0, 0) {
		t.Errorf("Completed cake not cleared")
	}
	if !b.IsEmpty(0, 2) {
		t.Errorf("Drained plate not swept")
	}
	if b.IsEmpty(0, 1) {
		t.Errorf("Incomplete plate cleared")
	}
	// a second sweep finds nothing
	if n := b.CheckCompletedCakes(); n != 0 {
		t.Errorf("Second sweep found %d cakes, expected 0", n)
	}
}

func TestRemoveEmptyPlates(t *testing.T) {
	b := NewBoard(2, 2)
	b.Place(0, 0, Plate{})
	b.Place(0, 1, oneOnePlate)
	if n := b.RemoveEmptyPlates(); n != 1 {
		t.Errorf("Removed plates: got %d, expected 1", n)
	}
	if b.CountOccupied() != 1 {
		t.Errorf("Occupied cells after removal: got %d, expected 1", b.CountOccupied())
	}
}

/*

Cloning

*/

func TestBoardCloneIndependence(t *testing.T) {
	b := NewBoard(3, 3)
	b.Place(1, 1, threeOnesPlate)
	clone := b.Clone()

	b.Place(0, 0, oneOnePlate)
	b.OptimizeAdjacent(1, 1, 0, 0)

	if clone.CountOccupied() != 1 {
		t.Errorf("Clone occupied count changed: got %d, expected 1", clone.CountOccupied())
	}
	got, _ := clone.PlateAt(1, 1)
	if got != threeOnesPlate {
		t.Errorf("Clone plate changed: got %v, expected %v", got, threeOnesPlate)
	}
}
