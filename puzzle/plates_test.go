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
	"math/rand"
	"reflect"
	"testing"
)

/*

Test Values

*/

var (
	level1Types = []SliceType{1, 2, 3, 4, 5}
	level3Types = []SliceType{1, 2, 3, 4, 5, 6, 7}
	level5Types = []SliceType{1, 2, 3, 4, 5, 6, 7, 8, 9}
)

// checkSupplyInvariant - the plate accounting must balance at
// every step of a game.
func checkSupplyInvariant(t *testing.T, s *Supply) {
	t.Helper()
	total := s.VisibleCount() + s.QueueCount() + s.Used()
	if total != s.Limit() {
		t.Errorf("Supply accounting broken: %d visible + %d queued + %d used != %d limit",
			s.VisibleCount(), s.QueueCount(), s.Used(), s.Limit())
	}
}

func TestSliceTypesForLevel(t *testing.T) {
	for level, expected := range map[int][]SliceType{
		1: level1Types, 2: level1Types,
		3: level3Types, 4: level3Types,
		5: level5Types, 7: level5Types,
	} {
		if got := SliceTypesForLevel(level); !reflect.DeepEqual(got, expected) {
			t.Errorf("Types for level %d: got %v, expected %v", level, got, expected)
		}
	}
}

func TestNewSupplyDefaults(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewSupply(1, 0, rng)
	if s.Limit() != DefaultPlateLimit {
		t.Errorf("Default limit: got %d, expected %d", s.Limit(), DefaultPlateLimit)
	}
	if s.VisibleCount() != VisiblePlates {
		t.Errorf("Fresh window size: got %d, expected %d", s.VisibleCount(), VisiblePlates)
	}
	if s.QueueCount() != DefaultPlateLimit-VisiblePlates {
		t.Errorf("Fresh queue size: got %d, expected %d",
			s.QueueCount(), DefaultPlateLimit-VisiblePlates)
	}
	checkSupplyInvariant(t, s)
}

func TestGeneratedPlateBounds(t *testing.T) {
	for _, level := range []int{1, 2, 3, 5} {
		rng := rand.New(rand.NewSource(42))
		s := NewSupply(level, 50, rng)
		maxSlices := level + 2
		if maxSlices > 5 {
			maxSlices = 5
		}
		types := SliceTypesForLevel(level)
		allowed := make(map[SliceType]bool)
		for _, st := range types {
			allowed[st] = true
		}
		plates := append(s.Visible(), s.Queued()...)
		for i, p := range plates {
			slices := PlateSlots - p.EmptySlots()
			if slices < 1 || slices > maxSlices {
				t.Errorf("Level %d plate %d has %d slices, expected 1..%d (%v)",
					level, i, slices, maxSlices, p)
			}
			for _, slice := range p {
				if slice != 0 && !allowed[slice] {
					t.Errorf("Level %d plate %d holds type %d outside %v",
						level, i, slice, types)
				}
			}
		}
	}
}

func TestSupplyRemoveAndRefill(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSupply(1, 6, rng)

	first, ok := s.Get(0)
	if !ok {
		t.Fatalf("Get(0) failed on a fresh supply")
	}
	second, _ := s.Get(1)
	if !s.Remove(0) {
		t.Fatalf("Remove(0) failed on a fresh supply")
	}
	checkSupplyInvariant(t, s)
	if s.Used() != 1 {
		t.Errorf("Used after one removal: got %d, expected 1", s.Used())
	}
	// the window shifts down and refills from the queue
	shifted, _ := s.Get(0)
	if shifted != second {
		t.Errorf("Window didn't shift: got %v, expected %v", shifted, second)
	}
	if s.VisibleCount() != VisiblePlates {
		t.Errorf("Window not refilled: %d plates", s.VisibleCount())
	}
	_ = first

	// drain the whole supply
	for s.HasPlates() {
		if !s.Remove(0) {
			t.Fatalf("Remove(0) failed with %d plates left", s.Remaining())
		}
		checkSupplyInvariant(t, s)
	}
	if !s.IsExhausted() {
		t.Errorf("Drained supply not exhausted: used %d of %d", s.Used(), s.Limit())
	}
	if s.Remaining() != 0 {
		t.Errorf("Drained supply has %d remaining", s.Remaining())
	}
}

func TestSupplyRemoveOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSupply(1, 6, rng)
	if s.Remove(-1) || s.Remove(VisiblePlates) {
		t.Errorf("Out-of-range removal succeeded")
	}
	if _, ok := s.Get(99); ok {
		t.Errorf("Out-of-range Get succeeded")
	}
	if s.Used() != 0 {
		t.Errorf("Failed removals counted as used: %d", s.Used())
	}
}

func TestSupplyWindowShrinksAtEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewSupply(1, 4, rng)
	// 3 visible, 1 queued to start
	s.Remove(0) // queue drains into the window
	if s.VisibleCount() != 3 || s.QueueCount() != 0 {
		t.Fatalf("After first removal: %d visible, %d queued", s.VisibleCount(), s.QueueCount())
	}
	s.Remove(0)
	if s.VisibleCount() != 2 {
		t.Errorf("Window didn't shrink: %d visible", s.VisibleCount())
	}
	checkSupplyInvariant(t, s)
}

func TestSupplyReproducible(t *testing.T) {
	s1 := NewSupply(2, 10, rand.New(rand.NewSource(99)))
	s2 := NewSupply(2, 10, rand.New(rand.NewSource(99)))
	if !reflect.DeepEqual(s1.Visible(), s2.Visible()) ||
		!reflect.DeepEqual(s1.Queued(), s2.Queued()) {
		t.Errorf("Same seed gave different supplies")
	}
	s3 := NewSupply(2, 10, rand.New(rand.NewSource(100)))
	if reflect.DeepEqual(s1.Queued(), s3.Queued()) {
		t.Errorf("Different seeds gave identical queues")
	}
}

func TestSupplyCloneIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewSupply(1, 8, rng)
	clone := s.Clone()
	s.Remove(0)
	if clone.Used() != 0 {
		t.Errorf("Clone used count changed: %d", clone.Used())
	}
	if clone.VisibleCount() != VisiblePlates {
		t.Errorf("Clone window changed: %d plates", clone.VisibleCount())
	}
	checkSupplyInvariant(t, clone)
}
