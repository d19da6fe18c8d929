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
)

/*

Plate supply

*/

// VisiblePlates is the size of the supply window the player (or
// solver) can pick from.
const VisiblePlates = 3

// DefaultPlateLimit is the total number of plates a standard
// game hands out.
const DefaultPlateLimit = 18

// A Supply is the bounded pool of plates for one game: a window
// of at most VisiblePlates selectable plates backed by a FIFO
// queue, plus a count of plates already used.  At all times
// len(visible) + len(queue) + used == limit, and the window only
// shrinks below VisiblePlates once the queue is drained.
type Supply struct {
	visible []Plate
	queue   []Plate
	used    int
	limit   int
}

// SliceTypesForLevel returns the slice-type domain for a level:
// five base types, two more at level 3, and two more at level 5.
func SliceTypesForLevel(level int) []SliceType {
	types := []SliceType{1, 2, 3, 4, 5}
	if level >= 3 {
		types = append(types, 6, 7)
	}
	if level >= 5 {
		types = append(types, 8, 9)
	}
	return types
}

// NewSupply builds a supply of limit plates for the given level,
// drawing all randomness from rng so games are reproducible.
// Each plate gets between 1 and min(5, level+2) slices of random
// types in random slots.  The queue is generated up front and
// the window filled from it.
func NewSupply(level, limit int, rng *rand.Rand) *Supply {
	if limit < 1 {
		limit = DefaultPlateLimit
	}
	s := &Supply{limit: limit}
	types := SliceTypesForLevel(level)
	maxSlices := level + 2
	if maxSlices > 5 {
		maxSlices = 5
	}
	for i := 0; i < limit; i++ {
		s.queue = append(s.queue, generatePlate(types, maxSlices, rng))
	}
	s.RefillVisible()
	return s
}

// generatePlate makes one plate with 1..maxSlices random slices
// placed in random empty slots.
func generatePlate(types []SliceType, maxSlices int, rng *rand.Rand) Plate {
	var p Plate
	numSlices := 1 + rng.Intn(maxSlices)
	for i := 0; i < numSlices; i++ {
		t := types[rng.Intn(len(types))]
		var empty []int
		for j, s := range p {
			if s == 0 {
				empty = append(empty, j)
			}
		}
		if len(empty) == 0 {
			break
		}
		p[empty[rng.Intn(len(empty))]] = t
	}
	return p
}

// RefillVisible moves plates from the front of the queue into
// the window until the window is full or the queue is empty.
func (s *Supply) RefillVisible() {
	for len(s.visible) < VisiblePlates && len(s.queue) > 0 {
		s.visible = append(s.visible, s.queue[0])
		s.queue = s.queue[1:]
	}
}

// Get returns a copy of the visible plate at index, with a
// boolean telling whether the index was in range.
func (s *Supply) Get(index int) (Plate, bool) {
	if index < 0 || index >= len(s.visible) {
		return Plate{}, false
	}
	return s.visible[index], true
}

// Remove takes the visible plate at index out of the window,
// counts it as used, and refills the window from the queue.  It
// reports whether the index was in range.
func (s *Supply) Remove(index int) bool {
	if index < 0 || index >= len(s.visible) {
		return false
	}
	s.visible = append(s.visible[:index:index], s.visible[index+1:]...)
	s.used++
	s.RefillVisible()
	return true
}

// HasPlates reports whether any plates remain to be placed.
func (s *Supply) HasPlates() bool {
	return len(s.visible) > 0 || len(s.queue) > 0
}

// IsExhausted reports whether every plate in the supply has been
// used.
func (s *Supply) IsExhausted() bool {
	return s.used >= s.limit
}

// VisibleCount returns the number of plates in the window.
func (s *Supply) VisibleCount() int { return len(s.visible) }

// QueueCount returns the number of plates still queued.
func (s *Supply) QueueCount() int { return len(s.queue) }

// Remaining returns the number of plates not yet used.
func (s *Supply) Remaining() int { return s.limit - s.used }

// Used returns the number of plates already placed.
func (s *Supply) Used() int { return s.used }

// Limit returns the total number of plates in the game.
func (s *Supply) Limit() int { return s.limit }

// Visible returns a copy of the window.
func (s *Supply) Visible() []Plate {
	return append([]Plate(nil), s.visible...)
}

// Queued returns a copy of the queue.
func (s *Supply) Queued() []Plate {
	return append([]Plate(nil), s.queue...)
}

// Clone returns a deep copy of the supply.
func (s *Supply) Clone() *Supply {
	return &Supply{
		visible: append([]Plate(nil), s.visible...),
		queue:   append([]Plate(nil), s.queue...),
		used:    s.used,
		limit:   s.limit,
	}
}
