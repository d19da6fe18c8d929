// Copyright 2025 Maria João Vieira.  All rights reserved.

// Package puzzle provides a model for the cake-sorting puzzle
// game and operations on it.  It supports both a golang
// interface and a web interface to games.
//
// A game is played on a grid of cells.  The player places plates
// onto empty cells, one per move, drawn from a small visible
// window of a bounded supply.  A plate holds up to eight slices
// of typed cake.  When a newly placed plate touches occupied
// neighbors, slices of the types the plates share migrate onto
// whichever plate already holds more of that type.  A plate that
// accumulates eight slices of one type is a completed cake: it
// is cleared from the board and scored.  The game is won when
// the whole supply has been placed, and lost when the board
// fills up while plates remain.
package puzzle

/*

Cake-sort board representation

*/

// A SliceType identifies a flavor of cake slice.  Valid types are
// small positive integers; 0 marks an empty plate slot.
type SliceType int

const (
	// PlateSlots is the fixed capacity of every plate.  A plate
	// holding PlateSlots slices of a single type is a completed
	// cake.
	PlateSlots = 8

	// MaxSliceType is the largest slice type any level can
	// produce.
	MaxSliceType = 9
)

// A Plate is a fixed sequence of PlateSlots slots.  Plates are
// value types: assignment copies them, which is what makes deep
// cloning of boards and supplies cheap.
type Plate [PlateSlots]SliceType

// Count returns the number of slots holding the given type.
func (p *Plate) Count(t SliceType) int {
	n := 0
	for _, s := range p {
		if s == t {
			n++
		}
	}
	return n
}

// EmptySlots returns the number of unoccupied slots.
func (p *Plate) EmptySlots() int {
	return p.Count(0)
}

// IsEmpty reports whether every slot of the plate is unoccupied.
func (p *Plate) IsEmpty() bool {
	return p.EmptySlots() == PlateSlots
}

// IsComplete reports whether the plate is a completed cake, that
// is, all PlateSlots slots hold the same slice type.
func (p *Plate) IsComplete() bool {
	if p[0] == 0 {
		return false
	}
	return p.Count(p[0]) == PlateSlots
}

// typeCounts tallies the occupied slots by type.  Index 0 counts
// the empty slots.
func (p *Plate) typeCounts() (counts [MaxSliceType + 1]int) {
	for _, s := range p {
		counts[s]++
	}
	return
}

// addSlice puts a slice of the given type in the first empty
// slot, reporting whether there was one.
func (p *Plate) addSlice(t SliceType) bool {
	for i := range p {
		if p[i] == 0 {
			p[i] = t
			return true
		}
	}
	return false
}

// A Movement records a transfer of slices between two board
// positions during adjacency optimization.  Movements are
// produced for the benefit of rendering collaborators; the
// search engine ignores them.
type Movement struct {
	FromRow int       `json:"fromRow"`
	FromCol int       `json:"fromCol"`
	ToRow   int       `json:"toRow"`
	ToCol   int       `json:"toCol"`
	Slice   SliceType `json:"slice"`
	Count   int       `json:"count"`
}

/*

Boards

*/

// A Board is a rows x cols grid of cells, each either empty or
// holding one plate.  Cells go empty -> occupied via Place and
// occupied -> empty when a completed cake or a drained plate is
// removed; a placement never overwrites an occupied cell.
type Board struct {
	rows, cols int
	grid       [][]*Plate
}

// NewBoard creates an empty board.  Dimensions must be at least
// 1x1; smaller requests are clamped.
func NewBoard(rows, cols int) *Board {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	grid := make([][]*Plate, rows)
	for r := range grid {
		grid[r] = make([]*Plate, cols)
	}
	return &Board{rows: rows, cols: cols, grid: grid}
}

// Rows returns the number of board rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of board columns.
func (b *Board) Cols() int { return b.cols }

// IsValidPosition reports whether (r, c) is on the board.
func (b *Board) IsValidPosition(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// IsEmpty reports whether the cell at (r, c) is unoccupied.
// Invalid positions are never empty.
func (b *Board) IsEmpty(r, c int) bool {
	if !b.IsValidPosition(r, c) {
		return false
	}
	return b.grid[r][c] == nil
}

// PlateAt returns a copy of the plate at (r, c), with a boolean
// telling whether the cell was occupied.
func (b *Board) PlateAt(r, c int) (Plate, bool) {
	if b.IsEmpty(r, c) || !b.IsValidPosition(r, c) {
		return Plate{}, false
	}
	return *b.grid[r][c], true
}

// Place puts a plate on the cell at (r, c), reporting success.
// The placement fails if the position is invalid or the cell is
// occupied; the board is unchanged on failure.
func (b *Board) Place(r, c int, p Plate) bool {
	if !b.IsValidPosition(r, c) || !b.IsEmpty(r, c) {
		return false
	}
	stored := p
	b.grid[r][c] = &stored
	return true
}

// OptimizeAdjacent redistributes slices between the plates at
// (r1, c1) and (r2, c2) so that slices of each shared type
// consolidate onto the plate that already holds more of that
// type.  On an equal count the first plate receives.  It returns
// whether any slice moved, along with the movement records.
func (b *Board) OptimizeAdjacent(r1, c1, r2, c2 int) (bool, []Movement) {
	if !b.IsValidPosition(r1, c1) || !b.IsValidPosition(r2, c2) {
		return false, nil
	}
	if b.IsEmpty(r1, c1) || b.IsEmpty(r2, c2) {
		return false, nil
	}
	plate1, plate2 := b.grid[r1][c1], b.grid[r2][c2]
	counts1, counts2 := plate1.typeCounts(), plate2.typeCounts()

	optimized := false
	var movements []Movement
	// Shared types are visited in ascending order so that
	// repeated optimizations of the same pair are reproducible.
	for t := SliceType(1); t <= MaxSliceType; t++ {
		if counts1[t] == 0 || counts2[t] == 0 {
			continue
		}
		if counts1[t] >= counts2[t] {
			if moved, n := moveSlices(plate2, plate1, t); moved {
				optimized = true
				movements = append(movements, Movement{r2, c2, r1, c1, t, n})
			}
		} else {
			if moved, n := moveSlices(plate1, plate2, t); moved {
				optimized = true
				movements = append(movements, Movement{r1, c1, r2, c2, t, n})
			}
		}
	}
	return optimized, movements
}

// moveSlices moves slices of one type from a source plate into a
// target plate, filling the target's empty slots.  If the target
// is full but already holds slices of the type, it first tries
// to swap the target's least-common other type back into the
// source's empty slots to make room.  Returns whether any slice
// of the requested type moved and how many.
func moveSlices(source, target *Plate, t SliceType) (bool, int) {
	toMove := source.Count(t)
	if toMove == 0 {
		return false, 0
	}

	emptySlots := target.EmptySlots()
	if emptySlots == 0 {
		if target.Count(t) == 0 {
			return false, 0
		}
		other, otherCount := leastCommonOther(target, t)
		sourceEmpty := source.EmptySlots()
		if other == 0 || sourceEmpty < otherCount {
			return false, 0
		}
		// Swap the other type out of the target to free room.
		for i := range target {
			if target[i] == other && sourceEmpty > 0 {
				target[i] = 0
				source.addSlice(other)
				sourceEmpty--
			}
		}
		moved, movedCount := false, 0
		toMove = min(toMove, target.EmptySlots())
		for i := range source {
			if source[i] == t && toMove > 0 {
				source[i] = 0
				target.addSlice(t)
				toMove--
				movedCount++
				moved = true
			}
		}
		return moved, movedCount
	}

	toMove = min(toMove, emptySlots)
	moved, movedCount := false, 0
	for i := range source {
		if source[i] == t && toMove > 0 {
			source[i] = 0
			target.addSlice(t)
			toMove--
			movedCount++
			moved = true
		}
	}
	return moved, movedCount
}

// leastCommonOther finds the least-common slice type on the
// plate other than the excluded type.  Ties go to the type seen
// first in slot order.  Returns 0 if the plate holds no other
// type.
func leastCommonOther(p *Plate, exclude SliceType) (SliceType, int) {
	var counts [MaxSliceType + 1]int
	var first [MaxSliceType + 1]int
	for i, s := range p {
		if s == 0 || s == exclude {
			continue
		}
		if counts[s] == 0 {
			first[s] = i
		}
		counts[s]++
	}
	best, bestCount := SliceType(0), 0
	for t := SliceType(1); t <= MaxSliceType; t++ {
		if counts[t] == 0 {
			continue
		}
		if best == 0 || counts[t] < bestCount ||
			(counts[t] == bestCount && first[t] < first[best]) {
			best, bestCount = t, counts[t]
		}
	}
	return best, bestCount
}

// CheckCompletedCakes removes every completed cake from the
// board, then sweeps any plates left with no slices at all.  It
// returns the number of cakes removed.
func (b *Board) CheckCompletedCakes() int {
	completed := 0
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.grid[r][c] != nil && b.grid[r][c].IsComplete() {
				b.grid[r][c] = nil
				completed++
			}
		}
	}
	b.RemoveEmptyPlates()
	return completed
}

// RemoveEmptyPlates clears every cell whose plate has been
// drained of all its slices, returning how many were removed.
func (b *Board) RemoveEmptyPlates() int {
	removed := 0
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.grid[r][c] != nil && b.grid[r][c].IsEmpty() {
				b.grid[r][c] = nil
				removed++
			}
		}
	}
	return removed
}

// IsFull reports whether every cell holds a plate.
func (b *Board) IsFull() bool {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.grid[r][c] == nil {
				return false
			}
		}
	}
	return true
}

// CountOccupied returns the number of cells holding a plate.
func (b *Board) CountOccupied() int {
	count := 0
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.grid[r][c] != nil {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.rows, b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.grid[r][c] != nil {
				p := *b.grid[r][c]
				clone.grid[r][c] = &p
			}
		}
	}
	return clone
}
