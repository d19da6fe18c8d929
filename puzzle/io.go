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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

/*

Saved-game text format

A saved game is a plain-text record:

	level 1
	score 0 moves 2 used 2 limit 18 win false over false
	board 4 4
	Empty | 1,2,None,None,None,None,None,None | Empty | Empty
	... one line per board row ...
	plates
	1,None,None,None,None,None,None,None;3,3,None,None,None,None,None,None

Each cell is either the literal marker "Empty" or the
comma-joined contents of its eight slots, with "None" for an
empty slot.  The final line holds every remaining plate, visible
window first and then the queue, joined by semicolons; it is
blank once the supply has drained.

*/

const (
	emptyCellMarker = "Empty"
	emptySlotMarker = "None"
	cellSeparator   = " | "
	plateSeparator  = ";"
)

// encodePlate renders the eight slots of a plate.
func encodePlate(p Plate) string {
	parts := make([]string, PlateSlots)
	for i, s := range p {
		if s == 0 {
			parts[i] = emptySlotMarker
		} else {
			parts[i] = strconv.Itoa(int(s))
		}
	}
	return strings.Join(parts, ",")
}

// parsePlate is the inverse of encodePlate.
func parsePlate(text string) (Plate, error) {
	var p Plate
	parts := strings.Split(text, ",")
	if len(parts) != PlateSlots {
		return p, formatError(BadCellValueCondition, CellAttribute, text)
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == emptySlotMarker {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil || v < 1 || v > MaxSliceType {
			return p, formatError(BadCellValueCondition, CellAttribute, text)
		}
		p[i] = SliceType(v)
	}
	return p, nil
}

// encodeCell renders one board cell.
func encodeCell(b *Board, r, c int) string {
	plate, ok := b.PlateAt(r, c)
	if !ok {
		return emptyCellMarker
	}
	return encodePlate(plate)
}

// Write serializes the state in the saved-game text format.
func (s *State) Write(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "level %d\n", s.Level)
	fmt.Fprintf(&sb, "score %d moves %d used %d limit %d win %t over %t\n",
		s.Score, s.Moves, s.Supply.Used(), s.Supply.Limit(), s.Win, s.GameOver)
	fmt.Fprintf(&sb, "board %d %d\n", s.Board.Rows(), s.Board.Cols())
	for r := 0; r < s.Board.Rows(); r++ {
		cells := make([]string, s.Board.Cols())
		for c := 0; c < s.Board.Cols(); c++ {
			cells[c] = encodeCell(s.Board, r, c)
		}
		fmt.Fprintf(&sb, "%s\n", strings.Join(cells, cellSeparator))
	}
	fmt.Fprintf(&sb, "plates\n")
	plates := append(s.Supply.Visible(), s.Supply.Queued()...)
	encoded := make([]string, len(plates))
	for i, p := range plates {
		encoded[i] = encodePlate(p)
	}
	fmt.Fprintf(&sb, "%s\n", strings.Join(encoded, plateSeparator))
	_, err := io.WriteString(w, sb.String())
	return err
}

// Read parses a saved game.  Malformed records are rejected with
// a FormatScope Error and a nil state; a successfully parsed
// record reconstructs the board, the supply split (window first,
// then queue) and all counters exactly.
func Read(r io.Reader) (*State, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 5 {
		return nil, formatError(WrongLineCountCondition, SectionAttribute, 5, len(lines))
	}

	// level line
	var level int
	if n, err := fmt.Sscanf(lines[0], "level %d", &level); n != 1 || err != nil || level < 1 {
		return nil, formatError(MissingSectionCondition, LevelAttribute, "level")
	}

	// counters line
	var score, moves, used, limit int
	var win, over bool
	if n, err := fmt.Sscanf(lines[1], "score %d moves %d used %d limit %d win %t over %t",
		&score, &moves, &used, &limit, &win, &over); n != 6 || err != nil {
		return nil, formatError(MissingSectionCondition, SectionAttribute, "score")
	}

	// board section
	var rows, cols int
	if n, err := fmt.Sscanf(lines[2], "board %d %d", &rows, &cols); n != 2 || err != nil ||
		rows < 1 || cols < 1 {
		return nil, formatError(MissingSectionCondition, SectionAttribute, "board")
	}
	if len(lines) != rows+5 {
		return nil, formatError(WrongLineCountCondition, SectionAttribute, rows+5, len(lines))
	}
	board := NewBoard(rows, cols)
	for r := 0; r < rows; r++ {
		cells := strings.Split(lines[3+r], "|")
		if len(cells) != cols {
			return nil, formatError(BadCellValueCondition, CellAttribute, lines[3+r])
		}
		for c, cell := range cells {
			cell = strings.TrimSpace(cell)
			if cell == emptyCellMarker {
				continue
			}
			plate, err := parsePlate(cell)
			if err != nil {
				return nil, err
			}
			board.Place(r, c, plate)
		}
	}

	// plates section
	if strings.TrimSpace(lines[3+rows]) != "plates" {
		return nil, formatError(MissingSectionCondition, SectionAttribute, "plates")
	}
	var plates []Plate
	if text := strings.TrimSpace(lines[4+rows]); text != "" {
		for _, part := range strings.Split(text, plateSeparator) {
			plate, err := parsePlate(part)
			if err != nil {
				return nil, err
			}
			plates = append(plates, plate)
		}
	}
	if used+len(plates) != limit {
		return nil, formatError(WrongLineCountCondition, SectionAttribute,
			limit-used, len(plates))
	}

	// the visible window is always refilled greedily, so the
	// first plates of the dump are the window
	visible := len(plates)
	if visible > VisiblePlates {
		visible = VisiblePlates
	}
	supply := &Supply{
		visible: append([]Plate(nil), plates[:visible]...),
		queue:   append([]Plate(nil), plates[visible:]...),
		used:    used,
		limit:   limit,
	}
	return &State{
		Level:    level,
		Score:    score,
		Moves:    moves,
		GameOver: over,
		Win:      win,
		Board:    board,
		Supply:   supply,
	}, nil
}

/*

Canonical state fingerprints

*/

// Representation returns a canonical structural snapshot of the
// state: board contents, remaining plates, counters and flags.
// Two states with identical snapshots are the same search node
// no matter how they were reached, so search algorithms use the
// snapshot as their visited-set key.  The snapshot depends only
// on structure, never on pointer identity.
func (s *State) Representation() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "L%d S%d M%d W%t O%t U%d/%d B:",
		s.Level, s.Score, s.Moves, s.Win, s.GameOver,
		s.Supply.Used(), s.Supply.Limit())
	for r := 0; r < s.Board.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < s.Board.Cols(); c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(encodeCell(s.Board, r, c))
		}
	}
	sb.WriteString(" V:")
	for i, p := range s.Supply.Visible() {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(encodePlate(p))
	}
	sb.WriteString(" Q:")
	for i, p := range s.Supply.Queued() {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(encodePlate(p))
	}
	return sb.String()
}

/*

Pretty-printed games in strings, for debugging.

*/

// String gives a pretty-printed view of the game: the board with
// each plate's slots as digits (dots for empty slots), then the
// visible window and the counters.
func (s *State) String() string {
	var sb strings.Builder
	for r := 0; r < s.Board.Rows(); r++ {
		for c := 0; c < s.Board.Cols(); c++ {
			if c > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(plateGlyphs(s.Board, r, c))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "visible:")
	for _, p := range s.Supply.Visible() {
		fmt.Fprintf(&sb, " [%s]", glyphs(p))
	}
	fmt.Fprintf(&sb, "\nscore %d, moves %d, %d of %d plates used\n",
		s.Score, s.Moves, s.Supply.Used(), s.Supply.Limit())
	return sb.String()
}

func plateGlyphs(b *Board, r, c int) string {
	plate, ok := b.PlateAt(r, c)
	if !ok {
		return strings.Repeat("-", PlateSlots)
	}
	return glyphs(plate)
}

func glyphs(p Plate) string {
	var sb strings.Builder
	for _, s := range p {
		if s == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(byte('0' + s))
		}
	}
	return sb.String()
}
