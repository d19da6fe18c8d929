package puzzle

/*

Game state

*/

import (
	"math/rand"
	"time"
)

// An Action identifies one placement: the board cell and the
// index of the plate in the visible window.
type Action struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Plate int `json:"plate"`
}

// Effects describes what one placement caused, for the benefit
// of rendering and logging collaborators.
type Effects struct {
	Movements      []Movement `json:"movements,omitempty"`
	CompletedCakes int        `json:"completedCakes"`
}

// A Config describes the game to construct.  Zero fields take
// level-appropriate defaults.
type Config struct {
	Level      int
	Rows, Cols int
	PlateLimit int
	Seed       int64
}

// Board sizes per level; levels beyond the table use the largest
// size.
var levelBoardSizes = map[int][2]int{
	1: {4, 4},
	2: {4, 5},
	3: {5, 5},
	4: {5, 6},
	5: {6, 6},
}

// BoardSizeForLevel returns the default (rows, cols) for a
// level.
func BoardSizeForLevel(level int) (int, int) {
	if size, ok := levelBoardSizes[level]; ok {
		return size[0], size[1]
	}
	size := levelBoardSizes[5]
	return size[0], size[1]
}

// A State is one complete game: the board, the plate supply and
// the score, move and termination bookkeeping.  The only
// mutating operation is Place; search algorithms work on clones.
type State struct {
	Level    int
	Score    int
	Moves    int
	GameOver bool
	Win      bool
	Board    *Board
	Supply   *Supply
}

// NewState builds a fresh game from the configuration.  A zero
// Seed draws one from the clock; fix the seed to make the plate
// sequence reproducible.
func NewState(cfg Config) *State {
	if cfg.Level < 1 {
		cfg.Level = 1
	}
	rows, cols := cfg.Rows, cfg.Cols
	if rows < 1 || cols < 1 {
		rows, cols = BoardSizeForLevel(cfg.Level)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return &State{
		Level:  cfg.Level,
		Board:  NewBoard(rows, cols),
		Supply: NewSupply(cfg.Level, cfg.PlateLimit, rng),
	}
}

// Place takes the visible plate at plateIndex out of the supply
// and puts it on the cell at (r, c).  On failure (occupied or
// invalid cell, out-of-range index) the state is untouched and
// Place returns false with empty effects.
//
// On success the placed plate is optimized against its four
// orthogonal neighbors (up, down, left, right), completed cakes
// are cleared and scored, and the termination flags are updated:
// Win exactly when the supply is exhausted with board space
// left, GameOver when the board has filled or the supply has
// drained without a win.
func (s *State) Place(r, c, plateIndex int) (bool, Effects) {
	if !s.Board.IsEmpty(r, c) {
		return false, Effects{}
	}
	plate, ok := s.Supply.Get(plateIndex)
	if !ok {
		return false, Effects{}
	}
	if !s.Board.Place(r, c, plate) {
		return false, Effects{}
	}
	s.Supply.Remove(plateIndex)
	s.Moves++

	var effects Effects
	effects.Movements = s.optimizeNeighbors(r, c)

	completed := s.Board.CheckCompletedCakes()
	if completed > 0 {
		s.Score += completed
		effects.CompletedCakes = completed
	}

	s.Win = s.Supply.IsExhausted() && !s.Board.IsFull()
	if (s.Board.IsFull() && !s.Win) || (!s.Supply.HasPlates() && !s.Win) {
		s.GameOver = true
	}
	return true, effects
}

// optimizeNeighbors runs adjacency optimization between the cell
// at (r, c) and each occupied orthogonal neighbor, in up, down,
// left, right order.  The placed plate is always the first
// operand, so it receives the slices on an equal count.
func (s *State) optimizeNeighbors(r, c int) []Movement {
	neighbors := [4][2]int{{r - 1, c}, {r + 1, c}, {r, c - 1}, {r, c + 1}}
	var all []Movement
	for _, n := range neighbors {
		if s.Board.IsValidPosition(n[0], n[1]) && !s.Board.IsEmpty(n[0], n[1]) {
			_, movements := s.Board.OptimizeAdjacent(r, c, n[0], n[1])
			all = append(all, movements...)
		}
	}
	return all
}

// Terminal reports whether the game has ended, by win or by
// loss.
func (s *State) Terminal() bool {
	return s.Win || s.GameOver
}

// Clone returns a deep copy of the state.  Clones share nothing
// with the original, so a search branch can mutate its clone
// freely.
func (s *State) Clone() *State {
	return &State{
		Level:    s.Level,
		Score:    s.Score,
		Moves:    s.Moves,
		GameOver: s.GameOver,
		Win:      s.Win,
		Board:    s.Board.Clone(),
		Supply:   s.Supply.Clone(),
	}
}
