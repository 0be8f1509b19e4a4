package game

import (
	"github.com/2020-DEV-174/TicTacToe/grid"
)

// Board records which player occupies each cell. NoPlayerNumber marks an empty
// cell. A Board reachable from a published State is never modified.
type Board struct {
	cells *grid.Grid[PlayerNumber]
}

// NewBoard returns an empty board of the given shape.
func NewBoard(dimensions grid.Dimensions) (Board, error) {
	cells, err := grid.New(dimensions, NoPlayerNumber)
	if err != nil {
		return Board{}, err
	}
	return Board{cells: cells}, nil
}

func (b Board) Dimensions() grid.Dimensions { return b.cells.Dimensions() }

// Count is the number of cells.
func (b Board) Count() int { return b.cells.Count() }

// IsEmpty reports whether no cell is occupied.
func (b Board) IsEmpty() bool {
	return b.cells.CountWhere(func(p PlayerNumber) bool { return p != NoPlayerNumber }) == 0
}

// Unoccupied counts the empty cells.
func (b Board) Unoccupied() int {
	return grid.CountEqual(b.cells, NoPlayerNumber)
}

// At returns the occupant of position, or NoPlayerNumber when position is not
// on the board.
func (b Board) At(position grid.Position) PlayerNumber {
	p, err := b.cells.Get(position)
	if err != nil {
		return NoPlayerNumber
	}
	return p
}

// Contains reports whether position is on the board.
func (b Board) Contains(position grid.Position) bool {
	return b.cells.Contains(position)
}

// Position converts a cell index into its position.
func (b Board) Position(index int) (grid.Position, error) {
	return b.cells.Position(index)
}

// Cells returns the occupants in index order.
func (b Board) Cells() []PlayerNumber { return b.cells.Values() }

func (b Board) clone() Board {
	return Board{cells: b.cells.Clone()}
}

// set writes player at position. Identical writes are skipped.
func (b Board) set(position grid.Position, player PlayerNumber) error {
	current, err := b.cells.Get(position)
	if err != nil {
		return err
	}
	if current == player {
		return nil
	}
	return b.cells.Set(position, player)
}

// reset empties every cell in place.
func (b Board) reset() {
	b.cells.Fill(NoPlayerNumber)
}

// Playable marks the cells eligible for the next move.
type Playable struct {
	cells *grid.Grid[bool]
}

func newPlayable(dimensions grid.Dimensions) (Playable, error) {
	cells, err := grid.New(dimensions, false)
	if err != nil {
		return Playable{}, err
	}
	return Playable{cells: cells}, nil
}

func (p Playable) Dimensions() grid.Dimensions { return p.cells.Dimensions() }

// At reports whether position may be played. Positions off the board are
// never playable.
func (p Playable) At(position grid.Position) bool {
	ok, err := p.cells.Get(position)
	return err == nil && ok
}

// Count returns how many cells are playable.
func (p Playable) Count() int {
	return grid.CountEqual(p.cells, true)
}

// Cells returns the eligibility flags in index order.
func (p Playable) Cells() []bool { return p.cells.Values() }
