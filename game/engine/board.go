package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a board size outside MinBoardSize..MaxBoardSize.
var ErrInvalidSize = errors.New("invalid board size")

// Board is an N×N sliding puzzle grid. Cells are stored flat in row-major
// order; exactly one cell holds Blank and its index is cached in blank.
//
// A Board is not safe for concurrent use; callers must ensure a single
// mutator at a time.
type Board struct {
	cells []Tile
	size  int
	blank int
}

// NewBoard builds a board of the given size in the canonical solved layout
// (tiles 1..size*size-1, blank last) and then hands it to the shuffler. The
// shuffler sees a valid solved board and must preserve the board invariants;
// the stock shufflers do so by only ever applying legal moves. A nil
// shuffler leaves the board solved.
func NewBoard(size int, shuffler Shuffler) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, size, MinBoardSize, MaxBoardSize)
	}

	b := &Board{
		cells: make([]Tile, size*size),
		size:  size,
	}
	b.layout()

	if shuffler != nil {
		shuffler.Shuffle(b)
	}
	return b, nil
}

// layout writes the canonical solved arrangement into the existing buffer.
func (b *Board) layout() {
	last := len(b.cells) - 1
	for i := 0; i < last; i++ {
		b.cells[i] = Tile(i + 1)
	}
	b.cells[last] = Blank
	b.blank = last
}

// Reset restores the canonical layout in place, reusing the cell buffer,
// and reapplies the shuffler. A nil shuffler leaves the board solved.
func (b *Board) Reset(shuffler Shuffler) {
	b.layout()
	if shuffler != nil {
		shuffler.Shuffle(b)
	}
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// BlankIndex returns the flat row-major index of the blank cell.
func (b *Board) BlankIndex() int {
	return b.blank
}

// Get returns the tile at the given row and column.
func (b *Board) Get(row, col int) Tile {
	return b.cells[row*b.size+col]
}

// Rows returns the grid as a slice of row slices. The rows are views over
// the board's cell buffer, not copies: they reflect later mutations, and
// only the row partition itself is allocated.
func (b *Board) Rows() [][]Tile {
	rows := make([][]Tile, b.size)
	for i := range rows {
		rows[i] = b.cells[i*b.size : (i+1)*b.size]
	}
	return rows
}

// IsSolved reports whether the non-blank cells, read in row-major order,
// form a strictly increasing sequence. The blank's position does not
// matter: a board whose digits ascend when the blank is skipped counts as
// solved wherever the blank sits.
func (b *Board) IsSolved() bool {
	prev := Blank
	for _, c := range b.cells {
		if c == Blank {
			continue
		}
		if c <= prev {
			return false
		}
		prev = c
	}
	return true
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		cells: append([]Tile(nil), b.cells...),
		size:  b.size,
		blank: b.blank,
	}
}

// Equal reports whether two boards have identical size and cell contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
