package engine

// targetIndex computes the flat index of the cell that would swap with the
// blank for the given direction, and whether that move is legal from the
// current blank position. Horizontal targets must stay in the blank's row;
// vertical targets must stay on the board.
func (b *Board) targetIndex(d Direction) (int, bool) {
	switch d {
	case Left:
		next := b.blank + 1
		if next%b.size == 0 {
			return 0, false // blank is at the end of its row
		}
		return next, true
	case Right:
		if b.blank%b.size == 0 {
			return 0, false // blank is at the start of its row
		}
		return b.blank - 1, true
	case Up:
		next := b.blank + b.size
		if next >= len(b.cells) {
			return 0, false // blank is in the bottom row
		}
		return next, true
	case Down:
		next := b.blank - b.size
		if next < 0 {
			return 0, false // blank is in the top row
		}
		return next, true
	}
	return 0, false
}

// MoveOnce attempts a single move and reports whether it was legal and
// applied. An illegal move (pushing against a wall) leaves the board
// untouched and returns false; it is an expected input, never an error.
func (b *Board) MoveOnce(d Direction) bool {
	target, ok := b.targetIndex(d)
	if !ok {
		return false
	}
	b.cells[b.blank], b.cells[target] = b.cells[target], b.cells[b.blank]
	b.blank = target
	return true
}

// MoveMany applies a sequence of moves left to right and returns how many
// were legally applied. Every direction in the sequence is attempted, even
// after earlier ones failed; there is no reordering or batching.
func (b *Board) MoveMany(moves []Direction) int {
	applied := 0
	for _, d := range moves {
		if b.MoveOnce(d) {
			applied++
		}
	}
	return applied
}

// CanMove reports whether a move in the given direction would be legal,
// without applying it.
func (b *Board) CanMove(d Direction) bool {
	_, ok := b.targetIndex(d)
	return ok
}

// PossibleMoves returns the directions that are currently legal, in enum
// order. On any board larger than 1×1 at least two directions are legal.
func (b *Board) PossibleMoves() []Direction {
	possible := make([]Direction, 0, NumDirections)
	for _, d := range Directions {
		if b.CanMove(d) {
			possible = append(possible, d)
		}
	}
	return possible
}
