package engine

import (
	"fmt"
	"strings"
)

// Tile is the value held by a single grid cell. The zero value is the blank
// sentinel; real tiles are 1..size*size-1 and are unique across the board.
type Tile uint16

// Blank is the sentinel for the one empty cell.
const Blank Tile = 0

const (
	// MinBoardSize is the smallest accepted board. A 1×1 board is
	// degenerate: no tiles, no legal moves, always solved.
	MinBoardSize = 1

	// MaxBoardSize keeps the largest tile value (size*size-1 = 65024)
	// within the uint16 tile width.
	MaxBoardSize = 255
)

// Direction is one of the four ways a tile can slide into the blank. The
// set is closed: Left, Right, Up, Down.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// NumDirections is the size of the Direction enum, handy for random draws.
const NumDirections = 4

// Directions lists all four directions in enum order.
var Directions = [NumDirections]Direction{Left, Right, Up, Down}

var directionNames = [NumDirections]string{"left", "right", "up", "down"}

// String returns the lowercase wire name of the direction.
func (d Direction) String() string {
	if d < 0 || int(d) >= NumDirections {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction that undoes d. Applying a legal move and
// then its opposite restores the prior board exactly.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// ParseDirection resolves a wire string ("left", "right", "up", "down",
// case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want left, right, up or down)", s)
}

// ParseDirections resolves a slice of wire strings, failing on the first
// unknown entry.
func ParseDirections(ss []string) ([]Direction, error) {
	out := make([]Direction, 0, len(ss))
	for _, s := range ss {
		d, err := ParseDirection(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
