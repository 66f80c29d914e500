// Package solver finds shortest move sequences for small puzzle boards by
// breadth-first search over the reachable state space. It exists as an
// analysis and testing collaborator for the shuffle strategies, not as a
// gameplay feature: a 3×3 board already has 181440 reachable states and a
// 4×4 is far beyond brute force, so Solve refuses boards larger than
// MaxSolvableSize.
package solver

import (
	"errors"
	"fmt"

	"github.com/rmendes/fifteen/game/engine"
)

const (
	// MaxSolvableSize is the largest board dimension Solve accepts.
	MaxSolvableSize = 3

	// DefaultMaxStates bounds the search frontier. It comfortably covers
	// the full 3x3 state space (9!/2 = 181440).
	DefaultMaxStates = 400000
)

var (
	// ErrBoardTooLarge means the board exceeds MaxSolvableSize.
	ErrBoardTooLarge = errors.New("board too large for brute-force solving")

	// ErrNoSolution means the search exhausted all reachable states
	// without hitting the solved layout. Boards built through the public
	// engine API are always reachable from solved, so this only fires on
	// hand-assembled states from the wrong parity class.
	ErrNoSolution = errors.New("no solution reachable from this state")

	// ErrSearchExhausted means the state budget ran out first.
	ErrSearchExhausted = errors.New("search state budget exhausted")
)

// step records how a state was first reached, for path reconstruction.
type step struct {
	prev string
	move engine.Direction
}

// Solve returns a shortest sequence of directions that brings the board to
// the solved layout. The input board is not mutated. A solved board yields
// an empty sequence. maxStates caps the number of distinct states visited;
// zero selects DefaultMaxStates.
func Solve(b *engine.Board, maxStates int) ([]engine.Direction, error) {
	if b.Size() > MaxSolvableSize {
		return nil, fmt.Errorf("%w: %dx%d (max %dx%d)",
			ErrBoardTooLarge, b.Size(), b.Size(), MaxSolvableSize, MaxSolvableSize)
	}
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}
	if b.IsSolved() {
		return nil, nil
	}

	startKey := boardKey(b)
	came := map[string]step{startKey: {}}
	queue := []*engine.Board{b.Clone()}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curKey := boardKey(cur)

		for _, d := range engine.Directions {
			next := cur.Clone()
			if !next.MoveOnce(d) {
				continue
			}
			nextKey := boardKey(next)
			if _, seen := came[nextKey]; seen {
				continue
			}
			came[nextKey] = step{prev: curKey, move: d}

			if next.IsSolved() {
				return reconstruct(came, startKey, nextKey), nil
			}
			if len(came) >= maxStates {
				return nil, ErrSearchExhausted
			}
			queue = append(queue, next)
		}
	}

	return nil, ErrNoSolution
}

// boardKey encodes the cell contents into a compact map key, two bytes per
// tile in row-major order.
func boardKey(b *engine.Board) string {
	buf := make([]byte, 0, b.Size()*b.Size()*2)
	for _, row := range b.Rows() {
		for _, tile := range row {
			buf = append(buf, byte(tile), byte(tile>>8))
		}
	}
	return string(buf)
}

// reconstruct walks the came-from chain backwards from goal to start and
// returns the moves in application order.
func reconstruct(came map[string]step, startKey, goalKey string) []engine.Direction {
	var path []engine.Direction
	for key := goalKey; key != startKey; {
		s := came[key]
		path = append(path, s.move)
		key = s.prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
