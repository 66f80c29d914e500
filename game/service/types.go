package service

import (
	"time"

	"github.com/rmendes/fifteen/game/engine"
)

// BoardState is a wire snapshot of a session's board. Rows are copies of
// the grid in row-major order; the value 0 marks the blank cell.
type BoardState struct {
	Size   int             `json:"size"`
	Rows   [][]engine.Tile `json:"rows"`
	Solved bool            `json:"solved"`
	Moves  int             `json:"moves"`
}

// NewBoardState snapshots a session into a BoardState. The rows are deep
// copies so the snapshot stays stable after the board moves again.
func NewBoardState(sess *Session) *BoardState {
	view := sess.Board.Rows()
	rows := make([][]engine.Tile, len(view))
	for i, row := range view {
		rows[i] = append([]engine.Tile(nil), row...)
	}
	return &BoardState{
		Size:   sess.Board.Size(),
		Rows:   rows,
		Solved: sess.Board.IsSolved(),
		Moves:  sess.Moves,
	}
}

// SessionInfo provides information about a game session.
type SessionInfo struct {
	ID             string      `json:"id"`
	ConfigName     string      `json:"config_name"`
	CreatedAt      time.Time   `json:"created_at"`
	LastAccessedAt time.Time   `json:"last_accessed_at"`
	BoardState     *BoardState `json:"board_state"`
}

// MoveResult contains the outcome of a single move. Applied is false for a
// wall push; that is a normal result, not an error.
type MoveResult struct {
	Direction  string      `json:"direction"`
	Applied    bool        `json:"applied"`
	BoardState *BoardState `json:"board_state"`
}

// BulkMoveResult contains the outcome of a move sequence. Every requested
// direction is attempted in order; Applied counts the legal ones.
type BulkMoveResult struct {
	Requested  int         `json:"requested"`
	Applied    int         `json:"applied"`
	BoardState *BoardState `json:"board_state"`
}

// ConfigInfo provides information about a game configuration.
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BoardSize   int    `json:"board_size"`
	Shuffle     string `json:"shuffle"`
}
