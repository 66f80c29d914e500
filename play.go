package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rmendes/fifteen/game/engine"
)

// displayBoard writes the board as four-character cells, the blank cell
// as spaces, with an empty line after every row.
func displayBoard(w io.Writer, b *engine.Board) error {
	for _, row := range b.Rows() {
		for _, tile := range row {
			if tile == engine.Blank {
				if _, err := fmt.Fprint(w, "    "); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(w, "%4d", tile); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprint(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
}

// parseCommand maps one input line to slide directions. A 'q' anywhere
// quits, discarding the rest of the line; unknown characters are ignored.
func parseCommand(line string) (moves []engine.Direction, quit bool) {
	for _, c := range line {
		switch c {
		case 'w':
			moves = append(moves, engine.Up)
		case 'a':
			moves = append(moves, engine.Left)
		case 's':
			moves = append(moves, engine.Down)
		case 'd':
			moves = append(moves, engine.Right)
		case 'q':
			return nil, true
		}
	}
	return moves, false
}

// runPlay drives the terminal game loop: render the board, prompt, apply
// the line's slides, repeat until 'q' or input runs out. Solving does not
// end the loop; the player may keep sliding. The welcome, prompt and
// solved texts come from the configuration's messages; empty prompt and
// solved fall back to the classic strings.
func runPlay(in io.Reader, out io.Writer, cfg *engine.GameConfig) error {
	board, err := engine.NewBoardFromConfig(cfg)
	if err != nil {
		return err
	}

	prompt := cfg.Messages.Prompt
	if prompt == "" {
		prompt = "Slide into direction [w, a, s, d], q - for quit: "
	}
	solved := cfg.Messages.Solved
	if solved == "" {
		solved = "Puzzle is solved!"
	}

	if cfg.Messages.Welcome != "" {
		if _, err := fmt.Fprintf(out, "%s\n\n", cfg.Messages.Welcome); err != nil {
			return err
		}
	}
	if err := displayBoard(out, board); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		moves, quit := parseCommand(scanner.Text())
		if quit {
			return nil
		}
		board.MoveMany(moves)

		if err := displayBoard(out, board); err != nil {
			return err
		}
		if board.IsSolved() {
			if _, err := fmt.Fprintf(out, "%s\n\n", solved); err != nil {
				return err
			}
		}
	}
}
