// Package engine implements the core sliding-tile puzzle board.
//
// A Board is an N×N grid of numbered tiles with a single blank cell. Tiles
// slide into the blank via directional moves; the puzzle is solved when the
// non-blank values read in row-major order form the ascending sequence
// 1..N*N-1, regardless of where the blank sits.
//
// The engine is small and deterministic: it owns the cell
// buffer and the cached blank index, validates and applies moves, and
// reports solved state. Randomness is injected through the Shuffler
// interface so callers control reproducibility. The board performs no
// internal locking; it assumes a single mutator at any instant and leaves
// cross-goroutine exclusion to the session and service layers.
//
// Convention: the canonical solved layout places the blank in the last
// cell, and a Direction names the way the sliding tile travels. Left slides
// the tile on the blank's right one cell to the left (the blank swaps with
// index blank+1), Right slides the tile on the blank's left (blank-1), Up
// slides the tile below the blank (blank+size), and Down slides the tile
// above it (blank-size). Pushing against a wall is a routine no-op, not an
// error.
package engine
