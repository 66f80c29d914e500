package engine

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Shuffler randomizes (or leaves alone) a freshly built board.
// The board handed to Shuffle is valid and solved; implementations must
// keep it reachable from the solved state. The safe way to do that is to
// mutate only through legal moves: an arbitrary permutation of the tiles is
// solvable just half the time.
type Shuffler interface {
	Shuffle(b *Board)
}

// IdentityShuffler leaves the board exactly as constructed. Used for
// deterministic walkthroughs and tests.
type IdentityShuffler struct{}

// Shuffle is a no-op.
func (IdentityShuffler) Shuffle(*Board) {}

// RandomWalkShuffler scrambles a board by walking size^4 legal moves chosen
// uniformly at random, redrawing whenever a pick is illegal at the current
// blank position. Because the result is a path of legal moves from the
// solved layout it is always solvable.
//
// The shuffler owns its random source rather than reaching for ambient
// process randomness, so a seeded instance produces the same walk every
// time.
type RandomWalkShuffler struct {
	rng    *frand.RNG
	walk   []Direction
	record bool
}

// NewRandomWalkShuffler returns a shuffler drawing from rng. A nil rng gets
// a fresh system-seeded source.
func NewRandomWalkShuffler(rng *frand.RNG) *RandomWalkShuffler {
	if rng == nil {
		rng = frand.New()
	}
	return &RandomWalkShuffler{rng: rng}
}

// NewSeededRandomWalkShuffler returns a shuffler whose walk is fully
// determined by seed.
func NewSeededRandomWalkShuffler(seed uint64) *RandomWalkShuffler {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &RandomWalkShuffler{rng: frand.NewCustom(key[:], 1024, 12)}
}

// Record toggles recording of the accepted walk. Recorded moves let tests
// invert the walk and confirm the board returns to solved.
func (s *RandomWalkShuffler) Record(on bool) {
	s.record = on
}

// RecordedMoves returns the accepted moves of the last recorded shuffle in
// application order.
func (s *RandomWalkShuffler) RecordedMoves() []Direction {
	return s.walk
}

// Shuffle performs the random walk. The walk cannot stall: from any blank
// position at least two directions are legal, so drawing uniformly always
// terminates. A 1×1 board has no legal moves and is left untouched.
func (s *RandomWalkShuffler) Shuffle(b *Board) {
	if s.record {
		s.walk = s.walk[:0]
	}
	n := b.Size()
	if n < 2 {
		return
	}

	target := n * n * n * n
	for applied := 0; applied < target; {
		d := Direction(s.rng.Intn(NumDirections))
		if !b.MoveOnce(d) {
			continue
		}
		applied++
		if s.record {
			s.walk = append(s.walk, d)
		}
	}
}
