// Command analyze prints quick, human-readable difficulty heuristics for
// shuffled boards. It draws seeded scrambles, solves each one optimally
// with the breadth-first solver, and summarizes how hard the shuffler's
// output actually is: scramble walk length versus optimal solution length.
//
// Only board sizes the exact solver can handle (2 and 3) are accepted.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rmendes/fifteen/game/engine"
	"github.com/rmendes/fifteen/game/solver"
)

var (
	size      = flag.Int("size", 3, "board size to analyze (2 or 3)")
	samples   = flag.Int("samples", 20, "number of seeded scrambles to solve")
	baseSeed  = flag.Uint64("seed", 1, "first seed; sample i uses seed+i")
	maxStates = flag.Int("max-states", solver.DefaultMaxStates, "state budget per solve")
)

// sampleResult captures one scramble's difficulty measurements.
type sampleResult struct {
	Seed    uint64
	WalkLen int
	Optimal int
}

func main() {
	flag.Parse()

	if *size > solver.MaxSolvableSize {
		fmt.Fprintf(os.Stderr, "size %d exceeds the exact solver's limit of %d\n",
			*size, solver.MaxSolvableSize)
		os.Exit(1)
	}
	if *samples < 1 {
		fmt.Fprintln(os.Stderr, "need at least one sample")
		os.Exit(1)
	}

	results, failed := collectSamples(*size, *samples, *baseSeed, *maxStates)

	fmt.Printf("=== Shuffle difficulty: %dx%d board, %d samples ===\n\n", *size, *size, *samples)
	for _, r := range results {
		fmt.Printf("seed %4d: walk %4d accepted moves, optimal solution %3d\n",
			r.Seed, r.WalkLen, r.Optimal)
	}
	if failed > 0 {
		fmt.Printf("\n%d samples exceeded the state budget (%d states)\n", failed, *maxStates)
	}

	if len(results) > 0 {
		min, max, total := results[0].Optimal, results[0].Optimal, 0
		solvedAlready := 0
		for _, r := range results {
			if r.Optimal < min {
				min = r.Optimal
			}
			if r.Optimal > max {
				max = r.Optimal
			}
			if r.Optimal == 0 {
				solvedAlready++
			}
			total += r.Optimal
		}
		fmt.Printf("\nOptimal length: min %d, max %d, mean %.1f\n",
			min, max, float64(total)/float64(len(results)))
		if solvedAlready > 0 {
			fmt.Printf("%d scrambles landed back on the solved board\n", solvedAlready)
		}
	}
}

// collectSamples scrambles and solves boards for seeds base..base+n-1.
// Samples whose solve exhausts the state budget are counted, not listed.
func collectSamples(size, n int, base uint64, maxStates int) ([]sampleResult, int) {
	var results []sampleResult
	failed := 0

	for i := 0; i < n; i++ {
		seed := base + uint64(i)

		shuffler := engine.NewSeededRandomWalkShuffler(seed)
		shuffler.Record(true)
		board, err := engine.NewBoard(size, shuffler)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed %d: %v\n", seed, err)
			failed++
			continue
		}

		path, err := solver.Solve(board, maxStates)
		if err != nil {
			failed++
			continue
		}

		results = append(results, sampleResult{
			Seed:    seed,
			WalkLen: len(shuffler.RecordedMoves()),
			Optimal: len(path),
		})
	}

	return results, failed
}
