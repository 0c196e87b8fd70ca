// Package step implements the three move-selection strategies spec §4.7
// names, each a thin function over a neighborhood.Neighborhood.
package step

import (
	"math/rand"

	"github.com/eser-chr/scdf-heuristics-core/neighborhood"
)

// maxTriesFirstImprovement bounds FirstImprovement's rejection sampling,
// matching the source's StepFunction::first_improvement _MAX_TRIES.
const maxTriesFirstImprovement = 1000

// Func selects a move from n, or reports false if none was found.
type Func func(n neighborhood.Neighborhood, rng *rand.Rand) (neighborhood.Move, bool)

// FirstImprovement draws random candidates up to maxTriesFirstImprovement
// times and returns the first valid move with a strictly negative delta.
func FirstImprovement(n neighborhood.Neighborhood, rng *rand.Rand) (neighborhood.Move, bool) {
	for t := 0; t < maxTriesFirstImprovement; t++ {
		mov, ok := n.GenerateRandom(rng)
		if !ok {
			continue
		}
		if !n.IsValid(mov) {
			continue
		}
		delta, err := n.CalcDelta(mov)
		if err != nil {
			continue
		}
		if delta < 0 {
			return mov, true
		}
	}
	return nil, false
}

// BestImprovement enumerates the full neighborhood and returns the valid
// move with the smallest (most negative) delta, or false if no improving
// move exists.
func BestImprovement(n neighborhood.Neighborhood, _ *rand.Rand) (neighborhood.Move, bool) {
	var best neighborhood.Move
	bestDelta := 0.0
	found := false

	for _, mov := range n.Generate() {
		if !n.IsValid(mov) {
			continue
		}
		delta, err := n.CalcDelta(mov)
		if err != nil {
			continue
		}
		if delta < bestDelta {
			bestDelta = delta
			best = mov
			found = true
		}
	}

	return best, found
}

// RandomStep returns one GenerateRandom sample without judging delta (used
// by Simulated Annealing, spec §4.10).
func RandomStep(n neighborhood.Neighborhood, rng *rand.Rand) (neighborhood.Move, bool) {
	return n.GenerateRandom(rng)
}
