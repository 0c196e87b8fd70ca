// Package genetic implements the Genetic Algorithm over an Encoding
// population, spec §4.13.
package genetic

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/eser-chr/scdf-heuristics-core/construct"
	"github.com/eser-chr/scdf-heuristics-core/encoding"
	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// ErrPopulationTooSmall indicates Options.PopulationSize was below 3 (spec
// §4.13 requires k1 >= 3 so every pair can reproduce).
var ErrPopulationTooSmall = errors.New("genetic: population size must be at least 3")

// constructionBeamA and constructionBeamWidth are the beam constructor
// parameters spec §4.13 fixes for seeding two thirds of the initial
// population.
const (
	constructionBeamA     = 0.9
	constructionBeamWidth = 5
)

// Options configures one Genetic Algorithm run. Zero value is not
// meaningful; use DefaultOptions and override as needed.
type Options struct {
	// PopulationSize is k1, the number of individuals kept each generation.
	// Must be >= 3.
	PopulationSize int

	// MutationCount is k2, the number of random (request, vehicle)
	// reassignments applied to every offspring each generation.
	MutationCount int

	// Generations bounds the outer reproduce/mutate/select loop.
	Generations int

	// DecodeBeamWidth sizes the beam search used when decoding an Encoding
	// to evaluate its objective.
	DecodeBeamWidth int

	// Seed seeds the run's own *rand.Rand.
	Seed int64
}

// DefaultOptions returns a population of 10, 2 mutations per offspring per
// generation, 50 generations, and a decode beam width of 5.
func DefaultOptions() Options {
	return Options{
		PopulationSize:  10,
		MutationCount:   2,
		Generations:     50,
		DecodeBeamWidth: 5,
		Seed:            0,
	}
}

// Result reports a Genetic Algorithm outcome.
type Result struct {
	Solution    *solution.Solution // best solution found across all generations
	Objective   float64
	Generations int
	RunID       string
}

// generateInitialPopulation seeds one third of the population via
// construct.Deterministic and the remaining two thirds via
// construct.Beam(a=0.9, W=5), matching GA::generate_initial_population.
func generateInitialPopulation(inst *instance.Instance, k1 int, rng *rand.Rand) ([]*encoding.Encoding, error) {
	population := make([]*encoding.Encoding, 0, k1)
	sizeOfDC := k1 / 3

	for i := 0; i < sizeOfDC; i++ {
		sol, err := construct.Deterministic(inst, rng)
		if err != nil {
			return nil, err
		}
		population = append(population, encoding.New(inst, sol))
	}
	for i := sizeOfDC; i < k1; i++ {
		sol, err := construct.Beam(inst, constructionBeamA, constructionBeamWidth)
		if err != nil {
			return nil, err
		}
		population = append(population, encoding.New(inst, sol))
	}
	return population, nil
}

// reproduce produces one offspring per unordered pair of parents via
// encoding.Add, matching GA::reproduce.
func reproduce(inst *instance.Instance, parents []*encoding.Encoding, rng *rand.Rand) ([]*encoding.Encoding, error) {
	offspring := make([]*encoding.Encoding, 0, len(parents)*(len(parents)-1)/2)
	for i := 0; i < len(parents); i++ {
		for j := i + 1; j < len(parents); j++ {
			child, err := encoding.Add(inst, parents[i], parents[j], rng)
			if err != nil {
				return nil, err
			}
			offspring = append(offspring, child)
		}
	}
	return offspring, nil
}

// mutate reassigns k2 random (request, vehicle) pairs in every individual,
// matching GA::mutate.
func mutate(inst *instance.Instance, population []*encoding.Encoding, k2 int, rng *rand.Rand) {
	if k2 == 0 {
		return
	}
	for _, enc := range population {
		for i := 0; i < k2; i++ {
			req := rng.Intn(inst.N)
			vehicle := rng.Intn(inst.NK)
			enc.SetVehicleForRequest(vehicle, req)
		}
	}
}

// bestOf decodes every individual and returns the one with the smallest
// objective, matching GA::get_best_solution.
func bestOf(inst *instance.Instance, population []*encoding.Encoding, beamWidth int) (*solution.Solution, float64, error) {
	var best *solution.Solution
	bestF := 0.0
	found := false
	for _, enc := range population {
		sol := enc.Decode(inst, beamWidth)
		f, err := sol.Objective(inst)
		if err != nil {
			return nil, 0, err
		}
		if !found || f < bestF {
			best, bestF, found = sol, f, true
		}
	}
	return best, bestF, nil
}

// selectSurvivors decodes every individual in population and keeps the k1
// with the smallest objective, matching
// GA::select_indices_next_generation.
func selectSurvivors(inst *instance.Instance, population []*encoding.Encoding, k1, beamWidth int) ([]*encoding.Encoding, error) {
	type scored struct {
		enc *encoding.Encoding
		f   float64
	}
	scoredPop := make([]scored, len(population))
	for i, enc := range population {
		sol := enc.Decode(inst, beamWidth)
		f, err := sol.Objective(inst)
		if err != nil {
			return nil, err
		}
		scoredPop[i] = scored{enc: enc, f: f}
	}
	sort.Slice(scoredPop, func(i, j int) bool { return scoredPop[i].f < scoredPop[j].f })

	if k1 > len(scoredPop) {
		k1 = len(scoredPop)
	}
	survivors := make([]*encoding.Encoding, k1)
	for i := 0; i < k1; i++ {
		survivors[i] = scoredPop[i].enc
	}
	return survivors, nil
}

// Run seeds a population, then for Options.Generations rounds reproduces
// every parent pair, mutates the offspring, and keeps the PopulationSize
// best by objective as the next population, tracking the overall best
// solution seen (spec §4.13). ctx is checked once per generation for
// cooperative cancellation.
func Run(ctx context.Context, inst *instance.Instance, opts Options) (Result, error) {
	if opts.PopulationSize < 3 {
		return Result{}, ErrPopulationTooSmall
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	population, err := generateInitialPopulation(inst, opts.PopulationSize, rng)
	if err != nil {
		return Result{}, err
	}

	best, bestF, err := bestOf(inst, population, opts.DecodeBeamWidth)
	if err != nil {
		return Result{}, err
	}

	gen := 0
	for ; gen < opts.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		offspring, err := reproduce(inst, population, rng)
		if err != nil {
			return Result{}, err
		}
		mutate(inst, offspring, opts.MutationCount, rng)

		survivors, err := selectSurvivors(inst, offspring, opts.PopulationSize, opts.DecodeBeamWidth)
		if err != nil {
			return Result{}, err
		}

		genBest, genBestF, err := bestOf(inst, survivors, opts.DecodeBeamWidth)
		if err != nil {
			return Result{}, err
		}
		if genBestF < bestF {
			best, bestF = genBest, genBestF
		}

		population = survivors
	}

	return Result{Solution: best, Objective: bestF, Generations: gen, RunID: uuid.NewString()}, nil
}
