// Package anneal implements Simulated Annealing, spec §4.10.
package anneal

import (
	"context"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/localsearch"
	"github.com/eser-chr/scdf-heuristics-core/solution"
	"github.com/eser-chr/scdf-heuristics-core/step"
	"github.com/eser-chr/scdf-heuristics-core/stopping"
)

// Options configures one Simulated Annealing run. Zero value is not
// meaningful; use DefaultOptions and override as needed.
type Options struct {
	// Neighborhoods is the pool a random neighborhood factory is drawn from
	// each iteration. Must be non-empty.
	Neighborhoods []localsearch.Factory

	// Step selects a candidate move from the chosen neighborhood each
	// iteration. Default: step.RandomStep, matching spec §4.10's
	// "typically random_step".
	Step step.Func

	// Stop decides when to give up, evaluated against (iteration, best_f).
	// Default: stopping.MaxIterations(5000).
	Stop stopping.Criterion

	// InitialTemp is T at iteration 0. Default: 100.
	InitialTemp float64

	// Cooling multiplies T after every iteration. Default: 0.995.
	Cooling float64

	// MinTemp is the floor T never cools below. Default: 1e-3.
	MinTemp float64

	// Seed seeds the run's own *rand.Rand.
	Seed int64
}

// DefaultOptions returns random-step selection, a 5000-iteration cap, and a
// geometric cooling schedule from T=100 down to T=1e-3 at rate 0.995.
func DefaultOptions(neighborhoods []localsearch.Factory) Options {
	return Options{
		Neighborhoods: neighborhoods,
		Step:          step.RandomStep,
		Stop:          stopping.MaxIterations(5000),
		InitialTemp:   100,
		Cooling:       0.995,
		MinTemp:       1e-3,
		Seed:          0,
	}
}

// Result reports a Simulated Annealing outcome.
type Result struct {
	Solution   *solution.Solution // best solution found
	Objective  float64            // best objective found
	Iterations int
	RunID      string
}

// Run draws a random neighborhood each iteration, proposes one candidate
// move via opts.Step, accepts strictly improving moves unconditionally and
// worsening moves with probability exp(-delta/T), cools T geometrically,
// and tracks the best solution seen (spec §4.10). ctx is checked once per
// iteration for cooperative cancellation.
func Run(ctx context.Context, inst *instance.Instance, initial *solution.Solution, opts Options) (Result, error) {
	if len(opts.Neighborhoods) == 0 {
		return Result{}, ErrNoNeighborhoods
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	opts.Stop.Reset()

	current := initial
	f, err := current.Objective(inst)
	if err != nil {
		return Result{}, err
	}
	best, bestF := current, f

	temp := opts.InitialTemp
	iter := 0
	for !opts.Stop.Check(iter, bestF) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		factory := opts.Neighborhoods[rng.Intn(len(opts.Neighborhoods))]
		n := factory(inst, current)
		mov, ok := opts.Step(n, rng)
		if !ok {
			break
		}

		delta, err := n.CalcDelta(mov)
		if err != nil {
			return Result{}, err
		}

		accept := delta < 0
		if !accept {
			accept = rng.Float64() < math.Exp(-delta/temp)
		}

		if accept {
			next, err := n.Apply(mov)
			if err != nil {
				return Result{}, err
			}
			current = next
			f += delta
			if f < bestF {
				best, bestF = current, f
			}
		}

		temp = math.Max(temp*opts.Cooling, opts.MinTemp)
		iter++
	}

	return Result{Solution: best, Objective: bestF, Iterations: iter, RunID: uuid.NewString()}, nil
}
