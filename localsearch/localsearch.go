// Package localsearch implements Local Search (LS) and Variable
// Neighborhood Descent (VND), spec §4.9.
package localsearch

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/neighborhood"
	"github.com/eser-chr/scdf-heuristics-core/solution"
	"github.com/eser-chr/scdf-heuristics-core/step"
	"github.com/eser-chr/scdf-heuristics-core/stopping"
)

// Factory builds a fresh Neighborhood bound to the given solution. Every LS
// iteration rebuilds its neighborhood over the current (possibly just
// updated) solution rather than reusing a stale one.
type Factory func(inst *instance.Instance, sol *solution.Solution) neighborhood.Neighborhood

// Options configures a single Local Search run. Zero value is not
// meaningful; use DefaultOptions and override as needed.
type Options struct {
	// Step selects a move from the current neighborhood each iteration.
	// Default: step.BestImprovement.
	Step step.Func

	// Stop decides when to give up even if a move is still found. Default:
	// stopping.MaxIterations(1000).
	Stop stopping.Criterion

	// Seed seeds the run's own *rand.Rand; no process-wide RNG is used.
	Seed int64
}

// DefaultOptions returns best-improvement step selection with a 1000
// iteration cap.
func DefaultOptions() Options {
	return Options{
		Step: step.BestImprovement,
		Stop: stopping.MaxIterations(1000),
		Seed: 0,
	}
}

// Result reports a Local Search or VND outcome.
type Result struct {
	Solution   *solution.Solution
	Objective  float64
	Iterations int
	// RunID uniquely identifies this run for log correlation (§3.3/§4 of
	// SPEC_FULL.md); it has no semantic effect on the search itself.
	RunID string
}

// Run repeatedly rebuilds factory over the current solution, asks
// opts.Step for a move, applies it if found, and stops when no move is
// found or opts.Stop fires (spec §4.9's LS).
func Run(inst *instance.Instance, initial *solution.Solution, factory Factory, opts Options) (Result, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	opts.Stop.Reset()

	current := initial
	f, err := current.Objective(inst)
	if err != nil {
		return Result{}, err
	}

	iter := 0
	for !opts.Stop.Check(iter, f) {
		n := factory(inst, current)
		mov, ok := opts.Step(n, rng)
		if !ok {
			break
		}
		next, err := n.Apply(mov)
		if err != nil {
			return Result{}, err
		}
		nextF, err := next.Objective(inst)
		if err != nil {
			return Result{}, err
		}
		current = next
		f = nextF
		iter++
	}

	return Result{Solution: current, Objective: f, Iterations: iter, RunID: uuid.NewString()}, nil
}
