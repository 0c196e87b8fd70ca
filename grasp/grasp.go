// Package grasp implements the GRASP metaheuristic driver, spec §4.11:
// repeatedly construct a fresh randomized solution and polish it with
// Local Search, keeping the best objective seen across restarts.
package grasp

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/eser-chr/scdf-heuristics-core/construct"
	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/localsearch"
	"github.com/eser-chr/scdf-heuristics-core/solution"
	"github.com/eser-chr/scdf-heuristics-core/step"
	"github.com/eser-chr/scdf-heuristics-core/stopping"
)

// Options configures one GRASP run. Zero value is not meaningful; use
// DefaultOptions and override as needed.
type Options struct {
	// A is the ordering-metric mixing parameter passed to
	// construct.GRASPRandomized. Default: 0.5.
	A float64

	// Alpha sizes the constructor's restricted candidate list. Default: 0.3.
	Alpha float64

	// Neighborhoods rotates by restart index: restart i polishes with
	// Neighborhoods[i % len(Neighborhoods)]. Must be non-empty.
	Neighborhoods []localsearch.Factory

	// Step selects moves during the per-restart Local Search polish.
	// Default: step.BestImprovement.
	Step step.Func

	// LocalStop bounds each restart's Local Search polish; reset at the
	// start of every restart. Default: stopping.MaxIterations(200).
	LocalStop stopping.Criterion

	// Stop decides when the outer restart loop gives up, evaluated against
	// (restart index, best objective so far). Default:
	// stopping.MaxIterations(30).
	Stop stopping.Criterion

	// Seed seeds the run's own *rand.Rand.
	Seed int64
}

// DefaultOptions returns alpha=0.3, a=0.5, best-improvement local polish
// capped at 200 iterations per restart, and 30 restarts.
func DefaultOptions(neighborhoods []localsearch.Factory) Options {
	return Options{
		A:             0.5,
		Alpha:         0.3,
		Neighborhoods: neighborhoods,
		Step:          step.BestImprovement,
		LocalStop:     stopping.MaxIterations(200),
		Stop:          stopping.MaxIterations(30),
		Seed:          0,
	}
}

// Result reports a GRASP outcome.
type Result struct {
	Solution  *solution.Solution // best solution found
	Objective float64
	Restarts  int
	RunID     string
}

// Run repeats: construct a fresh randomized solution
// (construct.GRASPRandomized), polish it with Local Search using one
// neighborhood rotated by restart index, and keep the best objective seen
// (spec §4.11). ctx is checked once per restart for cooperative
// cancellation.
func Run(ctx context.Context, inst *instance.Instance, opts Options) (Result, error) {
	if len(opts.Neighborhoods) == 0 {
		return Result{}, ErrNoNeighborhoods
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	opts.Stop.Reset()

	var best *solution.Solution
	bestF := 0.0
	haveBest := false

	restart := 0
	for !opts.Stop.Check(restart, bestF) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		initial, err := construct.GRASPRandomized(inst, opts.A, opts.Alpha, rng)
		if err != nil {
			restart++
			continue
		}

		factory := opts.Neighborhoods[restart%len(opts.Neighborhoods)]
		opts.LocalStop.Reset()
		lsOpts := localsearch.Options{Step: opts.Step, Stop: opts.LocalStop, Seed: opts.Seed + int64(restart)}

		lsResult, err := localsearch.Run(inst, initial, factory, lsOpts)
		if err != nil {
			return Result{}, err
		}

		if !haveBest || lsResult.Objective < bestF {
			best, bestF, haveBest = lsResult.Solution, lsResult.Objective, true
		}

		restart++
	}

	if !haveBest {
		return Result{}, construct.ErrInfeasibleConstruction
	}

	return Result{Solution: best, Objective: bestF, Restarts: restart, RunID: uuid.NewString()}, nil
}
