package localsearch

import (
	"github.com/google/uuid"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// improvementEps is the minimum objective decrease VND treats as a real
// improvement (guards against floating-point noise resetting the index
// forever).
const improvementEps = 1e-9

// RunVND drives Variable Neighborhood Descent: it runs Local Search to
// convergence within factories[i]; if that improved the solution it
// restarts at factories[0], otherwise it advances to factories[i+1]. It
// stops once i passes the last factory (spec §4.9's VND).
func RunVND(inst *instance.Instance, initial *solution.Solution, factories []Factory, opts Options) (Result, error) {
	current := initial
	f, err := current.Objective(inst)
	if err != nil {
		return Result{}, err
	}

	totalIterations := 0
	i := 0
	for i < len(factories) {
		lsOpts := opts
		lsOpts.Seed = opts.Seed + int64(i)

		lsResult, err := Run(inst, current, factories[i], lsOpts)
		if err != nil {
			return Result{}, err
		}
		totalIterations += lsResult.Iterations

		if lsResult.Objective < f-improvementEps {
			current = lsResult.Solution
			f = lsResult.Objective
			i = 0
			continue
		}
		i++
	}

	return Result{Solution: current, Objective: f, Iterations: totalIterations, RunID: uuid.NewString()}, nil
}
