package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eser-chr/scdf-heuristics-core/anneal"
	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/localsearch"
	"github.com/eser-chr/scdf-heuristics-core/neighborhood"
	"github.com/eser-chr/scdf-heuristics-core/solution"
	"github.com/eser-chr/scdf-heuristics-core/solve"
	"github.com/eser-chr/scdf-heuristics-core/stopping"
)

func fourRequestTwoVehicleInstance(t *testing.T) *instance.Instance {
	t.Helper()
	coords := make([]instance.Point, 9)
	coords[0] = instance.Point{X: 0, Y: 0}
	coords[1] = instance.Point{X: 1, Y: 0}
	coords[2] = instance.Point{X: 2, Y: 0}
	coords[3] = instance.Point{X: 3, Y: 0}
	coords[4] = instance.Point{X: 4, Y: 0}
	coords[5] = instance.Point{X: 1, Y: 1}
	coords[6] = instance.Point{X: 2, Y: 1}
	coords[7] = instance.Point{X: 3, Y: 1}
	coords[8] = instance.Point{X: 4, Y: 1}
	inst, err := instance.NewInstance("solve-four", 4, 2, 10, 4, 0, instance.Jain, []int{1, 1, 1, 1}, coords)
	require.NoError(t, err)
	return inst
}

func factories() []localsearch.Factory {
	return []localsearch.Factory{
		func(inst *instance.Instance, sol *solution.Solution) neighborhood.Neighborhood {
			return neighborhood.NewTwoOpt(inst, sol)
		},
		func(inst *instance.Instance, sol *solution.Solution) neighborhood.Neighborhood {
			return neighborhood.NewIntraSwap(inst, sol)
		},
	}
}

func TestSolveConstructionOnly(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()

	sol, err := solve.Solve(context.Background(), inst, opts)
	require.NoError(t, err)
	require.NoError(t, sol.IsFeasible(inst))
}

func TestSolveLocalSearch(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Metaheuristic = solve.LocalSearch
	opts.Neighborhoods = factories()

	sol, err := solve.Solve(context.Background(), inst, opts)
	require.NoError(t, err)
	require.NoError(t, sol.IsFeasible(inst))
}

func TestSolveLocalSearchRejectsEmptyNeighborhoods(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Metaheuristic = solve.LocalSearch

	_, err := solve.Solve(context.Background(), inst, opts)
	require.ErrorIs(t, err, solve.ErrNoNeighborhoods)
}

func TestSolveVND(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Metaheuristic = solve.VND
	opts.Neighborhoods = factories()

	sol, err := solve.Solve(context.Background(), inst, opts)
	require.NoError(t, err)
	require.NoError(t, sol.IsFeasible(inst))
}

func TestSolveSimulatedAnnealing(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Metaheuristic = solve.SimulatedAnnealing
	opts.Anneal = anneal.DefaultOptions(factories())
	opts.Anneal.Stop = stopping.MaxIterations(50)

	sol, err := solve.Solve(context.Background(), inst, opts)
	require.NoError(t, err)
	require.NoError(t, sol.IsFeasible(inst))
}

func TestSolveGRASP(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Metaheuristic = solve.GRASPMetaheuristic
	opts.Neighborhoods = factories()

	sol, err := solve.Solve(context.Background(), inst, opts)
	require.NoError(t, err)
	require.NoError(t, sol.IsFeasible(inst))
}

func TestSolveLargeNeighborhood(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Metaheuristic = solve.LargeNeighborhood
	opts.LNS.K = 2
	opts.LNS.Iterations = 3
	opts.LNS.RemoveBeamWidth = 3
	opts.LNS.AppendBeamWidth = 3

	sol, err := solve.Solve(context.Background(), inst, opts)
	require.NoError(t, err)
	require.NoError(t, sol.IsFeasible(inst))
}

func TestSolveGenetic(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Metaheuristic = solve.Genetic
	opts.Genetic.PopulationSize = 4
	opts.Genetic.Generations = 2

	sol, err := solve.Solve(context.Background(), inst, opts)
	require.NoError(t, err)
	require.NoError(t, sol.IsFeasible(inst))
}

func TestSolveRejectsUnsupportedMetaheuristic(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Metaheuristic = solve.Metaheuristic(99)

	_, err := solve.Solve(context.Background(), inst, opts)
	require.ErrorIs(t, err, solve.ErrUnsupportedMetaheuristic)
}

func TestSolveRejectsUnsupportedConstruction(t *testing.T) {
	inst := fourRequestTwoVehicleInstance(t)
	opts := solve.DefaultOptions()
	opts.Construction = solve.Construction(99)

	_, err := solve.Solve(context.Background(), inst, opts)
	require.ErrorIs(t, err, solve.ErrUnsupportedConstruction)
}
