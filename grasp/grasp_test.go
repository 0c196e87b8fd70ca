package grasp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eser-chr/scdf-heuristics-core/grasp"
	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/localsearch"
	"github.com/eser-chr/scdf-heuristics-core/neighborhood"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

func pairInstance(t *testing.T) *instance.Instance {
	t.Helper()
	coords := []instance.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 1, Y: 1}, {X: 2, Y: 1},
	}
	inst, err := instance.NewInstance("pair", 2, 1, 10, 2, 0.5, instance.Jain, []int{2, 3}, coords)
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

func TestRunProducesFeasibleBestSolution(t *testing.T) {
	inst := pairInstance(t)
	opts := grasp.DefaultOptions(factories())

	result, err := grasp.Run(context.Background(), inst, opts)
	require.NoError(t, err)
	require.NoError(t, result.Solution.IsFeasible(inst))
	require.Equal(t, 30, result.Restarts)
	require.NotEmpty(t, result.RunID)
}

func TestRunRejectsEmptyNeighborhoodPool(t *testing.T) {
	inst := pairInstance(t)
	opts := grasp.DefaultOptions(nil)

	_, err := grasp.Run(context.Background(), inst, opts)
	require.ErrorIs(t, err, grasp.ErrNoNeighborhoods)
}

func TestRunRespectsCancelledContext(t *testing.T) {
	inst := pairInstance(t)
	opts := grasp.DefaultOptions(factories())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := grasp.Run(ctx, inst, opts)
	require.ErrorIs(t, err, context.Canceled)
}
