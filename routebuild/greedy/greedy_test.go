package greedy_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/routebuild/greedy"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

func pairInstance(t *testing.T) *instance.Instance {
	t.Helper()
	coords := []instance.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 2, Y: 0},
		{X: 0, Y: 2},
	}
	inst, err := instance.NewInstance("pair", 2, 1, 10, 2, 0, instance.Jain, []int{3, 5}, coords)
	require.NoError(t, err)
	return inst
}

func TestBuildRouteGreedyIsFeasible(t *testing.T) {
	inst := pairInstance(t)
	route := greedy.BuildRouteGreedy(inst, []int{0, 1})
	require.Len(t, route, 4)
	require.True(t, solution.IsRouteFeasible(inst, route))
}

func TestBuildRouteRandomizedIsFeasible(t *testing.T) {
	inst := pairInstance(t)
	rng := rand.New(rand.NewSource(42))
	route := greedy.BuildRoute(inst, []int{0, 1}, false, 1.0, rng)
	require.Len(t, route, 4)
	require.True(t, solution.IsRouteFeasible(inst, route))
}

func TestBuildRouteEmptyRequestsIsEmpty(t *testing.T) {
	inst := pairInstance(t)
	route := greedy.BuildRouteGreedy(inst, nil)
	require.Empty(t, route)
}

func TestBuildRouteHighLambdaConvergesTowardGreedy(t *testing.T) {
	inst := pairInstance(t)
	rng := rand.New(rand.NewSource(1))
	route := greedy.BuildRoute(inst, []int{0, 1}, false, 1e6, rng)
	greedyRoute := greedy.BuildRouteGreedy(inst, []int{0, 1})
	require.Equal(t, greedyRoute, route)
}
