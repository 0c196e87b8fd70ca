package beam_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/routebuild/beam"
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

func TestCreateTrackRouteEmptyInput(t *testing.T) {
	inst := pairInstance(t)
	route := beam.CreateTrackRoute(inst, 5, nil)
	require.Empty(t, route)
}

func TestCreateTrackRouteIsFeasiblePermutation(t *testing.T) {
	inst := pairInstance(t)
	route := beam.CreateTrackRoute(inst, 4, []int{0, 1})

	require.Len(t, route, 4)
	require.True(t, solution.IsRouteFeasible(inst, route))

	expectedNodes := map[int]bool{
		inst.PickupNode(0): true, inst.DeliveryNode(0): true,
		inst.PickupNode(1): true, inst.DeliveryNode(1): true,
	}
	seen := map[int]bool{}
	for _, n := range route {
		require.True(t, expectedNodes[n])
		require.False(t, seen[n], "node %d visited twice", n)
		seen[n] = true
	}
}

func TestCreateTrackRouteNarrowBeamStillTerminates(t *testing.T) {
	inst := pairInstance(t)
	route := beam.CreateTrackRoute(inst, 1, []int{0, 1})
	require.Len(t, route, 4)
	require.True(t, solution.IsRouteFeasible(inst, route))
}
