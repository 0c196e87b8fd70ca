package instance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eser-chr/scdf-heuristics-core/instance"
)

// trivialFixture builds the single-vehicle instance from spec.md §8 scenario 1:
// n=2, nK=1, C=10, gamma=2, rho=0, demands=[3,5].
func trivialFixture(t *testing.T) *instance.Instance {
	t.Helper()
	coords := []instance.Point{
		{X: 0, Y: 0}, // depot
		{X: 1, Y: 0}, // pickup 0
		{X: 0, Y: 1}, // pickup 1
		{X: 2, Y: 0}, // delivery 0
		{X: 0, Y: 2}, // delivery 1
	}
	inst, err := instance.NewInstance("trivial", 2, 1, 10, 2, 0, instance.Jain, []int{3, 5}, coords)
	require.NoError(t, err)
	return inst
}

func TestNewInstanceComputesDerivedFields(t *testing.T) {
	inst := trivialFixture(t)

	require.Len(t, inst.Dist, 5)
	require.Len(t, inst.RequestOfNode, 5)
	require.Equal(t, -1, inst.RequestOfNode[0])
	require.Equal(t, 0, inst.RequestOfNode[1])
	require.Equal(t, 1, inst.RequestOfNode[2])
	require.Equal(t, 0, inst.RequestOfNode[3])
	require.Equal(t, 1, inst.RequestOfNode[4])

	require.Equal(t, 3, inst.LoadChange[1])
	require.Equal(t, 5, inst.LoadChange[2])
	require.Equal(t, -3, inst.LoadChange[3])
	require.Equal(t, -5, inst.LoadChange[4])

	require.InDelta(t, inst.Dist[0][1], inst.Dist[1][0], 1e-12)
	require.InDelta(t, 0, inst.Dist[2][2], 1e-12)
}

func TestNewInstanceRejectsBadShape(t *testing.T) {
	_, err := instance.NewInstance("bad", 2, 1, 10, 2, 0, instance.Jain, []int{3}, nil)
	require.ErrorIs(t, err, instance.ErrSizeMismatch)

	_, err = instance.NewInstance("bad", 0, 1, 10, 2, 0, instance.Jain, nil, nil)
	require.ErrorIs(t, err, instance.ErrNonPositiveSize)
}

func TestNewInstanceRejectsDemandOverCapacity(t *testing.T) {
	coords := make([]instance.Point, 5)
	_, err := instance.NewInstance("bad", 2, 1, 4, 2, 0, instance.Jain, []int{3, 5}, coords)
	require.ErrorIs(t, err, instance.ErrDemandExceedsCapacity)
}

func TestNewInstanceRejectsGammaOverN(t *testing.T) {
	coords := make([]instance.Point, 5)
	_, err := instance.NewInstance("bad", 2, 1, 10, 3, 0, instance.Jain, []int{3, 5}, coords)
	require.ErrorIs(t, err, instance.ErrGammaExceedsN)
}

func TestFairnessKindRoundTrip(t *testing.T) {
	for _, k := range []instance.FairnessKind{instance.Jain, instance.Gini, instance.MaxMin} {
		parsed, err := instance.ParseFairnessKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	_, err := instance.ParseFairnessKind("nope")
	require.ErrorIs(t, err, instance.ErrUnknownFairness)
}
