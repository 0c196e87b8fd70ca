package encoding_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eser-chr/scdf-heuristics-core/encoding"
	"github.com/eser-chr/scdf-heuristics-core/instance"
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

func TestRoundTripServedRequestSet(t *testing.T) {
	inst := pairInstance(t)
	sol := solution.New(inst, [][]int{{1, 2, 3, 4}})
	require.NoError(t, sol.IsFeasible(inst))

	enc := encoding.New(inst, sol)
	require.True(t, enc.IsCorrect(inst))

	decoded := enc.Decode(inst, 4)
	require.Equal(t, sol.ServedRequests(inst), decoded.ServedRequests(inst))
}

func TestDecodeIsCached(t *testing.T) {
	inst := pairInstance(t)
	sol := solution.New(inst, [][]int{{1, 2, 3, 4}})
	enc := encoding.New(inst, sol)

	first := enc.Decode(inst, 4)
	second := enc.Decode(inst, 4)
	require.Same(t, first, second)

	enc.SetVehicleForRequest(0, 0)
	third := enc.Decode(inst, 4)
	require.NotSame(t, first, third)
}

func TestSetVehicleForRequestIsExclusive(t *testing.T) {
	inst := pairInstance(t)
	enc := encoding.Empty(inst)
	enc.SetVehicleForRequest(0, 0)
	require.Equal(t, []int{0}, enc.RequestsOfRoute(0))

	inst2, err := instance.NewInstance("two-vehicle", 2, 2, 10, 1, 0, instance.Jain, []int{3, 5}, []instance.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 0}, {X: 0, Y: 2},
	})
	require.NoError(t, err)
	enc2 := encoding.Empty(inst2)
	enc2.SetVehicleForRequest(0, 0)
	enc2.SetVehicleForRequest(1, 0) // reassigning must clear vehicle 0's column
	require.Empty(t, enc2.RequestsOfRoute(0))
	require.Equal(t, []int{0}, enc2.RequestsOfRoute(1))
}

func TestNonDeliveredRequests(t *testing.T) {
	inst := pairInstance(t)
	enc := encoding.Empty(inst)
	enc.SetVehicleForRequest(0, 0)
	require.Equal(t, []int{1}, enc.NonDeliveredRequests())
}

func TestAddInheritsBothAndFillsToGamma(t *testing.T) {
	inst, err := instance.NewInstance("three", 3, 1, 30, 2, 0, instance.Jain, []int{1, 1, 1}, make([]instance.Point, 7))
	require.NoError(t, err)

	a := encoding.Empty(inst)
	a.SetVehicleForRequest(0, 0)
	a.SetVehicleForRequest(0, 1)

	b := encoding.Empty(inst)
	b.SetVehicleForRequest(0, 0)
	b.SetVehicleForRequest(0, 2)

	rng := rand.New(rand.NewSource(5))
	offspring, err := encoding.Add(inst, a, b, rng)
	require.NoError(t, err)
	require.True(t, offspring.IsCorrect(inst))
	// request 0 is in both parents and must be inherited; gamma=2 total served.
	require.Equal(t, 2, offspring.TotalNumOfRequests())
	require.Contains(t, offspring.RequestsOfRoute(0), 0)
}

func TestAddRejectsDimensionMismatch(t *testing.T) {
	inst := pairInstance(t)
	other, err := instance.NewInstance("three", 3, 1, 30, 2, 0, instance.Jain, []int{1, 1, 1}, make([]instance.Point, 7))
	require.NoError(t, err)

	a := encoding.Empty(inst)
	b := encoding.Empty(other)
	_, err = encoding.Add(inst, a, b, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, encoding.ErrDimensionMismatch)
}

func TestCombineProducesCorrectEncoding(t *testing.T) {
	inst := pairInstance(t)
	a := encoding.Empty(inst)
	a.SetVehicleForRequest(0, 0)
	a.SetVehicleForRequest(0, 1)

	b := encoding.Empty(inst)
	b.SetVehicleForRequest(0, 0)
	b.SetVehicleForRequest(0, 1)

	rng := rand.New(rand.NewSource(2))
	offspring, err := encoding.Combine(a, b, rng)
	require.NoError(t, err)
	require.True(t, offspring.IsCorrect(inst))
}
