package objective_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/objective"
)

func TestJainFairnessPerfectEquality(t *testing.T) {
	f, err := objective.JainFairness(2, []float64{5, 5})
	require.NoError(t, err)
	require.InDelta(t, 1.0, f, 1e-9)
}

func TestJainFairnessEmptyErrors(t *testing.T) {
	_, err := objective.JainFairness(1, nil)
	require.ErrorIs(t, err, objective.ErrEmptyDistances)
}

func TestJainFairnessZeroDenominator(t *testing.T) {
	_, err := objective.JainFairness(2, []float64{0, 0})
	require.ErrorIs(t, err, objective.ErrJainZeroDenominator)
}

func TestMaxMinFairnessZeroMaxIsPerfect(t *testing.T) {
	f, err := objective.MaxMinFairness([]float64{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 1.0, f)
}

func TestMaxMinFairnessAsymmetric(t *testing.T) {
	f, err := objective.MaxMinFairness([]float64{2, 10})
	require.NoError(t, err)
	require.InDelta(t, 0.2, f, 1e-9)
}

func TestGiniCoefficientPerfectEquality(t *testing.T) {
	g, err := objective.GiniCoefficient([]float64{4, 4, 4})
	require.NoError(t, err)
	require.InDelta(t, 1.0, g, 1e-9)
}

func TestGiniCoefficientInequality(t *testing.T) {
	g, err := objective.GiniCoefficient([]float64{0, 10})
	require.NoError(t, err)
	require.InDelta(t, 0.0, g, 1e-9)
}

func TestRouteDistanceEmptyIsZero(t *testing.T) {
	inst := smallInstance(t)
	require.Equal(t, 0.0, objective.RouteDistance(inst, nil))
}

func TestRouteDistanceClosedTour(t *testing.T) {
	inst := smallInstance(t)
	// pickup 0 (node 1) then delivery 0 (node 3): depot(0,0)->(1,0)->(2,0)->depot
	d := objective.RouteDistance(inst, []int{1, 3})
	require.InDelta(t, 4.0, d, 1e-9)
}

func TestCargoProfile(t *testing.T) {
	inst := smallInstance(t)
	cargo := objective.CargoProfile(inst, []int{1, 3})
	require.Equal(t, []int{3, 0}, cargo)
}

func TestValueSingleVehicleFairnessIsOne(t *testing.T) {
	inst := smallInstance(t)
	dists := objective.AllRouteDistances(inst, [][]int{{1, 3}})
	v, err := objective.Value(inst, dists)
	require.NoError(t, err)
	require.InDelta(t, dists[0], v, 1e-9) // rho=0 here so fairness term vanishes
}

// smallInstance mirrors spec.md §8 scenario 1, but only request 0 is used by
// tests in this file (RouteDistance/CargoProfile only need a valid matrix).
func smallInstance(t *testing.T) *instance.Instance {
	t.Helper()
	coords := []instance.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 2, Y: 0},
		{X: 0, Y: 2},
	}
	inst, err := instance.NewInstance("small", 2, 1, 10, 2, 0, instance.Jain, []int{3, 5}, coords)
	require.NoError(t, err)
	return inst
}
