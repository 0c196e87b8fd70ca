// Package objective computes route/solution metrics: per-route distance,
// cargo profiles, the three fairness indices, and the combined objective
// (spec §4.1). These are pure functions over instance.Instance and
// solution.Solution; nothing here mutates its arguments.
package objective

import (
	"errors"
	"math"

	"github.com/eser-chr/scdf-heuristics-core/instance"
)

// Numerical edge-case errors (spec §4.1, §7).
var (
	// ErrEmptyDistances indicates fairness was asked to evaluate zero routes.
	ErrEmptyDistances = errors.New("objective: empty distance list")

	// ErrJainZeroDenominator indicates Jain's denominator (nK * sum of squares)
	// was zero — only possible when every route distance is zero.
	ErrJainZeroDenominator = errors.New("objective: zero denominator in Jain fairness")

	// ErrUnknownFairness indicates an Instance carries an unrecognized
	// FairnessKind (should not happen for a validated Instance).
	ErrUnknownFairness = errors.New("objective: unknown fairness kind")
)

// round1e9 stabilizes floating accumulation the way the teacher's tsp
// package does (tsp/utils.go round1e9), so repeated delta/recompute
// comparisons in tests don't flake on platform-dependent FP drift.
func round1e9(x float64) float64 {
	const scale = 1e9
	return math.Round(x*scale) / scale
}

// RouteDistance returns the closed-tour distance depot -> route[0] -> ... ->
// route[-1] -> depot. An empty route has distance 0 (spec §4.2: "Empty input
// returns empty sequence").
func RouteDistance(inst *instance.Instance, route []int) float64 {
	if len(route) == 0 {
		return 0
	}
	d := inst.Dist[0][route[0]]
	for i := 0; i+1 < len(route); i++ {
		d += inst.Dist[route[i]][route[i+1]]
	}
	d += inst.Dist[route[len(route)-1]][0]
	return round1e9(d)
}

// AllRouteDistances returns RouteDistance for every route in routes, in order.
func AllRouteDistances(inst *instance.Instance, routes [][]int) []float64 {
	out := make([]float64, len(routes))
	for i, r := range routes {
		out[i] = RouteDistance(inst, r)
	}
	return out
}

// CargoProfile returns the cumulative-load inclusive scan along route: for
// each position, the running load immediately after visiting that node. The
// Go analogue of original_source/core/src/utils.cpp's calc_route_cargo.
func CargoProfile(inst *instance.Instance, route []int) []int {
	out := make([]int, len(route))
	load := 0
	for i, node := range route {
		load += inst.LoadChange[node]
		out[i] = load
	}
	return out
}

// JainFairness computes (Σd)^2 / (nK * Σd^2). Returns ErrEmptyDistances if
// dists is empty, ErrJainZeroDenominator if every distance is zero (spec
// §4.1 edge case).
func JainFairness(nK int, dists []float64) (float64, error) {
	if len(dists) == 0 {
		return 0, ErrEmptyDistances
	}
	var sum, sqSum float64
	for _, d := range dists {
		sum += d
		sqSum += d * d
	}
	den := float64(nK) * sqSum
	if den == 0 {
		return 0, ErrJainZeroDenominator
	}
	return (sum * sum) / den, nil
}

// MaxMinFairness computes min(d)/max(d). Returns ErrEmptyDistances if dists
// is empty. If max==0 (every distance zero), fairness is defined as 1 (spec
// §4.1 edge case), not an error.
func MaxMinFairness(dists []float64) (float64, error) {
	if len(dists) == 0 {
		return 0, ErrEmptyDistances
	}
	min, max := dists[0], dists[0]
	for _, d := range dists[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	if max == 0 {
		return 1, nil
	}
	return min / max, nil
}

// GiniCoefficient computes 1 - (Σ_{i<j} |d_i - d_j|) / Σd. Returns
// ErrEmptyDistances if dists is empty.
func GiniCoefficient(dists []float64) (float64, error) {
	if len(dists) == 0 {
		return 0, ErrEmptyDistances
	}
	var nominator, denominator float64
	for i := range dists {
		denominator += dists[i]
		for j := i + 1; j < len(dists); j++ {
			diff := dists[i] - dists[j]
			if diff < 0 {
				diff = -diff
			}
			nominator += diff
		}
	}
	if denominator == 0 {
		// Every route distance is zero: no inequality to speak of, perfectly fair.
		return 1, nil
	}
	return 1 - nominator/denominator, nil
}

// Fairness dispatches on kind to the matching fairness function.
func Fairness(kind instance.FairnessKind, nK int, dists []float64) (float64, error) {
	switch kind {
	case instance.Jain:
		return JainFairness(nK, dists)
	case instance.Gini:
		return GiniCoefficient(dists)
	case instance.MaxMin:
		return MaxMinFairness(dists)
	default:
		return 0, ErrUnknownFairness
	}
}

// Value computes sum_dist + rho * (1 - fairness) for the given route
// distances, matching spec §4.1 exactly.
func Value(inst *instance.Instance, dists []float64) (float64, error) {
	var sum float64
	for _, d := range dists {
		sum += d
	}
	f, err := Fairness(inst.Fairness, inst.NK, dists)
	if err != nil {
		return 0, err
	}
	return round1e9(sum + inst.Rho*(1-f)), nil
}
