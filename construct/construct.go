// Package construct implements the four initial-solution builders spec
// §4.5 names: Deterministic (DC), Randomized (RC), Beam (BS) and
// GRASPRandomized. Each selects which requests to serve, assigns them to
// vehicles, and builds each vehicle's route, returning a feasible
// solution.Solution (or ErrInfeasibleConstruction if gamma cannot be
// reached).
package construct

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/eser-chr/scdf-heuristics-core/cluster"
	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/routebuild/beam"
	"github.com/eser-chr/scdf-heuristics-core/routebuild/greedy"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// ErrInfeasibleConstruction indicates a constructor could not reach
// Instance.Gamma served requests (spec §7).
var ErrInfeasibleConstruction = errors.New("construct: unable to reach gamma served requests")

const (
	kmeansIters    = 20
	kmeansRestarts = 20
	graspMaxTries  = 100
)

// selectGammaByDemandDistance returns the gamma cheapest requests, ranked
// ascending by demand[r] * dist(pickup_r, delivery_r). Deterministic
// modulo ties, matching construction.cpp's select_gamma_requests.
func selectGammaByDemandDistance(inst *instance.Instance) []int {
	cost := make([]float64, inst.N)
	for r := 0; r < inst.N; r++ {
		cost[r] = float64(inst.Demands[r]) * inst.Dist[inst.PickupNode(r)][inst.DeliveryNode(r)]
	}
	order := argsort(cost)
	return order[:inst.Gamma]
}

func argsort(xs []float64) []int {
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return xs[order[i]] < xs[order[j]] })
	return order
}

// myMetric is the normalized distance/demand mixing metric used by the
// beam and GRASP constructors to rank requests (spec §4.5). Mirrors
// utils.cpp's calc_my_metric.
func myMetric(inst *instance.Instance, a float64) []float64 {
	solo := make([]float64, inst.N)
	maxDist := 0.0
	for r := 0; r < inst.N; r++ {
		s := inst.Dist[0][inst.PickupNode(r)] + inst.Dist[inst.PickupNode(r)][inst.DeliveryNode(r)] + inst.Dist[inst.DeliveryNode(r)][0]
		solo[r] = s
		if s > maxDist {
			maxDist = s
		}
	}
	maxDem := 0
	for _, d := range inst.Demands {
		if d > maxDem {
			maxDem = d
		}
	}
	if maxDist == 0 {
		maxDist = 1
	}
	if maxDem == 0 {
		maxDem = 1
	}

	costs := make([]float64, inst.N)
	for r := 0; r < inst.N; r++ {
		distNorm := solo[r] / maxDist
		demNorm := float64(inst.Demands[r]) / float64(maxDem)
		costs[r] = a*distNorm + (1-a)*demNorm
	}
	return costs
}

// assignPerVehicle buckets reqs into nK groups per assign[i] (the cluster
// of reqs[i]).
func assignPerVehicle(nK int, reqs, assign []int) [][]int {
	perVehicle := make([][]int, nK)
	for i, r := range reqs {
		k := assign[i]
		perVehicle[k] = append(perVehicle[k], r)
	}
	return perVehicle
}

func finish(inst *instance.Instance, routes [][]int) (*solution.Solution, error) {
	sol := solution.New(inst, routes)
	if len(sol.ServedRequests(inst)) < inst.Gamma {
		return nil, ErrInfeasibleConstruction
	}
	return sol, nil
}

// Deterministic builds the DC solution: select the gamma cheapest
// requests, balanced-k-means cluster them to vehicles, greedy-build each
// route. Deterministic modulo internal tie-breaks and the k-means
// restart shuffle (rng controls that shuffle; pass a fixed seed for full
// reproducibility).
func Deterministic(inst *instance.Instance, rng *rand.Rand) (*solution.Solution, error) {
	reqs := selectGammaByDemandDistance(inst)
	assign := cluster.BalancedKMeans(inst, reqs, kmeansIters, kmeansRestarts, rng)
	perVehicle := assignPerVehicle(inst.NK, reqs, assign)

	routes := make([][]int, inst.NK)
	for k := 0; k < inst.NK; k++ {
		routes[k] = greedy.BuildRouteGreedy(inst, perVehicle[k])
	}
	return finish(inst, routes)
}

// Randomized builds the RC solution: same request selection and
// clustering as Deterministic, but each route is built by the softmin
// sampler (routebuild/greedy.BuildRoute in randomized mode) with
// exploration parameter lambda.
func Randomized(inst *instance.Instance, lambda float64, rng *rand.Rand) (*solution.Solution, error) {
	reqs := selectGammaByDemandDistance(inst)
	assign := cluster.BalancedKMeans(inst, reqs, kmeansIters, kmeansRestarts, rng)
	perVehicle := assignPerVehicle(inst.NK, reqs, assign)

	routes := make([][]int, inst.NK)
	for k := 0; k < inst.NK; k++ {
		routes[k] = greedy.BuildRoute(inst, perVehicle[k], false, lambda, rng)
	}
	return finish(inst, routes)
}

// Beam builds the BS solution: rank requests by the myMetric(a) score,
// keep the gamma cheapest, deal them round-robin across vehicles (vehicle
// k gets positions k, k+nK, k+2nK, ...), then build each route by beam
// search with the given width.
func Beam(inst *instance.Instance, a float64, beamWidth int) (*solution.Solution, error) {
	costs := myMetric(inst, a)
	order := argsort(costs)
	toServe := order[:inst.Gamma]

	perVehicle := make([][]int, inst.NK)
	for idx, r := range toServe {
		k := idx % inst.NK
		perVehicle[k] = append(perVehicle[k], r)
	}

	routes := make([][]int, inst.NK)
	for k := 0; k < inst.NK; k++ {
		routes[k] = beam.CreateTrackRoute(inst, beamWidth, perVehicle[k])
	}
	return finish(inst, routes)
}

// GRASPRandomized builds a solution by ranking requests with myMetric(a),
// repeatedly drawing from a restricted candidate list (RCL) of size
// max(1, ceil(alpha*|remaining|)), and inserting the drawn request at a
// uniformly random vehicle and position, accepting only if capacity holds
// throughout. Up to graspMaxTries attempts per request; a request that
// never fits is skipped. Mirrors grasp.cpp's randomized_constructor_simple.
func GRASPRandomized(inst *instance.Instance, a, alpha float64, rng *rand.Rand) (*solution.Solution, error) {
	costs := myMetric(inst, a)
	perm := argsort(costs)

	routes := make([][]int, inst.NK)
	used := make([]bool, inst.N)
	served := 0

	for served < inst.Gamma {
		remaining := make([]int, 0, inst.N)
		for _, r := range perm {
			if !used[r] {
				remaining = append(remaining, r)
			}
		}
		if len(remaining) == 0 {
			break
		}

		k := int(math.Ceil(alpha * float64(len(remaining))))
		if k < 1 {
			k = 1
		}
		if k > len(remaining) {
			k = len(remaining)
		}

		req := remaining[rng.Intn(k)]
		used[req] = true

		pickup := inst.PickupNode(req)
		drop := inst.DeliveryNode(req)
		dem := inst.Demands[req]

		inserted := false
		for t := 0; t < graspMaxTries && !inserted; t++ {
			vk := rng.Intn(inst.NK)
			route := routes[vk]
			m := len(route)

			if m == 0 {
				if dem <= inst.C {
					routes[vk] = []int{pickup, drop}
					inserted = true
					served++
				}
				continue
			}

			ip := rng.Intn(m)
			jp := ip + 1 + rng.Intn(m-ip) // jp in [ip+1, m]

			newRoute := make([]int, 0, m+2)
			newRoute = append(newRoute, route[:ip]...)
			newRoute = append(newRoute, pickup)
			newRoute = append(newRoute, route[ip:jp]...)
			newRoute = append(newRoute, drop)
			newRoute = append(newRoute, route[jp:]...)

			if capacityHolds(inst, newRoute) {
				routes[vk] = newRoute
				inserted = true
				served++
			}
		}
	}

	return finish(inst, routes)
}

func capacityHolds(inst *instance.Instance, route []int) bool {
	load := 0
	for _, node := range route {
		load += inst.LoadChange[node]
		if load < 0 || load > inst.C {
			return false
		}
	}
	return true
}
