// Package greedy implements the iterative nearest-feasible route builder
// (spec §4.3) and the softmin sampler that turns it into the randomized
// constructor's per-route builder (spec §4.5's RC detail). The source
// shares one implementation between both uses
// (original_source/core/src/random.cpp), so this package does too.
package greedy

import (
	"math"
	"math/rand"
	"sort"

	"github.com/eser-chr/scdf-heuristics-core/instance"
)

// candidate is one node reachable from the current route tail: either an
// unpicked request's pickup (if it fits capacity) or an active request's
// delivery.
type candidate struct {
	req    int
	node   int
	dist   float64
	isPick bool
}

func collectCandidates(inst *instance.Instance, unpicked, active []int, last, cargo int) []candidate {
	out := make([]candidate, 0, len(unpicked)+len(active))
	for _, r := range unpicked {
		if cargo+inst.Demands[r] <= inst.C {
			p := inst.PickupNode(r)
			out = append(out, candidate{req: r, node: p, dist: inst.Dist[last][p], isPick: true})
		}
	}
	for _, r := range active {
		d := inst.DeliveryNode(r)
		out = append(out, candidate{req: r, node: d, dist: inst.Dist[last][d], isPick: false})
	}
	return out
}

// chooseCandidateIndex returns the index into cands to commit next. In
// greedy mode it's always the nearest; otherwise it softmin-samples from
// exp(-lambda*dist) weights over the distance-sorted candidates (larger
// lambda concentrates mass near the greedy choice). Mirrors random.cpp's
// choose_candidate_index.
func chooseCandidateIndex(cands []candidate, greedy bool, lambda float64, rng *rand.Rand) int {
	order := make([]int, len(cands))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return cands[order[a]].dist < cands[order[b]].dist })

	if greedy {
		return order[0]
	}

	weights := make([]float64, len(order))
	var total float64
	for i, idx := range order {
		w := math.Exp(-lambda * cands[idx].dist)
		weights[i] = w
		total += w
	}
	if total == 0 {
		return order[0] // every weight underflowed to zero: fall back to nearest
	}
	target := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if cum >= target {
			return order[i]
		}
	}
	return order[len(order)-1]
}

func nearestDeliveryFallback(inst *instance.Instance, active []int, last int) candidate {
	best := candidate{req: -1, node: -1, dist: math.Inf(1), isPick: false}
	for _, r := range active {
		d := inst.DeliveryNode(r)
		dist := inst.Dist[last][d]
		if dist < best.dist {
			best = candidate{req: r, node: d, dist: dist, isPick: false}
		}
	}
	return best
}

// BuildRoute builds one vehicle's route over reqs by repeatedly committing
// to the nearest feasible node (greedy=true) or softmin-sampling among
// feasible nodes (greedy=false, using lambda). rng is only consulted in
// randomized mode; pass nil for greedy mode. Mirrors random.cpp's
// build_route.
func BuildRoute(inst *instance.Instance, reqs []int, greedy bool, lambda float64, rng *rand.Rand) []int {
	unpicked := append([]int(nil), reqs...)
	var active []int
	route := make([]int, 0, 2*len(reqs))

	cargo := 0
	last := 0

	for len(unpicked) > 0 || len(active) > 0 {
		cands := collectCandidates(inst, unpicked, active, last, cargo)

		var choice candidate
		if len(cands) == 0 {
			choice = nearestDeliveryFallback(inst, active, last)
		} else {
			ci := chooseCandidateIndex(cands, greedy, lambda, rng)
			choice = cands[ci]
		}

		route = append(route, choice.node)

		if choice.isPick {
			cargo += inst.Demands[choice.req]
			active = append(active, choice.req)
			unpicked = removeValue(unpicked, choice.req)
		} else {
			cargo -= inst.Demands[choice.req]
			active = removeValue(active, choice.req)
		}

		last = choice.node
	}

	return route
}

// BuildRouteGreedy is BuildRoute in pure greedy mode, the direct analogue
// of construction.cpp's build_route_greedy.
func BuildRouteGreedy(inst *instance.Instance, reqs []int) []int {
	return BuildRoute(inst, reqs, true, 0, nil)
}

func removeValue(xs []int, v int) []int {
	out := xs[:0]
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
