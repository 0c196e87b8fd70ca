// Package beam implements the width-bounded best-first route builder (spec
// §4.2): given a set of requests assigned to one vehicle, find a
// low-cost node sequence visiting every pickup and its delivery while
// respecting capacity. This is the expensive operation in the pipeline —
// every Encoding-to-Solution decode calls CreateTrackRoute once per
// vehicle.
package beam

import (
	"sort"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/objective"
)

// State is one partial route under construction. Route, Active and
// Remaining are copied (never shared) on every expansion, matching the
// std::vector copy-per-branch allocation profile of
// original_source/core/src/beam_search.cpp so the O(W·|R|²) complexity
// note in spec §4.2 holds.
type State struct {
	Cargo     int
	Score     float64
	Route     []int
	Active    []int // request IDs picked up but not yet delivered
	Remaining []int // request IDs not yet picked up
}

func (s State) terminal() bool {
	return len(s.Active) == 0 && len(s.Remaining) == 0
}

// sequentialFallback builds the naive "pick up all, then deliver all" route
// in input order, used when beam search finds no complete terminal state.
// The Go analogue of create_simple_sequential_route.
func sequentialFallback(inst *instance.Instance, requests []int) []int {
	route := make([]int, 0, 2*len(requests))
	for _, r := range requests {
		route = append(route, inst.PickupNode(r))
	}
	for _, r := range requests {
		route = append(route, inst.DeliveryNode(r))
	}
	return route
}

// CreateTrackRoute runs beam search with the given beamWidth over requests,
// one vehicle's worth of work, and returns the lowest-cost complete route
// found. Falls back to sequentialFallback if no terminal state is reached.
// Empty input returns an empty route (spec §4.2).
func CreateTrackRoute(inst *instance.Instance, beamWidth int, requests []int) []int {
	if len(requests) == 0 {
		return nil
	}

	beamStates := []State{{Remaining: append([]int(nil), requests...)}}
	maxSteps := 4 * len(requests)

	for step := 0; step < maxSteps; step++ {
		newBeam := make([]State, 0, len(beamStates)*(len(requests)+1))

		for _, st := range beamStates {
			if st.terminal() {
				newBeam = append(newBeam, st)
				continue
			}

			last := 0
			if len(st.Route) > 0 {
				last = st.Route[len(st.Route)-1]
			}

			for _, r := range st.Remaining {
				if st.Cargo+inst.Demands[r] > inst.C {
					continue
				}
				p := inst.PickupNode(r)

				newRoute := append(append([]int(nil), st.Route...), p)
				newActive := append(append([]int(nil), st.Active...), r)
				newRemaining := make([]int, 0, len(st.Remaining)-1)
				for _, x := range st.Remaining {
					if x != r {
						newRemaining = append(newRemaining, x)
					}
				}

				newBeam = append(newBeam, State{
					Cargo:     st.Cargo + inst.Demands[r],
					Score:     st.Score + inst.Dist[last][p],
					Route:     newRoute,
					Active:    newActive,
					Remaining: newRemaining,
				})
			}

			for _, r := range st.Active {
				d := inst.DeliveryNode(r)

				newRoute := append(append([]int(nil), st.Route...), d)
				newActive := make([]int, 0, len(st.Active)-1)
				for _, x := range st.Active {
					if x != r {
						newActive = append(newActive, x)
					}
				}

				newBeam = append(newBeam, State{
					Cargo:     st.Cargo - inst.Demands[r],
					Score:     st.Score + inst.Dist[last][d],
					Route:     newRoute,
					Active:    newActive,
					Remaining: append([]int(nil), st.Remaining...),
				})
			}
		}

		if len(newBeam) == 0 {
			break
		}

		sort.SliceStable(newBeam, func(i, j int) bool { return newBeam[i].Score < newBeam[j].Score })
		if len(newBeam) > beamWidth {
			newBeam = newBeam[:beamWidth]
		}
		beamStates = newBeam

		allComplete := true
		for _, st := range beamStates {
			if !st.terminal() {
				allComplete = false
				break
			}
		}
		if allComplete {
			break
		}
	}

	bestScore := -1.0
	var bestRoute []int
	found := false
	for _, st := range beamStates {
		if !st.terminal() {
			continue
		}
		d := objective.RouteDistance(inst, st.Route)
		if !found || d < bestScore {
			found = true
			bestScore = d
			bestRoute = st.Route
		}
	}

	if !found {
		return sequentialFallback(inst, requests)
	}
	return bestRoute
}
