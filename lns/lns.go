// Package lns implements Large Neighborhood Search (ruin and recreate)
// over an Encoding, spec §4.12.
package lns

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/eser-chr/scdf-heuristics-core/encoding"
	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/objective"
	"github.com/eser-chr/scdf-heuristics-core/routebuild/beam"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// ErrNonPositiveK indicates Options.K was <= 0.
var ErrNonPositiveK = errors.New("lns: K must be positive")

// Options configures one ruin-and-recreate run. Zero value is not
// meaningful; use DefaultOptions and override as needed.
type Options struct {
	// K is how many requests are ruined and recreated per outer iteration.
	K int

	// Iterations bounds the outer ruin/recreate loop. Default: 20.
	Iterations int

	// RemoveBeamWidth sizes the beam search used to cost candidate
	// removals. Default: 3.
	RemoveBeamWidth int

	// AppendBeamWidth sizes the beam search used to cost candidate
	// insertions. Default: 3.
	AppendBeamWidth int

	// DecodeBeamWidth sizes the beam search used for the final per-iteration
	// decode to a Solution. Default: 5.
	DecodeBeamWidth int
}

// DefaultOptions returns 20 iterations, beam widths of 3 for ruin/recreate
// costing and 5 for the final decode, with K left at the caller's
// responsibility to set (spec.md names no universal default for it).
func DefaultOptions(k int) Options {
	return Options{
		K:               k,
		Iterations:      20,
		RemoveBeamWidth: 3,
		AppendBeamWidth: 3,
		DecodeBeamWidth: 5,
	}
}

// Result reports a Large Neighborhood Search outcome.
type Result struct {
	Solution   *solution.Solution // best solution found
	Objective  float64
	Iterations int
	RunID      string
}

// requestPair mirrors LN::RequestPair: a candidate (request, vehicle, delta)
// triple produced by either a removal or an insertion evaluation.
type requestPair struct {
	request int
	vehicle int
	delta   float64
}

// findHeaviestRequestInRoute finds the request in vehicle's current route
// whose removal decreases that route's beam-rebuilt distance the most
// (spec §4.12 step 1). Returns request == -1 if vehicle serves at most one
// request (nothing useful to remove).
func findHeaviestRequestInRoute(inst *instance.Instance, enc *encoding.Encoding, vehicle, beamWidth int) requestPair {
	requests := enc.RequestsOfRoute(vehicle)
	if len(requests) <= 1 {
		return requestPair{request: -1, vehicle: vehicle}
	}

	route := beam.CreateTrackRoute(inst, beamWidth, requests)
	originalDistance := objective.RouteDistance(inst, route)

	bestDelta := math.Inf(1)
	bestRequest := -1
	for _, req := range requests {
		rest := make([]int, 0, len(requests)-1)
		for _, r := range requests {
			if r != req {
				rest = append(rest, r)
			}
		}
		newRoute := beam.CreateTrackRoute(inst, beamWidth, rest)
		delta := objective.RouteDistance(inst, newRoute) - originalDistance
		if delta < bestDelta {
			bestDelta = delta
			bestRequest = req
		}
	}

	return requestPair{request: bestRequest, vehicle: vehicle, delta: bestDelta}
}

// findBestRequestToAdd finds the non-served request whose insertion into
// vehicle's route increases that route's beam-rebuilt distance the least
// (spec §4.12 step 2).
func findBestRequestToAdd(inst *instance.Instance, enc *encoding.Encoding, vehicle, beamWidth int) requestPair {
	served := enc.RequestsOfRoute(vehicle)
	nonServed := enc.NonDeliveredRequests()

	route := beam.CreateTrackRoute(inst, beamWidth, served)
	originalDistance := objective.RouteDistance(inst, route)

	bestDelta := math.Inf(1)
	bestRequest := -1
	for _, req := range nonServed {
		candidate := append(append([]int(nil), served...), req)
		newRoute := beam.CreateTrackRoute(inst, beamWidth, candidate)
		delta := objective.RouteDistance(inst, newRoute) - originalDistance
		if delta < bestDelta {
			bestDelta = delta
			bestRequest = req
		}
	}

	return requestPair{request: bestRequest, vehicle: vehicle, delta: bestDelta}
}

// removeRequests ruins k requests from enc, repeating the per-vehicle
// heaviest-removal scan until k are removed or no vehicle has anything left
// worth removing (spec §4.12 step 1).
func removeRequests(inst *instance.Instance, enc *encoding.Encoding, k, beamWidth int) *encoding.Encoding {
	current := enc.Clone()
	removed := 0
	for removed < k {
		var candidates []requestPair
		for v := 0; v < inst.NK; v++ {
			cand := findHeaviestRequestInRoute(inst, current, v, beamWidth)
			if cand.request == -1 {
				continue
			}
			candidates = append(candidates, cand)
		}
		if len(candidates) == 0 {
			break
		}

		remaining := k - removed
		if remaining < len(candidates) {
			sort.Slice(candidates, func(i, j int) bool { return candidates[i].delta < candidates[j].delta })
			candidates = candidates[:remaining]
		}

		for _, cand := range candidates {
			current.SetVehicleForRequest(-1, cand.request)
		}
		removed += len(candidates)
	}
	return current
}

// appendRequests recreates k requests into enc: floor(k/nK) full rounds of
// one best-insertion pick per vehicle, then a final partial round keeping
// the k mod nK best candidates (spec §4.12 step 2). The picks of a round are
// all evaluated against the same encoding; a vehicle whose pick was already
// taken by an earlier vehicle of that round picks again against the updated
// encoding, so two vehicles never claim the same request.
func appendRequests(inst *instance.Instance, enc *encoding.Encoding, k, beamWidth int) *encoding.Encoding {
	current := enc.Clone()
	fullRounds := k / inst.NK
	remainder := k % inst.NK

	for iter := 0; iter < fullRounds; iter++ {
		var toAppend []requestPair
		for v := 0; v < inst.NK; v++ {
			toAppend = append(toAppend, findBestRequestToAdd(inst, current, v, beamWidth))
		}
		taken := make(map[int]bool)
		for _, cand := range toAppend {
			if taken[cand.request] {
				cand = findBestRequestToAdd(inst, current, cand.vehicle, beamWidth)
			}
			if cand.request == -1 {
				continue
			}
			current.SetVehicleForRequest(cand.vehicle, cand.request)
			taken[cand.request] = true
		}
	}

	if remainder > 0 {
		var toAppend []requestPair
		for v := 0; v < inst.NK; v++ {
			toAppend = append(toAppend, findBestRequestToAdd(inst, current, v, beamWidth))
		}
		sort.Slice(toAppend, func(i, j int) bool { return toAppend[i].delta < toAppend[j].delta })
		if remainder < len(toAppend) {
			toAppend = toAppend[:remainder]
		}
		taken := make(map[int]bool)
		for _, cand := range toAppend {
			if taken[cand.request] {
				cand = findBestRequestToAdd(inst, current, cand.vehicle, beamWidth)
			}
			if cand.request == -1 {
				continue
			}
			current.SetVehicleForRequest(cand.vehicle, cand.request)
			taken[cand.request] = true
		}
	}

	return current
}

// Run repeatedly ruins and recreates K requests of initial, decoding and
// tracking the best objective seen across Options.Iterations rounds (spec
// §4.12). Unlike grasp.Run, the working encoding is never reset to the
// champion between iterations — it carries forward continuously, matching
// the source's large_neighborhood loop. ctx is checked once per iteration
// for cooperative cancellation.
func Run(ctx context.Context, inst *instance.Instance, initial *encoding.Encoding, opts Options) (Result, error) {
	if opts.K <= 0 {
		return Result{}, ErrNonPositiveK
	}

	current := initial.Clone()

	bestSol := current.Decode(inst, opts.DecodeBeamWidth)
	bestF, err := bestSol.Objective(inst)
	if err != nil {
		return Result{}, err
	}

	iter := 0
	for ; iter < opts.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		current = removeRequests(inst, current, opts.K, opts.RemoveBeamWidth)
		current = appendRequests(inst, current, opts.K, opts.AppendBeamWidth)

		candidate := current.Decode(inst, opts.DecodeBeamWidth)
		candidateF, err := candidate.Objective(inst)
		if err != nil {
			return Result{}, err
		}

		if candidateF < bestF {
			bestF = candidateF
			bestSol = candidate
		}
	}

	return Result{Solution: bestSol, Objective: bestF, Iterations: iter, RunID: uuid.NewString()}, nil
}
