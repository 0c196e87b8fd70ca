// Package neighborhood implements the three move kinds spec §4.6 names:
// intra-route swap, request relocation and 2-opt, each exposing Generate,
// GenerateRandom, IsValid, CalcDelta and Apply over a fixed
// (Instance, Solution) pair. See move.go for the move payload types and
// doc.go / SPEC_FULL.md §9 for which known source bugs are fixed here
// versus preserved.
package neighborhood

import (
	"errors"
	"math/rand"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/objective"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// maxTriesRandom bounds GenerateRandom's rejection sampling, matching the
// source's Neighborhood::MAX_TRIES_RANDOM.
const maxTriesRandom = 100

// ErrNoCandidateMove names the case where GenerateRandom exhausts
// maxTriesRandom without finding any valid candidate. GenerateRandom itself
// reports that case by returning false; no function in this package returns
// this error.
var ErrNoCandidateMove = errors.New("neighborhood: no candidate move found")

// ErrWrongMoveKind indicates a Move of the wrong concrete type was passed
// to a Neighborhood that does not produce that kind.
var ErrWrongMoveKind = errors.New("neighborhood: move kind does not match neighborhood")

// Neighborhood is the common capability trait every move kind implements
// (spec §9's "neighborhood polymorphism" design note: a flat enum with
// per-variant payload rather than a deep class hierarchy).
type Neighborhood interface {
	// Generate enumerates every move reachable from the current solution.
	Generate() []Move

	// GenerateRandom draws one uniformly-random candidate, retrying up to
	// maxTriesRandom times to find one that IsValid accepts.
	GenerateRandom(rng *rand.Rand) (Move, bool)

	// IsValid reports whether applying mov would yield a feasible solution.
	IsValid(mov Move) bool

	// CalcDelta returns the change in objective value implied by mov,
	// without constructing the transformed solution.
	CalcDelta(mov Move) (float64, error)

	// Apply returns the transformed solution with caches refreshed.
	Apply(mov Move) (*solution.Solution, error)
}

// fairnessDelta computes fairness(oldDists) - fairness(newDists) under
// inst's configured fairness kind. Every neighborhood in this package
// dispatches through this helper rather than hard-coding Jain, fixing the
// source's IntraRouteNeighborhood::calc_delta bug (spec §9: "always used
// Jain fairness regardless of Instance.fairness").
func fairnessDelta(inst *instance.Instance, oldDists, newDists []float64) (float64, error) {
	fOld, err := objective.Fairness(inst.Fairness, inst.NK, oldDists)
	if err != nil {
		return 0, err
	}
	fNew, err := objective.Fairness(inst.Fairness, inst.NK, newDists)
	if err != nil {
		return 0, err
	}
	return fOld - fNew, nil
}
