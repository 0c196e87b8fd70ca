// Package instance defines the immutable problem data for the Selective
// Pickup-and-Delivery Problem with Fairness (SPDPF): the request set, vehicle
// fleet, capacity, minimum-service target, and fairness configuration, plus
// the precomputed distance matrix shared by every downstream package.
//
// Node numbering (fixed for the life of an Instance):
//
//	0           depot
//	1..n        pickup nodes, one per request
//	n+1..2n     delivery nodes, one per request
//
// Design goals, matching the rest of this module:
//   - Strict sentinel errors; no fmt.Errorf where a sentinel suffices.
//   - Immutable after construction: NewInstance validates and returns a value
//     that every other package can treat as read-only for the life of a solve.
//   - Zero surprises: Validate() mirrors the original C++ loader's checks
//     (original_source/core/src/instance.cpp, is_instance_correct) field for
//     field, so behavior on malformed input is unsurprising to a reader who
//     knows the source this was distilled from.
package instance

import (
	"errors"
	"math"
)

// Validation / shape errors, fail-fast at construction time (spec §7).
var (
	// ErrNonPositiveSize indicates n, nK, C or gamma was <= 0.
	ErrNonPositiveSize = errors.New("instance: non-positive size parameter")

	// ErrSizeMismatch indicates demands/coords/dist do not match the expected
	// dimensions implied by n.
	ErrSizeMismatch = errors.New("instance: dimension mismatch")

	// ErrDemandExceedsCapacity indicates some demand is <= 0 or > C.
	ErrDemandExceedsCapacity = errors.New("instance: demand out of (0, C] range")

	// ErrGammaExceedsN indicates gamma > n.
	ErrGammaExceedsN = errors.New("instance: gamma exceeds n")

	// ErrVehiclesExceedRequests indicates nK > n.
	ErrVehiclesExceedRequests = errors.New("instance: nK exceeds n")

	// ErrNonFiniteCoordinate indicates a coordinate is NaN or +-Inf.
	ErrNonFiniteCoordinate = errors.New("instance: non-finite coordinate")

	// ErrNonZeroDiagonal indicates dist[u][u] != 0 for some u.
	ErrNonZeroDiagonal = errors.New("instance: non-zero self-distance")

	// ErrNegativeDistance indicates some dist[u][v] < 0.
	ErrNegativeDistance = errors.New("instance: negative distance")

	// ErrAsymmetricDistance indicates dist[u][v] != dist[v][u].
	ErrAsymmetricDistance = errors.New("instance: asymmetric distance matrix")

	// ErrUnknownFairness indicates an unrecognized FairnessKind value.
	ErrUnknownFairness = errors.New("instance: unknown fairness kind")
)

// FairnessKind selects the fairness index used in the objective (spec §4.1).
// This replaces the original C++ source's raw std::string "fairness" field
// (structures.hpp) with a closed, typed enum — see DESIGN.md for the
// reasoning.
type FairnessKind int

const (
	// Jain selects the Jain fairness index: (Σd)² / (nK · Σd²).
	Jain FairnessKind = iota
	// Gini selects 1 minus the normalized mean absolute difference.
	Gini
	// MaxMin selects min(d)/max(d).
	MaxMin
)

// String renders the FairnessKind using the original source's textual names,
// so external loaders/writers that speak the "jain"/"gini"/"maxmin" file
// vocabulary (spec §6) can round-trip through this type.
func (f FairnessKind) String() string {
	switch f {
	case Jain:
		return "jain"
	case Gini:
		return "gini"
	case MaxMin:
		return "maxmin"
	default:
		return "unknown"
	}
}

// ParseFairnessKind parses the textual instance-file vocabulary into a
// FairnessKind. Intended for use by an external instance-file loader (out of
// scope for this module, spec §6) rather than by solver code itself.
func ParseFairnessKind(s string) (FairnessKind, error) {
	switch s {
	case "jain":
		return Jain, nil
	case "gini":
		return Gini, nil
	case "maxmin":
		return MaxMin, nil
	default:
		return 0, ErrUnknownFairness
	}
}

// Point is a 2D Euclidean coordinate.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Instance holds the immutable problem data for one SPDPF solve (spec §3).
//
// Field naming tracks spec.md §3 exactly so a reader comparing this type
// against the specification does not need a mental renaming pass.
type Instance struct {
	// Name is carried through from an external loader for diagnostics only;
	// it has no effect on solving (spec §6's "line 1: instance name").
	Name string

	N       int          // number of candidate requests
	NK      int          // number of vehicles
	C       int          // shared vehicle capacity
	Gamma   int          // minimum number of requests that must be served
	Rho     float64      // fairness weight
	Fairness FairnessKind // selector in {Jain, Gini, MaxMin}

	Demands []int   // positive integer load of each request, size N
	Coords  []Point // size 2N+1: depot, then N pickups, then N deliveries

	// Dist is the precomputed (2N+1)x(2N+1) Euclidean distance matrix over
	// all nodes, symmetric with a zero diagonal.
	Dist [][]float64

	// RequestOfNode maps a node index to its request ID, or -1 for the depot.
	RequestOfNode []int

	// LoadChange is +demand at a pickup node, -demand at a delivery node, 0
	// at the depot.
	LoadChange []int
}

// PickupNode returns the pickup node index of request r.
func (inst *Instance) PickupNode(r int) int { return 1 + r }

// DeliveryNode returns the delivery node index of request r.
func (inst *Instance) DeliveryNode(r int) int { return 1 + inst.N + r }

// NumNodes returns the total node count (depot + pickups + deliveries).
func (inst *Instance) NumNodes() int { return 1 + 2*inst.N }

// NewInstance builds an Instance from already-parsed fields, computing the
// distance matrix, RequestOfNode and LoadChange, then validating the result.
// External loaders (out of scope here, spec §6) should call this after
// parsing the text format rather than constructing Instance by hand.
func NewInstance(name string, n, nK, c, gamma int, rho float64, fairness FairnessKind, demands []int, coords []Point) (*Instance, error) {
	inst := &Instance{
		Name:     name,
		N:        n,
		NK:       nK,
		C:        c,
		Gamma:    gamma,
		Rho:      rho,
		Fairness: fairness,
		Demands:  demands,
		Coords:   coords,
	}

	if err := inst.validateShape(); err != nil {
		return nil, err
	}

	inst.buildDerived()

	if err := inst.Validate(); err != nil {
		return nil, err
	}

	return inst, nil
}

// validateShape checks the cheap structural preconditions needed before
// buildDerived can safely index into Demands/Coords.
func (inst *Instance) validateShape() error {
	if inst.N <= 0 || inst.NK <= 0 || inst.C <= 0 || inst.Gamma <= 0 {
		return ErrNonPositiveSize
	}
	if len(inst.Demands) != inst.N {
		return ErrSizeMismatch
	}
	if len(inst.Coords) != inst.NumNodes() {
		return ErrSizeMismatch
	}
	return nil
}

// buildDerived computes Dist, RequestOfNode and LoadChange from Coords and
// Demands. Mirrors original_source/core/src/instance.cpp's load_from_file
// tail (the part after parsing) exactly.
func (inst *Instance) buildDerived() {
	nv := inst.NumNodes()

	dist := make([][]float64, nv)
	for u := range dist {
		dist[u] = make([]float64, nv)
	}
	for u := 0; u < nv; u++ {
		for v := u + 1; v < nv; v++ {
			d := inst.Coords[u].Dist(inst.Coords[v])
			dist[u][v] = d
			dist[v][u] = d
		}
	}
	inst.Dist = dist

	requestOfNode := make([]int, nv)
	loadChange := make([]int, nv)
	for i := range requestOfNode {
		requestOfNode[i] = -1
	}
	for r := 0; r < inst.N; r++ {
		p := inst.PickupNode(r)
		d := inst.DeliveryNode(r)
		requestOfNode[p] = r
		requestOfNode[d] = r
		loadChange[p] = inst.Demands[r]
		loadChange[d] = -inst.Demands[r]
	}
	inst.RequestOfNode = requestOfNode
	inst.LoadChange = loadChange
}
