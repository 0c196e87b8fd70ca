package neighborhood

import (
	"math/rand"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// IntraSwapNeighborhood swaps two node positions within a single route
// (spec §4.6's "intra-route swap"). The Go analogue of the source's
// IntraRouteNeighborhood.
type IntraSwapNeighborhood struct {
	inst *instance.Instance
	sol  *solution.Solution
}

// NewIntraSwap builds an IntraSwapNeighborhood over the given solution.
func NewIntraSwap(inst *instance.Instance, sol *solution.Solution) *IntraSwapNeighborhood {
	return &IntraSwapNeighborhood{inst: inst, sol: sol}
}

// Generate enumerates every (route, i, j) pair with i < j, matching the
// source's double loop (no l < k+1 branch, to avoid double-counting).
func (n *IntraSwapNeighborhood) Generate() []Move {
	var moves []Move
	for r, route := range n.sol.Routes {
		m := len(route)
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				moves = append(moves, IntraSwap{Route: r, I: i, J: j})
			}
		}
	}
	return moves
}

// GenerateRandom draws a random route and two distinct positions within it,
// retrying up to maxTriesRandom times until IsValid accepts the candidate.
func (n *IntraSwapNeighborhood) GenerateRandom(rng *rand.Rand) (Move, bool) {
	if len(n.sol.Routes) == 0 {
		return nil, false
	}
	for tries := 0; tries < maxTriesRandom; tries++ {
		r := rng.Intn(len(n.sol.Routes))
		m := len(n.sol.Routes[r])
		if m < 2 {
			continue
		}
		i, j := rng.Intn(m), rng.Intn(m)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		mv := IntraSwap{Route: r, I: i, J: j}
		if n.IsValid(mv) {
			return mv, true
		}
	}
	return nil, false
}

// IsValid swaps the two positions in a scratch copy and checks capacity
// and pickup-before-delivery precedence (the source checks capacity only;
// spec §9 mandates also checking precedence, since a pure swap can invert
// it).
func (n *IntraSwapNeighborhood) IsValid(mov Move) bool {
	mv, ok := mov.(IntraSwap)
	if !ok {
		return false
	}
	route := append([]int(nil), n.sol.Routes[mv.Route]...)
	route[mv.I], route[mv.J] = route[mv.J], route[mv.I]
	return solution.IsRouteFeasible(n.inst, route)
}

// CalcDelta computes the objective change from a four-edge local distance
// difference plus the configured fairness index's change (spec §4.6,
// §9's fairness-dispatch fix).
func (n *IntraSwapNeighborhood) CalcDelta(mov Move) (float64, error) {
	mv, ok := mov.(IntraSwap)
	if !ok {
		return 0, ErrWrongMoveKind
	}

	route := n.sol.Routes[mv.Route]
	dist := n.inst.Dist

	x, y := route[mv.I], route[mv.J]
	depot := 0
	A, B, C, D := depot, depot, depot, depot
	if mv.I > 0 {
		A = route[mv.I-1]
	}
	if mv.I+1 < len(route) {
		B = route[mv.I+1]
	}
	if mv.J > 0 {
		C = route[mv.J-1]
	}
	if mv.J+1 < len(route) {
		D = route[mv.J+1]
	}

	var deltaD float64
	if mv.J == mv.I+1 {
		deltaD = dist[A][y] + dist[y][x] + dist[x][D] - (dist[A][x] + dist[x][y] + dist[y][D])
	} else {
		deltaD = dist[A][y] + dist[y][B] + dist[C][x] + dist[x][D] - (dist[A][x] + dist[x][B] + dist[C][y] + dist[y][D])
	}

	dOld := n.sol.RoutesDistances[mv.Route]
	dNew := dOld + deltaD

	newDists := append([]float64(nil), n.sol.RoutesDistances...)
	newDists[mv.Route] = dNew

	fDelta, err := fairnessDelta(n.inst, n.sol.RoutesDistances, newDists)
	if err != nil {
		return 0, err
	}

	return deltaD + n.inst.Rho*fDelta, nil
}

// Apply swaps the two positions and returns a new Solution with cached
// totals recomputed from scratch.
func (n *IntraSwapNeighborhood) Apply(mov Move) (*solution.Solution, error) {
	mv, ok := mov.(IntraSwap)
	if !ok {
		return nil, ErrWrongMoveKind
	}
	next := n.sol.Clone()
	next.Routes[mv.Route][mv.I], next.Routes[mv.Route][mv.J] = next.Routes[mv.Route][mv.J], next.Routes[mv.Route][mv.I]
	next.Recompute(n.inst)
	return next, nil
}
