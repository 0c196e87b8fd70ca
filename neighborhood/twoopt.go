package neighborhood

import (
	"math/rand"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// TwoOptNeighborhood reverses a sub-sequence of a route (spec §4.6's
// "2-opt"). The Go analogue of the source's TwoOptNeighborhood.
type TwoOptNeighborhood struct {
	inst *instance.Instance
	sol  *solution.Solution
}

// NewTwoOpt builds a TwoOptNeighborhood over the given solution.
func NewTwoOpt(inst *instance.Instance, sol *solution.Solution) *TwoOptNeighborhood {
	return &TwoOptNeighborhood{inst: inst, sol: sol}
}

// Generate enumerates every (route, i, j) pair with j - i >= 2.
func (n *TwoOptNeighborhood) Generate() []Move {
	var moves []Move
	for r, route := range n.sol.Routes {
		m := len(route)
		for i := 0; i < m; i++ {
			for j := i + 2; j < m; j++ {
				moves = append(moves, TwoOpt{Route: r, I: i, J: j})
			}
		}
	}
	return moves
}

// GenerateRandom draws a random route and a random (i, j) with j-i >= 2,
// retrying until IsValid accepts a candidate or maxTriesRandom is spent.
func (n *TwoOptNeighborhood) GenerateRandom(rng *rand.Rand) (Move, bool) {
	if len(n.sol.Routes) == 0 {
		return nil, false
	}
	for tries := 0; tries < maxTriesRandom; tries++ {
		r := rng.Intn(len(n.sol.Routes))
		m := len(n.sol.Routes[r])
		if m < 4 {
			continue
		}
		i, j := rng.Intn(m), rng.Intn(m)
		if i > j {
			i, j = j, i
		}
		if j-i < 2 {
			continue
		}
		mv := TwoOpt{Route: r, I: i, J: j}
		if n.IsValid(mv) {
			return mv, true
		}
	}
	return nil, false
}

func reversed(route []int, i, j int) []int {
	out := append([]int(nil), route...)
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}

// IsValid reverses route[i..j] in a scratch copy and checks both capacity
// and pickup-before-delivery precedence, since reversal can invert
// precedence (spec §4.6).
func (n *TwoOptNeighborhood) IsValid(mov Move) bool {
	mv, ok := mov.(TwoOpt)
	if !ok {
		return false
	}
	route := reversed(n.sol.Routes[mv.Route], mv.I, mv.J)
	return solution.IsRouteFeasible(n.inst, route)
}

// CalcDelta removes edges (A,x) and (y,B) and adds (A,y) and (x,B), where
// x = route[i], y = route[j], depot substituted at the route's ends (spec
// §4.6).
func (n *TwoOptNeighborhood) CalcDelta(mov Move) (float64, error) {
	mv, ok := mov.(TwoOpt)
	if !ok {
		return 0, ErrWrongMoveKind
	}

	route := n.sol.Routes[mv.Route]
	dist := n.inst.Dist

	x, y := route[mv.I], route[mv.J]
	depot := 0
	A, B := depot, depot
	if mv.I > 0 {
		A = route[mv.I-1]
	}
	if mv.J+1 < len(route) {
		B = route[mv.J+1]
	}

	deltaD := dist[A][y] + dist[x][B] - dist[A][x] - dist[y][B]

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

// Apply reverses route[i..j] and returns a new Solution with cached
// totals recomputed from scratch.
func (n *TwoOptNeighborhood) Apply(mov Move) (*solution.Solution, error) {
	mv, ok := mov.(TwoOpt)
	if !ok {
		return nil, ErrWrongMoveKind
	}
	next := n.sol.Clone()
	next.Routes[mv.Route] = reversed(next.Routes[mv.Route], mv.I, mv.J)
	next.Recompute(n.inst)
	return next, nil
}
