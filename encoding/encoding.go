// Package encoding implements the boolean vehicle×request assignment
// matrix (spec §4.6's "Encoding" glossary entry, §4.13's GA representation,
// and §4.14's LN representation): which vehicle, if any, serves each
// request. Decoding to a Solution is expensive (one beam search per
// vehicle), so Encoding lazily caches its decoded Solution and invalidates
// the cache on every mutation.
package encoding

import (
	"errors"
	"math/rand"

	"github.com/eser-chr/scdf-heuristics-core/instance"
	"github.com/eser-chr/scdf-heuristics-core/routebuild/beam"
	"github.com/eser-chr/scdf-heuristics-core/solution"
)

// ErrDimensionMismatch indicates two Encodings being combined disagree on
// vehicle or request count.
var ErrDimensionMismatch = errors.New("encoding: dimension mismatch between encodings")

// Encoding is a nK x n boolean matrix: dna[k][r] is true iff vehicle k
// serves request r. Each column has at most one true entry.
type Encoding struct {
	dna    [][]bool
	cached *solution.Solution
}

// New builds an Encoding from sol's routes: for every node in every route
// that is a pickup node (node <= n), mark that request assigned to that
// vehicle. Mirrors encoding.cpp's Encoding(Instance, Solution) constructor.
func New(inst *instance.Instance, sol *solution.Solution) *Encoding {
	dna := make([][]bool, inst.NK)
	for k := range dna {
		dna[k] = make([]bool, inst.N)
	}
	for k, route := range sol.Routes {
		for _, node := range route {
			if node >= 1 && node <= inst.N {
				dna[k][node-1] = true
			}
		}
	}
	return &Encoding{dna: dna}
}

// Empty returns an Encoding with no request assigned to any vehicle.
func Empty(inst *instance.Instance) *Encoding {
	dna := make([][]bool, inst.NK)
	for k := range dna {
		dna[k] = make([]bool, inst.N)
	}
	return &Encoding{dna: dna}
}

// SetVehicleForRequest assigns request exclusively to vehicle, clearing it
// from every other vehicle. Invalidates the decode cache.
func (e *Encoding) SetVehicleForRequest(vehicle, request int) {
	for k := range e.dna {
		e.dna[k][request] = vehicle == k
	}
	e.Invalidate()
}

// Invalidate drops the cached decoded Solution, forcing the next Decode
// call to recompute it.
func (e *Encoding) Invalidate() {
	e.cached = nil
}

// Clone returns an independent copy of e: mutating the clone's assignments
// never affects e, and vice versa. The decode cache is not carried over,
// matching SetVehicleForRequest's own invalidation semantics.
func (e *Encoding) Clone() *Encoding {
	dna := make([][]bool, len(e.dna))
	for k, row := range e.dna {
		dna[k] = append([]bool(nil), row...)
	}
	return &Encoding{dna: dna}
}

// NumVehicles returns the row count (nK).
func (e *Encoding) NumVehicles() int { return len(e.dna) }

// NumRequests returns the column count (n).
func (e *Encoding) NumRequests() int {
	if len(e.dna) == 0 {
		return 0
	}
	return len(e.dna[0])
}

// IsCorrect checks the structural invariant: at most one true per column,
// and the column count matches inst.N. An assertion-style check available
// to callers constructing an Encoding by hand rather than via New; Decode
// does not call this itself. Mirrors encoding.cpp's is_encoding_correct.
func (e *Encoding) IsCorrect(inst *instance.Instance) bool {
	if e.NumRequests() != inst.N {
		return false
	}
	for col := 0; col < e.NumRequests(); col++ {
		seen := false
		for row := 0; row < e.NumVehicles(); row++ {
			if e.dna[row][col] {
				if seen {
					return false
				}
				seen = true
			}
		}
	}
	return true
}

// TotalNumOfRequests returns how many distinct requests have a true entry
// somewhere in the matrix.
func (e *Encoding) TotalNumOfRequests() int {
	count := 0
	for col := 0; col < e.NumRequests(); col++ {
		for row := 0; row < e.NumVehicles(); row++ {
			if e.dna[row][col] {
				count++
				break
			}
		}
	}
	return count
}

// RequestsOfRoute returns the requests assigned to vehicle route.
func (e *Encoding) RequestsOfRoute(route int) []int {
	var out []int
	for col := 0; col < e.NumRequests(); col++ {
		if e.dna[route][col] {
			out = append(out, col)
		}
	}
	return out
}

// NonDeliveredRequests returns requests with no true entry in any row.
func (e *Encoding) NonDeliveredRequests() []int {
	var out []int
	for col := 0; col < e.NumRequests(); col++ {
		delivered := false
		for row := 0; row < e.NumVehicles(); row++ {
			if e.dna[row][col] {
				delivered = true
				break
			}
		}
		if !delivered {
			out = append(out, col)
		}
	}
	return out
}

// Decode lazily builds the Solution this Encoding represents, running one
// beam search per vehicle. The result is cached until the next mutation.
func (e *Encoding) Decode(inst *instance.Instance, beamWidth int) *solution.Solution {
	if e.cached != nil {
		return e.cached
	}

	routes := make([][]int, e.NumVehicles())
	for k := range routes {
		routes[k] = beam.CreateTrackRoute(inst, beamWidth, e.RequestsOfRoute(k))
	}

	sol := solution.New(inst, routes)
	e.cached = sol
	return sol
}

// Combine is the Go analogue of Encoding::operator+: a simple, fully
// uniform-random crossover with no gamma resampling. For every contested
// column (a request served by both parents), a coin flip at that column
// picks which parent's vehicle assignment survives; columns served by only
// one parent keep that parent's assignment. Kept alongside Add because the
// original exposes both as public API (see DESIGN.md).
func Combine(a, b *Encoding, rng *rand.Rand) (*Encoding, error) {
	if a.NumVehicles() != b.NumVehicles() || a.NumRequests() != b.NumRequests() {
		return nil, ErrDimensionMismatch
	}

	rows, cols := a.NumVehicles(), a.NumRequests()
	offspring := make([][]bool, rows)
	for r := range offspring {
		offspring[r] = append([]bool(nil), a.dna[r]...)
	}

	for col := 0; col < cols; col++ {
		coin := rng.Intn(2)
		rowSet := -1
		for row := 0; row < rows; row++ {
			inEither := a.dna[row][col] || b.dna[row][col]
			if rowSet == -1 && inEither {
				rowSet = row
				offspring[row][col] = true
				continue
			}
			if rowSet != -1 && inEither {
				if coin == 1 {
					offspring[rowSet][col] = false
					offspring[row][col] = true
				} else {
					offspring[row][col] = false
				}
				break
			}
		}
	}

	return &Encoding{dna: offspring}, nil
}

// Add is the Go analogue of Encoding::add, the crossover spec §4.13
// describes: requests served by both parents are inherited with a
// uniformly-random choice of parent vehicle; requests served by exactly one
// parent are candidates to fill remaining capacity up to gamma. If more
// than gamma requests are served by both parents, the "both" set is
// downsampled to gamma.
func Add(inst *instance.Instance, a, b *Encoding, rng *rand.Rand) (*Encoding, error) {
	if a.NumVehicles() != b.NumVehicles() || a.NumRequests() != b.NumRequests() {
		return nil, ErrDimensionMismatch
	}

	rows, cols := a.NumVehicles(), a.NumRequests()

	var both, oneOnly []int
	rowOfBoth := make(map[int][2]int, cols) // col -> (rowInA, rowInB)
	rowOfOne := make(map[int]int, cols)      // col -> the serving row, from whichever parent

	for col := 0; col < cols; col++ {
		rowA, rowB := -1, -1
		for row := 0; row < rows; row++ {
			if a.dna[row][col] {
				rowA = row
			}
			if b.dna[row][col] {
				rowB = row
			}
		}
		switch {
		case rowA >= 0 && rowB >= 0:
			both = append(both, col)
			rowOfBoth[col] = [2]int{rowA, rowB}
		case rowA >= 0:
			oneOnly = append(oneOnly, col)
			rowOfOne[col] = rowA
		case rowB >= 0:
			oneOnly = append(oneOnly, col)
			rowOfOne[col] = rowB
		}
	}

	needed := inst.Gamma - len(both)

	rng.Shuffle(len(oneOnly), func(i, j int) { oneOnly[i], oneOnly[j] = oneOnly[j], oneOnly[i] })
	rng.Shuffle(len(both), func(i, j int) { both[i], both[j] = both[j], both[i] })

	if needed < 0 {
		both = both[:len(both)+needed]
	}

	offspring := Empty(inst)

	for _, col := range both {
		pair := rowOfBoth[col]
		chosen := pair[0]
		if rng.Intn(2) == 1 {
			chosen = pair[1]
		}
		offspring.dna[chosen][col] = true
	}

	if needed > 0 {
		limit := needed
		if limit > len(oneOnly) {
			limit = len(oneOnly)
		}
		for i := 0; i < limit; i++ {
			col := oneOnly[i]
			offspring.dna[rowOfOne[col]][col] = true
		}
	}

	return offspring, nil
}
