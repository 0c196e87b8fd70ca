package instance

import "math"

// symTol is the structural tolerance for diagonal/symmetry checks, matching
// the teacher's convention of a named tolerance constant (see tsp/validate.go
// symTol) rather than a bare magic number inline.
const symTol = 1e-9

// Validate re-checks every invariant spec.md §3 requires of an Instance:
// positive sizes, matching dimensions, demand bounds, gamma/nK bounds,
// finite coordinates, and a symmetric non-negative distance matrix with a
// zero diagonal. It mirrors original_source/core/src/instance.cpp's
// is_instance_correct, returning the first violation found rather than
// logging every one (the C++ original logs each failure reason to stderr
// before returning a single bool; a Go caller gets one typed error instead —
// see DESIGN.md's Open Question resolution).
func (inst *Instance) Validate() error {
	if err := inst.validateShape(); err != nil {
		return err
	}

	for _, d := range inst.Demands {
		if d <= 0 || d > inst.C {
			return ErrDemandExceedsCapacity
		}
	}

	if inst.Gamma > inst.N {
		return ErrGammaExceedsN
	}
	if inst.NK > inst.N {
		return ErrVehiclesExceedRequests
	}

	for _, p := range inst.Coords {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return ErrNonFiniteCoordinate
		}
	}

	nv := inst.NumNodes()
	if len(inst.Dist) != nv {
		return ErrSizeMismatch
	}
	for u := 0; u < nv; u++ {
		if len(inst.Dist[u]) != nv {
			return ErrSizeMismatch
		}
		if math.Abs(inst.Dist[u][u]) > symTol {
			return ErrNonZeroDiagonal
		}
		for v := 0; v < nv; v++ {
			if inst.Dist[u][v] < 0 {
				return ErrNegativeDistance
			}
			if math.Abs(inst.Dist[u][v]-inst.Dist[v][u]) > symTol {
				return ErrAsymmetricDistance
			}
		}
	}

	switch inst.Fairness {
	case Jain, Gini, MaxMin:
	default:
		return ErrUnknownFairness
	}

	return nil
}
