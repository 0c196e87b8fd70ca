// Package solution defines Solution: a node sequence per vehicle plus
// cached aggregate distances, and IsFeasible, which checks every invariant
// spec §3 names. Errors: ErrRequestDuplicated, ErrBelowGamma,
// ErrPrecedenceViolated, ErrCapacityViolated, ErrRouteCountMismatch,
// ErrStaleCachedTotals.
package solution
