// Package neighborhood: see neighborhood.go for the Neighborhood
// interface, move.go for the Move payload types, and intraswap.go /
// relocate.go / twoopt.go for the three kinds. Errors: ErrNoCandidateMove,
// ErrWrongMoveKind.
//
// Known source issues and how this package resolves them (spec §9):
//   - RequestMove.IsValid always returned true; here, capacity on the
//     destination route is checked after the append.
//   - RequestMove.CalcDelta never actually removed the relocated request
//     from its origin route before costing it; here the delta is computed
//     against the real post-removal/post-append routes.
//   - IntraRouteNeighborhood.IsValid checked only capacity; here precedence
//     is checked too, since a pure swap can invert it.
//   - IntraRouteNeighborhood.CalcDelta always used Jain fairness regardless
//     of the configured fairness kind; here it dispatches on
//     Instance.Fairness via fairnessDelta.
//   - RequestMove.Apply returned the untransformed solution; here it
//     returns the transformed one.
package neighborhood
