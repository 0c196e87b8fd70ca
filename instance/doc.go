// Package instance: see types.go for the Instance type and NewInstance
// constructor, and validate.go for the full invariant check.
//
// Errors (strict sentinels, never wrapped where avoidable):
//
//	ErrNonPositiveSize, ErrSizeMismatch, ErrDemandExceedsCapacity,
//	ErrGammaExceedsN, ErrVehiclesExceedRequests, ErrNonFiniteCoordinate,
//	ErrNonZeroDiagonal, ErrNegativeDistance, ErrAsymmetricDistance,
//	ErrUnknownFairness.
package instance
