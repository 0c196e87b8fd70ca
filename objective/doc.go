// Package objective: see objective.go. Errors: ErrEmptyDistances,
// ErrJainZeroDenominator, ErrUnknownFairness.
package objective
