// Package construct: see construct.go for Deterministic, Randomized, Beam
// and GRASPRandomized. Errors: ErrInfeasibleConstruction.
package construct
