// Package grasp: see grasp.go for Options, DefaultOptions and Run.
//
// The restricted candidate list has size max(1, ceil(Alpha*|remaining|)), so
// whenever Alpha*|remaining| is at most 1 (in particular Alpha = 0) it holds
// a single request and every draw takes the best-ranked remaining request.
// Constructions of different restarts then differ only in the random vehicle
// and position each request is inserted at. This is kept as is, not treated
// as an error.
package grasp

import "errors"

// ErrNoNeighborhoods indicates Options.Neighborhoods was empty.
var ErrNoNeighborhoods = errors.New("grasp: no neighborhoods configured")
