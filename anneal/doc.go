// Package anneal: see anneal.go for Options, DefaultOptions and Run.
package anneal

import "errors"

// ErrNoNeighborhoods indicates Options.Neighborhoods was empty.
var ErrNoNeighborhoods = errors.New("anneal: no neighborhoods configured")
