// Package genetic: see genetic.go for Options, DefaultOptions and Run.
package genetic
