// Package solve: see solve.go for Options, DefaultOptions and Solve.
package solve
