// Package localsearch: see localsearch.go for Run (Local Search) and
// vnd.go for RunVND (Variable Neighborhood Descent).
package localsearch
